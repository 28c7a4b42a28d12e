package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Validator instance
var validate = validator.New()

// UserModel representa a tabela usuarios no banco
type UserModel struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nome  string    `gorm:"size:120;not null" json:"nome" validate:"required,min=3,max=120"`
	Email string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Login string    `gorm:"size:50;uniqueIndex;not null" json:"login" validate:"required,min=3,max=50"`
	Senha string    `gorm:"not null" json:"senha,omitempty" validate:"required,min=6"`
	Tipo  string    `gorm:"type:varchar(20);not null;default:'aluno'" json:"tipo" validate:"required,oneof=aluno professor"`

	// preferências de exibição do cliente (tema, ordenação etc.)
	Preferencias datatypes.JSON `gorm:"type:jsonb" json:"preferencias,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "usuarios"
}

func (u *UserModel) SetDefaultValues() {
	if u.Tipo == "" {
		u.Tipo = "aluno"
	}
}

// Validate confere o input contra as regras declaradas nas tags
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errorMessages := make(map[string]string)
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " é obrigatório."
		case "email":
			errorMessages[fieldErr.Field()] = "Formato de e-mail inválido."
		case "min":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " deve ter no mínimo " + fieldErr.Param() + " caracteres."
		case "max":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " deve ter menos de " + fieldErr.Param() + " caracteres."
		case "oneof":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " deve ser um de: " + fieldErr.Param() + "."
		default:
			errorMessages[fieldErr.Field()] = "Formato inválido."
		}
	}
	return errors.New(formatErrorMessage(errorMessages))
}

func formatErrorMessage(errs map[string]string) string {
	var msg string
	for field, errorMsg := range errs {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
