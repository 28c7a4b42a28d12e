package dto

import (
	"time"

	"taskverse_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type UserDTO struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Login     string    `json:"login"`
	Tipo      string    `json:"tipo"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Update Request DTO
// ============================

type UpdateNomeRequest struct {
	Nome string `json:"nome" validate:"required,min=3,max=120"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.ID.String(),
		Nome:      m.Nome,
		Email:     m.Email,
		Login:     m.Login,
		Tipo:      m.Tipo,
		CreatedAt: m.CreatedAt,
	}
}
