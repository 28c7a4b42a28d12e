package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskverse_backend/internals/features/users/user/dto"
	"taskverse_backend/internals/features/users/user/model"
	helper "taskverse_backend/internals/helpers"
	sessionHelper "taskverse_backend/internals/helpers/auth"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =======================
// 👤 Me (registro da sessão atual)
// =======================
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	sess, err := sessionHelper.FromContext(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", sess.UserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	return helper.JsonOK(c, "ok", dto.ToUserDTO(user))
}

// =======================
// ✏️ Atualizar nome de exibição
// =======================
func (ctrl *UserController) UpdateNome(c *fiber.Ctx) error {
	sess, err := sessionHelper.FromContext(c)
	if err != nil {
		return err
	}

	var body dto.UpdateNomeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", sess.UserID).
		Update("nome", body.Nome).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar o nome")
	}

	return helper.JsonUpdated(c, "Nome atualizado com sucesso", nil)
}
