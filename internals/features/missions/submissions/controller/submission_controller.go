package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskverse_backend/internals/features/missions/submissions/dto"
	"taskverse_backend/internals/features/missions/submissions/repository"
	"taskverse_backend/internals/features/missions/submissions/service"
	"taskverse_backend/internals/helpers"
	"taskverse_backend/internals/helpers/auth"
)

var validateSubmission = validator.New()

type SubmissionController struct {
	DB       *gorm.DB
	store    *repository.GormStore
	workflow *service.Workflow
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	store := repository.NewGormStore(db)
	return &SubmissionController{
		DB:       db,
		store:    store,
		workflow: service.NewWorkflow(store),
	}
}

// =======================
// Aluno
// =======================

// Create registra a entrega do aluno autenticado para uma missão.
func (ctrl *SubmissionController) Create(c *fiber.Ctx) error {
	sess, err := auth.FromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados inválidos")
	}
	req.Normalize()
	if err := validateSubmission.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	missionID, err := uuid.Parse(req.IDMissao)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de missão inválido")
	}

	sub, err := ctrl.workflow.Submit(c.Context(), sess.UserID, missionID, req.TextoEntrega)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTextoVazio):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrMissaoNaoEncontrada):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrJaEntregue):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			log.Printf("[ERROR] falha ao criar entrega: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao registrar entrega")
		}
	}

	return helper.JsonCreated(c, "Entrega registrada com sucesso", dto.ToSubmissionDTO(sub))
}

// =======================
// Professor
// =======================

// ListPending lista as entregas aguardando aprovação, mais novas primeiro.
func (ctrl *SubmissionController) ListPending(c *fiber.Ctx) error {
	rows, err := ctrl.store.ListPending(c.Context())
	if err != nil {
		log.Printf("[ERROR] falha ao listar entregas pendentes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar entregas")
	}
	return helper.JsonList(c, "Entregas pendentes", rows, nil)
}

// Approve aprova uma entrega aguardando (o aluno passa a receber o XP da
// missão). Aprovação é definitiva.
func (ctrl *SubmissionController) Approve(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de entrega inválido")
	}

	sub, err := ctrl.workflow.Approve(c.Context(), submissionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntregaNaoEncontrada):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrJaAprovada):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			log.Printf("[ERROR] falha ao aprovar entrega: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao aprovar entrega")
		}
	}

	return helper.JsonUpdated(c, "Entrega aprovada com sucesso", dto.ToSubmissionDTO(sub))
}
