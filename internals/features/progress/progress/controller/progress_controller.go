package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	missionModel "taskverse_backend/internals/features/missions/missions/model"
	missionService "taskverse_backend/internals/features/missions/missions/service"
	submissionRepo "taskverse_backend/internals/features/missions/submissions/repository"
	"taskverse_backend/internals/features/progress/progress/service"
	"taskverse_backend/internals/helpers"
	"taskverse_backend/internals/helpers/auth"
)

type ProgressController struct {
	DB    *gorm.DB
	store *submissionRepo.GormStore
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db, store: submissionRepo.NewGormStore(db)}
}

// Get devolve o resumo de XP/nível do aluno autenticado.
func (ctrl *ProgressController) Get(c *fiber.Ctx) error {
	sess, err := auth.FromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	var missions []missionModel.MissionModel
	if err := ctrl.DB.Find(&missions).Error; err != nil {
		log.Printf("[ERROR] falha ao listar missões: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao calcular progresso")
	}

	subs, err := ctrl.store.ListByStudent(c.Context(), sess.UserID)
	if err != nil {
		log.Printf("[ERROR] falha ao listar entregas do aluno %s: %v", sess.UserID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao calcular progresso")
	}

	views := missionService.BuildEffectiveMissions(missions, subs)
	return helper.JsonOK(c, "Progresso do aluno", service.ComputeProgress(views))
}
