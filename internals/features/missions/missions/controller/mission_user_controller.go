package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskverse_backend/internals/constants"
	"taskverse_backend/internals/features/missions/missions/dto"
	"taskverse_backend/internals/features/missions/missions/model"
	"taskverse_backend/internals/features/missions/missions/service"
	submissionRepo "taskverse_backend/internals/features/missions/submissions/repository"
	"taskverse_backend/internals/helpers"
	"taskverse_backend/internals/helpers/auth"
)

// MissionUserController serve a visão do aluno: cada missão com o status
// derivado da entrega dele (pendente, entregue ou aprovada).
type MissionUserController struct {
	DB    *gorm.DB
	store *submissionRepo.GormStore
}

func NewMissionUserController(db *gorm.DB) *MissionUserController {
	return &MissionUserController{DB: db, store: submissionRepo.NewGormStore(db)}
}

// GetAll lista as missões na visão do aluno autenticado, com filtros
// opcionais ?status= (aba) e ?materia=. Ordenação: matéria, depois status.
func (ctrl *MissionUserController) GetAll(c *fiber.Ctx) error {
	sess, err := auth.FromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	statusTab := c.Query("status")
	if statusTab != "" && statusTab != "todas" && !service.DerivedStatus(statusTab).Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status inválido")
	}
	materia := c.Query("materia")
	if materia != "" && materia != "todas" && !constants.IsValidMateria(materia) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Matéria inválida")
	}

	var missions []model.MissionModel
	if err := ctrl.DB.Order("created_at DESC").Find(&missions).Error; err != nil {
		log.Printf("[ERROR] falha ao listar missões: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar missões")
	}

	subs, err := ctrl.store.ListByStudent(c.Context(), sess.UserID)
	if err != nil {
		log.Printf("[ERROR] falha ao listar entregas do aluno %s: %v", sess.UserID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar missões")
	}

	views := service.FilterSort(service.BuildEffectiveMissions(missions, subs), statusTab, materia)

	out := make([]dto.EffectiveMissionDTO, 0, len(views))
	for _, v := range views {
		out = append(out, dto.EffectiveMissionDTO{
			MissionDTO:     dto.ToMissionDTO(v.Mission),
			StatusDerivado: string(v.Status),
		})
	}

	return helper.JsonList(c, "Missões encontradas", out, nil)
}
