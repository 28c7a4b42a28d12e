package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskverse_backend/internals/constants"
	"taskverse_backend/internals/features/missions/missions/dto"
	"taskverse_backend/internals/features/missions/missions/model"
	submissionModel "taskverse_backend/internals/features/missions/submissions/model"
	"taskverse_backend/internals/helpers"
	"taskverse_backend/internals/helpers/auth"
)

var validateMission = validator.New()

// MissionController concentra o CRUD de missões do professor.
type MissionController struct {
	DB *gorm.DB
}

func NewMissionController(db *gorm.DB) *MissionController {
	return &MissionController{DB: db}
}

// =======================
// POST /api/p/missoes
// =======================
func (ctrl *MissionController) Create(c *fiber.Ctx) error {
	sess, err := auth.FromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	var req dto.CreateMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados inválidos")
	}
	req.Normalize()
	if err := validateMission.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mission := req.ToModel(sess.UserID)
	if err := ctrl.DB.Create(&mission).Error; err != nil {
		log.Printf("[ERROR] falha ao criar missão: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar missão")
	}

	return helper.JsonCreated(c, "Missão criada com sucesso", dto.ToMissionDTO(mission))
}

// =======================
// PUT /api/p/missoes/:id
// =======================
func (ctrl *MissionController) Update(c *fiber.Ctx) error {
	sess, err := auth.FromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	missionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de missão inválido")
	}

	var req dto.UpdateMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados inválidos")
	}
	req.Normalize()
	if err := validateMission.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mission model.MissionModel
	if err := ctrl.DB.First(&mission, "id = ?", missionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Missão não encontrada")
	}
	if mission.CriadoPor != sess.UserID {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não pode alterar missões de outro professor")
	}

	mission.Titulo = req.Titulo
	mission.Descricao = req.Descricao
	mission.PontosXP = req.PontosXP
	mission.Materia = req.Materia
	if req.Dificuldade != nil {
		mission.Dificuldade = req.Dificuldade
	}

	if err := ctrl.DB.Save(&mission).Error; err != nil {
		log.Printf("[ERROR] falha ao atualizar missão %s: %v", missionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar missão")
	}

	return helper.JsonUpdated(c, "Missão atualizada com sucesso", dto.ToMissionDTO(mission))
}

// =======================
// DELETE /api/p/missoes/:id
// =======================

// Delete remove a missão e todas as entregas que apontam para ela, na mesma
// transação, para nunca deixar entrega órfã.
func (ctrl *MissionController) Delete(c *fiber.Ctx) error {
	sess, err := auth.FromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	missionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de missão inválido")
	}

	var mission model.MissionModel
	if err := ctrl.DB.First(&mission, "id = ?", missionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Missão não encontrada")
	}
	if mission.CriadoPor != sess.UserID {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não pode excluir missões de outro professor")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_missao = ?", missionID).
			Delete(&submissionModel.SubmissionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&mission).Error
	})
	if err != nil {
		log.Printf("[ERROR] falha ao excluir missão %s: %v", missionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao excluir missão")
	}

	return helper.JsonDeleted(c, "Missão excluída com sucesso", fiber.Map{"id": missionID})
}

// =======================
// GET /api/p/missoes
// =======================
func (ctrl *MissionController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	materia := c.Query("materia")
	if materia != "" && materia != "todas" && !constants.IsValidMateria(materia) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Matéria inválida")
	}

	q := ctrl.DB.Model(&model.MissionModel{})
	if materia != "" && materia != "todas" {
		q = q.Where("materia = ?", materia)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] falha ao contar missões: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar missões")
	}

	var missions []model.MissionModel
	if err := q.Order("created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&missions).Error; err != nil {
		log.Printf("[ERROR] falha ao listar missões: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar missões")
	}

	out := make([]dto.MissionDTO, 0, len(missions))
	for _, m := range missions {
		out = append(out, dto.ToMissionDTO(m))
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Missões encontradas", out, &pagination)
}
