package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	missionController "taskverse_backend/internals/features/missions/missions/controller"
)

// MissionProfessorRoutes registra o CRUD de missões do professor.
func MissionProfessorRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := missionController.NewMissionController(db)

	missoes := router.Group("/missoes")
	missoes.Get("/", ctrl.GetAll)
	missoes.Post("/", ctrl.Create)
	missoes.Put("/:id", ctrl.Update)
	missoes.Delete("/:id", ctrl.Delete)
}

// MissionUserRoutes registra a listagem de missões na visão do aluno.
func MissionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := missionController.NewMissionUserController(db)

	missoes := router.Group("/missoes")
	missoes.Get("/", ctrl.GetAll)
}
