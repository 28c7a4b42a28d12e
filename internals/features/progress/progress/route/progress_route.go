package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "taskverse_backend/internals/features/progress/progress/controller"
)

// ProgressUserRoutes registra o resumo de XP/nível do aluno.
func ProgressUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)

	router.Get("/progresso", ctrl.Get)
}
