package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "taskverse_backend/internals/features/missions/submissions/controller"
)

// SubmissionUserRoutes registra as rotas de entrega do aluno (já sob o guard
// de autenticação + papel "aluno").
func SubmissionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := submissionController.NewSubmissionController(db)

	entregas := router.Group("/entregas")
	entregas.Post("/", ctrl.Create)
}

// SubmissionProfessorRoutes registra a fila de correção do professor.
func SubmissionProfessorRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := submissionController.NewSubmissionController(db)

	entregas := router.Group("/entregas")
	entregas.Get("/pendentes", ctrl.ListPending)
	entregas.Post("/:id/aprovar", ctrl.Approve)
}
