package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	missionRoute "taskverse_backend/internals/features/missions/missions/route"
	submissionRoute "taskverse_backend/internals/features/missions/submissions/route"
	progressRoute "taskverse_backend/internals/features/progress/progress/route"
	authRoute "taskverse_backend/internals/features/users/auth/route"
	userRoute "taskverse_backend/internals/features/users/user/route"

	"taskverse_backend/internals/constants"
	authMiddleware "taskverse_backend/internals/middlewares/auth"
)

// SetupRoutes monta toda a árvore de rotas:
//
//	/api    → público (register, login, login-google) + logout autenticado
//	/api/u  → aluno autenticado (missões efetivas, entregas, progresso, perfil)
//	/api/p  → professor autenticado (CRUD de missões, fila de correção, perfil)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// públicas + logout
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api")

	// ===========================
	// Aluno
	// ===========================
	u := api.Group("/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAluno("/api/u"),
			constants.AlunoOnly...,
		),
	)
	missionRoute.MissionUserRoutes(u, db)
	submissionRoute.SubmissionUserRoutes(u, db)
	progressRoute.ProgressUserRoutes(u, db)
	userRoute.UserRoutes(u, db)

	// ===========================
	// Professor
	// ===========================
	p := api.Group("/p",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorProfessor("/api/p"),
			constants.ProfessorOnly...,
		),
	)
	missionRoute.MissionProfessorRoutes(p, db)
	submissionRoute.SubmissionProfessorRoutes(p, db)
	userRoute.UserRoutes(p, db)
}
