package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskverse_backend/internals/features/users/auth/controller"
	"taskverse_backend/internals/middlewares"
	authMiddleware "taskverse_backend/internals/middlewares/auth"
)

// AuthRoutes: rotas públicas (login/cadastro) + logout autenticado.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api := app.Group("/api")
	api.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)

	api.Post("/logout", authMiddleware.AuthMiddleware(db), authCtrl.Logout)
}
