package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskverse_backend/internals/features/users/user/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	user := api.Group("/usuarios")
	user.Get("/me", userCtrl.Me)
	user.Put("/me/nome", userCtrl.UpdateNome)
}
