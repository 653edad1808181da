package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/users/auth/controller"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	app.Post("/signup", ctrl.Signup)
	app.Post("/login", ctrl.Login)
}
