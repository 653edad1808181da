package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	discussionController "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/discussions/controller"
)

func DiscussionRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := discussionController.NewDiscussionController(db)

	api := app.Group("/api/discussion")
	api.Post("/", ctrl.Create)
	api.Get("/", ctrl.List)
}
