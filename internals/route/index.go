package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/courses/route"
	discussionRoute "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/discussions/route"
	authRoute "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/users/auth/route"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers/storage"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, files *storage.Store) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up CourseRoutes...")
	courseRoute.CourseRoutes(app, db, files)

	log.Println("[INFO] Setting up DiscussionRoutes...")
	discussionRoute.DiscussionRoutes(app, db)

	BaseRoutes(app, db)
}
