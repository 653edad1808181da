package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/constants"
	courseController "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/courses/controller"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers/storage"
	authMw "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/middlewares/auth"
)

func CourseRoutes(app *fiber.App, db *gorm.DB, files *storage.Store) {
	courses := courseController.NewCourseController(db)
	lessons := courseController.NewLessonController(db, files)

	api := app.Group("/api/courses")

	// Public lookups.
	api.Get("/course", courses.GetByNameAndTeacher)
	api.Get("/id/:courseId", courses.GetByID)
	api.Get("/teacher/:name", courses.GetByTeacher)

	// Lesson mutations: bearer auth + teacher role; ownership is enforced in
	// the controller against the course's recorded teacher.
	api.Post("/:id/lessons",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Forbidden: Only teachers can add lessons.", constants.RoleTeacher),
		lessons.Add,
	)
	api.Put("/:courseId/lessons/:lessonId",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Forbidden: Only teachers can update lessons.", constants.RoleTeacher),
		lessons.Update,
	)
	api.Delete("/:courseId/lessons/:lessonId",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Forbidden: Only teachers can delete lessons.", constants.RoleTeacher),
		lessons.Delete,
	)
}
