package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
