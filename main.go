package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/configs"
	database "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/databases"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers/storage"
	middlewares "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/middlewares"
	routes "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/route"
	seeds "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		UnescapePath:          true,
		BodyLimit:             10 << 20, // per-file limit is enforced by the attachment store
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.Migrate()

	seeds.RunAllSeeds(database.DB)

	files := storage.NewStore(configs.UploadDir)

	// Lesson attachments are served straight from the upload directory.
	app.Static("/files", configs.UploadDir)

	routes.SetupRoutes(app, database.DB, files)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("[INFO] listening on :%s", configs.Port)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
