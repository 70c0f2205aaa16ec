package main

import (
	"log"

	"istem/config"
	authController "istem/controllers/auth"
	controllers "istem/controllers/course"
	"istem/database"
	"istem/routers/authRoutes"
	"istem/routers/courseRoutes"
	"istem/routers/userRoutes"
	"istem/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	api := app.Group("/api")

	ac := authController.NewAuthController(db, cfg)
	cc := controllers.NewCourseController(db, cfg)

	authRoutes.SetupAuthRoutes(api, cfg, ac)
	courseRoutes.SetupCourseRoutes(api, cfg, cc)
	userRoutes.SetupUserRoutes(api, cfg, cc)

	scheduler := utils.StartProgressScheduler(db)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
