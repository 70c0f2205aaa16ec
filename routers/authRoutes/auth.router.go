package authRoutes

import (
	"istem/config"
	authController "istem/controllers/auth"
	"istem/middleware"
	authValidator "istem/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(api fiber.Router, cfg *config.Config, ac *authController.AuthController) {
	authGroup := api.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), ac.Register)
	authGroup.Post("/login", authValidator.Login(), ac.Login)
	authGroup.Get("/me", middleware.JWT(cfg), ac.Me)
}
