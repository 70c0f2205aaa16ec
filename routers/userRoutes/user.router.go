package userRoutes

import (
	"istem/config"
	controllers "istem/controllers/course"
	"istem/middleware"
	courseValidator "istem/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up the user-centric routes: enrollment actions,
// enrollment listings, per-lesson completion and the dashboard.
func SetupUserRoutes(api fiber.Router, cfg *config.Config, cc *controllers.CourseController) {
	api.Post("/enrollments/:course_id", middleware.JWT(cfg), courseValidator.CourseID(), cc.EnrollInCourse)
	api.Get("/my-courses", middleware.JWT(cfg), cc.GetMyCourses)

	api.Post("/progress/:lesson_id", middleware.JWT(cfg), courseValidator.LessonID(), cc.MarkLessonComplete)

	api.Get("/dashboard", middleware.JWT(cfg), cc.GetDashboard)
	api.Get("/instructor/stats", middleware.JWT(cfg), cc.GetInstructorStats)
}
