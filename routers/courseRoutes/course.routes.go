package courseRoutes

import (
	"istem/config"
	controllers "istem/controllers/course"
	"istem/middleware"
	courseValidator "istem/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course catalog and per-course content
// routes. Listing and details are public; everything else needs a
// token.
func SetupCourseRoutes(api fiber.Router, cfg *config.Config, cc *controllers.CourseController) {
	courseGroup := api.Group("/courses")

	// Catalog (public)
	courseGroup.Get("/", cc.GetAllCourses)
	courseGroup.Post("/", middleware.JWT(cfg), courseValidator.CreateCourse(), cc.CreateCourse)
	courseGroup.Get("/:id", courseValidator.CourseID(), cc.GetCourseDetails)

	// Lessons (enrolled users; creation gated by ownership)
	courseGroup.Get("/:id/lessons", middleware.JWT(cfg), courseValidator.CourseID(), cc.GetCourseLessons)
	courseGroup.Post("/:id/lessons", middleware.JWT(cfg), courseValidator.CreateLesson(), cc.CreateLesson)

	// Progress
	courseGroup.Get("/:id/progress", middleware.JWT(cfg), courseValidator.CourseID(), cc.GetCourseProgress)

	// Meetings
	courseGroup.Get("/:id/meetings", middleware.JWT(cfg), courseValidator.CourseID(), cc.GetCourseMeetings)
	courseGroup.Post("/:id/meetings", middleware.JWT(cfg), courseValidator.CreateMeeting(), cc.CreateMeeting)
}
