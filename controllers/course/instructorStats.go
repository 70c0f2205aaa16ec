package controllers

import (
	"istem/middleware"
	"istem/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetInstructorStats returns counts over the courses the calling
// instructor owns: total courses, enrollments into them, and meetings
// scheduled from the start of the current week onward.
func (cc *CourseController) GetInstructorStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := cc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !middleware.CanCreateContent(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Instructors and admins only.", nil)
	}

	var courses []models.Course
	if err := cc.DB.Where("instructor_id = ?", userID).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	courseIDs := make([]uint, 0, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
	}

	var totalEnrollments int64
	var meetingsThisWeek int64
	if len(courseIDs) > 0 {
		cc.DB.Model(&models.Enrollment{}).Where("course_id IN ?", courseIDs).Count(&totalEnrollments)
		cc.DB.Model(&models.Meeting{}).
			Where("course_id IN ? AND scheduled_at >= ?", courseIDs, now.BeginningOfWeek()).
			Count(&meetingsThisWeek)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"total_courses":      len(courses),
		"total_enrollments":  totalEnrollments,
		"meetings_this_week": meetingsThisWeek,
	})
}
