package controllers

import (
	"time"

	"istem/middleware"
	"istem/models"

	"github.com/gofiber/fiber/v2"
)

// RecentCourse is a dashboard entry for an enrolled course.
type RecentCourse struct {
	Course       models.Course `json:"course"`
	Progress     float64       `json:"progress"`
	LastAccessed time.Time     `json:"last_accessed"`
}

// GetDashboard aggregates the user's enrollments, the first 5 of them
// with course info, and up to 5 upcoming meetings across enrolled
// courses. Recent courses keep enrollment listing order, not recency.
func (cc *CourseController) GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := cc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []models.Enrollment
	if err := cc.DB.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	recentCourses := make([]RecentCourse, 0, 5)
	for i, enrollment := range enrollments {
		if i >= 5 {
			break
		}
		var course models.Course
		if err := cc.DB.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
			continue
		}
		recentCourses = append(recentCourses, RecentCourse{
			Course:       course,
			Progress:     enrollment.ProgressPercentage,
			LastAccessed: enrollment.LastAccessed,
		})
	}

	courseIDs := make([]uint, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courseIDs = append(courseIDs, enrollment.CourseID)
	}

	upcomingMeetings := []models.Meeting{}
	if len(courseIDs) > 0 {
		if err := cc.DB.Where("course_id IN ? AND scheduled_at >= ?", courseIDs, time.Now()).
			Order("scheduled_at asc").Limit(5).Find(&upcomingMeetings).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch meetings!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"user":              user,
		"total_courses":     len(enrollments),
		"recent_courses":    recentCourses,
		"upcoming_meetings": upcomingMeetings,
	})
}
