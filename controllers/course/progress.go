package controllers

import (
	"time"

	"istem/middleware"
	"istem/models"

	"github.com/gofiber/fiber/v2"
)

// MarkLessonComplete records completion of a lesson for the calling
// user and recomputes the cached enrollment percentage. Completing the
// same lesson twice overwrites the record in place and leaves the
// percentage unchanged.
//
// The recount and the enrollment write are separate statements with no
// transaction; two concurrent calls for the same user and course can
// leave a stale cached percentage. The next completion call (or the
// background reconciler) recomputes it.
func (cc *CourseController) MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := cc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson models.Lesson
	if err := cc.DB.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var enrollment models.Enrollment
	if err := cc.DB.Where("user_id = ? AND course_id = ?", userID, lesson.CourseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}

	// Upsert keyed by (user, lesson)
	now := time.Now()
	var record models.ProgressRecord
	if err := cc.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&record).Error; err == nil {
		record.Completed = true
		record.CompletedAt = &now
		if err := cc.DB.Save(&record).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	} else {
		record = models.ProgressRecord{
			UserID:      userID,
			LessonID:    uint(lessonID),
			CourseID:    lesson.CourseID,
			Completed:   true,
			CompletedAt: &now,
		}
		if err := cc.DB.Create(&record).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	percentage := cc.updateEnrollmentProgress(userID, lesson.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated!", fiber.Map{
		"progress_percentage": percentage,
	})
}

// updateEnrollmentProgress recomputes the cached percentage for the
// enrollment from raw completion counts and writes it back together
// with last_accessed. A course with zero lessons yields 0, not an
// error.
func (cc *CourseController) updateEnrollmentProgress(userID, courseID uint) float64 {
	var totalLessons int64
	var completedLessons int64

	cc.DB.Model(&models.Lesson{}).Where("course_id = ?", courseID).Count(&totalLessons)
	cc.DB.Model(&models.ProgressRecord{}).
		Where("user_id = ? AND course_id = ? AND completed = ?", userID, courseID, true).
		Count(&completedLessons)

	percentage := 0.0
	if totalLessons > 0 {
		percentage = float64(completedLessons) / float64(totalLessons) * 100
	}

	cc.DB.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Updates(map[string]interface{}{
			"progress_percentage": percentage,
			"last_accessed":       time.Now(),
		})

	return percentage
}

// GetCourseProgress returns the user's completion records for a course
// together with the enrollment carrying the cached percentage.
func (cc *CourseController) GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := cc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment models.Enrollment
	if err := cc.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}

	var records []models.ProgressRecord
	if err := cc.DB.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":   records,
		"enrollment": enrollment,
	})
}
