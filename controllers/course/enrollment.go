package controllers

import (
	"time"

	"istem/middleware"
	"istem/models"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the calling user into a course. Any
// authenticated user may enroll; enrolling twice is a conflict.
func (cc *CourseController) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := cc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := cc.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existingEnrollment models.Enrollment
	if err := cc.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		UserID:             userID,
		CourseID:           uint(courseID),
		ProgressPercentage: 0,
		LastAccessed:       time.Now(),
	}

	if err := cc.DB.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully enrolled in course!", enrollment)
}

// EnrolledCourse pairs an enrollment with its course for listings.
type EnrolledCourse struct {
	Course     models.Course     `json:"course"`
	Enrollment models.Enrollment `json:"enrollment"`
}

// GetMyCourses lists the calling user's enrollments with course info.
// Order is insertion order; no reordering operation exists.
func (cc *CourseController) GetMyCourses(c *fiber.Ctx) error {
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

	myCourses := make([]EnrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course models.Course
		if err := cc.DB.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
			continue
		}
		myCourses = append(myCourses, EnrolledCourse{Course: course, Enrollment: enrollment})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", myCourses)
}
