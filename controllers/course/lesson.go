package controllers

import (
	"istem/middleware"
	"istem/models"

	"github.com/gofiber/fiber/v2"
)

// CreateLessonRequest is the validated lesson payload.
type CreateLessonRequest struct {
	Title           string            `json:"title" validate:"required"`
	Description     string            `json:"description"`
	Content         string            `json:"content" validate:"required"`
	LessonType      models.LessonType `json:"lesson_type" validate:"required,oneof=video text quiz assignment"`
	DurationMinutes int               `json:"duration_minutes" validate:"gte=0"`
	OrderIndex      int               `json:"order"`
}

// GetCourseLessons lists a course's lessons in order for enrolled
// users. Enrollment is required regardless of role; even the owning
// instructor reads through this path only when enrolled.
func (cc *CourseController) GetCourseLessons(c *fiber.Ctx) error {
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

	var lessons []models.Lesson
	if err := cc.DB.Where("course_id = ?", courseID).Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

// CreateLesson adds a lesson to a course. Instructors may only add to
// their own courses; admins bypass ownership.
func (cc *CourseController) CreateLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := cc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !middleware.CanCreateContent(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only instructors and admins can create lessons!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := cc.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.CanManageCourse(user.Role, user.ID, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to add lessons to this course!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := models.Lesson{
		CourseID:        uint(courseID),
		Title:           reqData.Title,
		Description:     reqData.Description,
		Content:         reqData.Content,
		LessonType:      reqData.LessonType,
		DurationMinutes: reqData.DurationMinutes,
		OrderIndex:      reqData.OrderIndex,
	}

	if err := cc.DB.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}
