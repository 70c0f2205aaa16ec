package controllers

import (
	"istem/config"
	"istem/middleware"
	"istem/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CourseController struct {
	DB     *gorm.DB
	Config *config.Config
}

func NewCourseController(db *gorm.DB, cfg *config.Config) *CourseController {
	return &CourseController{DB: db, Config: cfg}
}

// CreateCourseRequest is the validated course payload.
type CreateCourseRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Thumbnail     string  `json:"thumbnail"`
	DurationHours int     `json:"duration_hours" validate:"gte=0"`
	Level         string  `json:"level" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
}

// GetAllCourses lists published courses. Public endpoint.
func (cc *CourseController) GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := cc.DB.Where("is_published = ?", true).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails returns a single course by ID. Public endpoint.
func (cc *CourseController) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := cc.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CreateCourse creates a course owned by the calling instructor.
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := cc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !middleware.CanCreateContent(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only instructors and admins can create courses!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:          reqData.Title,
		Description:    reqData.Description,
		InstructorID:   user.ID,
		InstructorName: user.Name,
		Thumbnail:      reqData.Thumbnail,
		DurationHours:  reqData.DurationHours,
		Level:          reqData.Level,
		Price:          reqData.Price,
		IsPublished:    true,
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}
