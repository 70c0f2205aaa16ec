package controllers

import (
	"time"

	"istem/middleware"
	"istem/models"
	"istem/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateMeetingRequest is the validated meeting payload. MeetingURL may
// be empty, in which case a room URL is generated.
type CreateMeetingRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"gte=0"`
	MeetingURL      string    `json:"meeting_url" validate:"omitempty,url"`
	MaxParticipants int       `json:"max_participants" validate:"gte=0"`
}

// GetCourseMeetings lists a course's meetings for enrolled users,
// ordered by scheduled time.
func (cc *CourseController) GetCourseMeetings(c *fiber.Ctx) error {
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

	var meetings []models.Meeting
	if err := cc.DB.Where("course_id = ?", courseID).Order("scheduled_at asc").Find(&meetings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch meetings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Meetings fetched successfully!", meetings)
}

// CreateMeeting schedules a meeting for a course. Only the course owner
// or an admin may schedule; the stored instructor is always the course
// owner.
func (cc *CourseController) CreateMeeting(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := cc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !middleware.CanCreateContent(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only instructors and admins can create meetings!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := cc.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.CanManageCourse(user.Role, user.ID, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to create meetings for this course!", nil)
	}

	reqData, ok := c.Locals("validatedMeeting").(*CreateMeetingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	meetingURL := reqData.MeetingURL
	if meetingURL == "" {
		meetingURL = utils.GenerateMeetingRoomURL()
	}

	durationMinutes := reqData.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = 60
	}
	maxParticipants := reqData.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = 50
	}

	meeting := models.Meeting{
		CourseID:        uint(courseID),
		Title:           reqData.Title,
		Description:     reqData.Description,
		ScheduledAt:     reqData.ScheduledAt,
		DurationMinutes: durationMinutes,
		MeetingURL:      meetingURL,
		InstructorID:    course.InstructorID,
		MaxParticipants: maxParticipants,
	}

	if err := cc.DB.Create(&meeting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create meeting!", nil)
	}

	// Probe externally supplied join URLs in the background; an
	// unreachable URL is logged, never an error.
	if reqData.MeetingURL != "" {
		go utils.VerifyMeetingURL(reqData.MeetingURL)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Meeting created successfully!", meeting)
}
