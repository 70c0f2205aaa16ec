package controllers_test

import (
	"fmt"
	"testing"

	"istem/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markComplete(t *testing.T, app *fiber.App, token string, lessonID uint) (int, float64) {
	t.Helper()

	status, env := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/progress/%d", lessonID), token, nil)
	if status != fiber.StatusOK {
		return status, 0
	}

	var data struct {
		ProgressPercentage float64 `json:"progress_percentage"`
	}
	decodeData(t, env, &data)
	return status, data.ProgressPercentage
}

func TestMarkLessonCompleteScenario(t *testing.T) {
	app, db, cfg := newTestApp(t)

	owner, _ := createUser(t, db, cfg, "b@x.com", models.RoleInstructor)
	student, studentToken := createUser(t, db, cfg, "a@x.com", models.RoleStudent)

	course := createCourse(t, db, owner)
	enroll(t, db, student, course)

	l1 := models.Lesson{CourseID: course.ID, Title: "L1", OrderIndex: 1, LessonType: models.LessonVideo}
	l2 := models.Lesson{CourseID: course.ID, Title: "L2", OrderIndex: 2, LessonType: models.LessonText}
	require.NoError(t, db.Create(&l1).Error)
	require.NoError(t, db.Create(&l2).Error)

	// First lesson: 1 of 2
	status, pct := markComplete(t, app, studentToken, l1.ID)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 50.0, pct)

	// Idempotent: same lesson again does not inflate the count
	status, pct = markComplete(t, app, studentToken, l1.ID)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 50.0, pct)

	var records int64
	db.Model(&models.ProgressRecord{}).
		Where("user_id = ? AND lesson_id = ?", student.ID, l1.ID).
		Count(&records)
	assert.EqualValues(t, 1, records)

	// Second lesson: done
	status, pct = markComplete(t, app, studentToken, l2.ID)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 100.0, pct)

	// Cached on the enrollment
	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", student.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, 100.0, enrollment.ProgressPercentage)
	assert.False(t, enrollment.LastAccessed.IsZero())
}

func TestMarkLessonCompleteRequiresEnrollment(t *testing.T) {
	app, db, cfg := newTestApp(t)

	owner, _ := createUser(t, db, cfg, "owner@x.com", models.RoleInstructor)
	_, token := createUser(t, db, cfg, "student@x.com", models.RoleStudent)

	course := createCourse(t, db, owner)
	lesson := models.Lesson{CourseID: course.ID, Title: "L1", LessonType: models.LessonText}
	require.NoError(t, db.Create(&lesson).Error)

	status, _ := markComplete(t, app, token, lesson.ID)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestMarkLessonCompleteUnknownLesson(t *testing.T) {
	app, db, cfg := newTestApp(t)

	_, token := createUser(t, db, cfg, "student@x.com", models.RoleStudent)

	status, _ := markComplete(t, app, token, 12345)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetCourseProgress(t *testing.T) {
	app, db, cfg := newTestApp(t)

	owner, _ := createUser(t, db, cfg, "owner@x.com", models.RoleInstructor)
	student, token := createUser(t, db, cfg, "student@x.com", models.RoleStudent)

	course := createCourse(t, db, owner)
	path := fmt.Sprintf("/api/courses/%d/progress", course.ID)

	// Progress is course content; an enrollment is required to view it
	status, _ := doRequest(t, app, fiber.MethodGet, path, token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	enroll(t, db, student, course)
	lesson := models.Lesson{CourseID: course.ID, Title: "L1", LessonType: models.LessonText}
	require.NoError(t, db.Create(&lesson).Error)

	markComplete(t, app, token, lesson.ID)

	status, env := doRequest(t, app, fiber.MethodGet, path, token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var data struct {
		Progress   []models.ProgressRecord `json:"progress"`
		Enrollment models.Enrollment       `json:"enrollment"`
	}
	decodeData(t, env, &data)
	require.Len(t, data.Progress, 1)
	assert.True(t, data.Progress[0].Completed)
	assert.Equal(t, 100.0, data.Enrollment.ProgressPercentage)
}
