package controllers_test

import (
	"fmt"
	"testing"

	"istem/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollTwiceConflicts(t *testing.T) {
	app, db, cfg := newTestApp(t)

	instructor, _ := createUser(t, db, cfg, "inst@x.com", models.RoleInstructor)
	course := createCourse(t, db, instructor)
	student, token := createUser(t, db, cfg, "student@x.com", models.RoleStudent)

	path := fmt.Sprintf("/api/enrollments/%d", course.ID)

	status, env := doRequest(t, app, fiber.MethodPost, path, token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var enrollment models.Enrollment
	decodeData(t, env, &enrollment)
	assert.Equal(t, student.ID, enrollment.UserID)
	assert.Zero(t, enrollment.ProgressPercentage)

	status, _ = doRequest(t, app, fiber.MethodPost, path, token, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	var count int64
	db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnrollUnknownCourse(t *testing.T) {
	app, db, cfg := newTestApp(t)

	_, token := createUser(t, db, cfg, "student@x.com", models.RoleStudent)

	status, _ := doRequest(t, app, fiber.MethodPost, "/api/enrollments/42", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestEnrollRequiresToken(t *testing.T) {
	app, db, cfg := newTestApp(t)

	instructor, _ := createUser(t, db, cfg, "inst@x.com", models.RoleInstructor)
	course := createCourse(t, db, instructor)

	status, _ := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/enrollments/%d", course.ID), "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestGetMyCourses(t *testing.T) {
	app, db, cfg := newTestApp(t)

	instructor, _ := createUser(t, db, cfg, "inst@x.com", models.RoleInstructor)
	student, token := createUser(t, db, cfg, "student@x.com", models.RoleStudent)

	first := createCourse(t, db, instructor)
	second := createCourse(t, db, instructor)
	enroll(t, db, student, first)
	enroll(t, db, student, second)

	status, env := doRequest(t, app, fiber.MethodGet, "/api/my-courses", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var myCourses []struct {
		Course     models.Course     `json:"course"`
		Enrollment models.Enrollment `json:"enrollment"`
	}
	decodeData(t, env, &myCourses)
	require.Len(t, myCourses, 2)
	assert.Equal(t, first.ID, myCourses[0].Course.ID)
	assert.Equal(t, second.ID, myCourses[1].Course.ID)
}
