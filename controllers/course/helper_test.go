package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"istem/config"
	authController "istem/controllers/auth"
	controllers "istem/controllers/course"
	"istem/database"
	"istem/middleware"
	"istem/models"
	"istem/routers/authRoutes"
	"istem/routers/courseRoutes"
	"istem/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:istem_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		JWTKey:    "test-secret",
		JWTExpiry: 24 * time.Hour,
		SaltRound: bcrypt.MinCost,
	}
	db := newTestDB(t)

	app := fiber.New()
	api := app.Group("/api")

	ac := authController.NewAuthController(db, cfg)
	cc := controllers.NewCourseController(db, cfg)
	authRoutes.SetupAuthRoutes(api, cfg, ac)
	courseRoutes.SetupCourseRoutes(api, cfg, cc)
	userRoutes.SetupUserRoutes(api, cfg, cc)

	return app, db, cfg
}

// createUser inserts a user directly and returns it with a valid token.
func createUser(t *testing.T, db *gorm.DB, cfg *config.Config, email string, role models.Role) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     "Test " + string(role),
		Email:    email,
		Role:     role,
		Password: string(hash),
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(cfg, &user)
	require.NoError(t, err)
	return &user, token
}

func createCourse(t *testing.T, db *gorm.DB, instructor *models.User) *models.Course {
	t.Helper()

	course := models.Course{
		Title:          "Test Course",
		Description:    "A course",
		InstructorID:   instructor.ID,
		InstructorName: instructor.Name,
		DurationHours:  10,
		Level:          "Beginner",
		IsPublished:    true,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func enroll(t *testing.T, db *gorm.DB, user *models.User, course *models.Course) *models.Enrollment {
	t.Helper()

	enrollment := models.Enrollment{
		UserID:       user.ID,
		CourseID:     course.ID,
		LastAccessed: time.Now(),
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return &enrollment
}

// envelope is the JsonResponse wire format.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doRequest performs a request against the app and decodes the
// response envelope.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	}
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}
