package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressRecord is one user's completion status for one lesson.
// At most one row exists per (user, lesson); repeated completion calls
// overwrite the row in place. CourseID is denormalized from the lesson
// so completion counts are a single filtered count.
type ProgressRecord struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	LessonID    uint       `json:"lesson_id" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
}
