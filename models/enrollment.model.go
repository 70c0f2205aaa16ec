package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment asserts a user is registered into a course. At most one
// row exists per (user, course). ProgressPercentage is a cached value
// written only by the progress aggregator.
type Enrollment struct {
	gorm.Model
	UserID             uint      `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID           uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	ProgressPercentage float64   `json:"progress_percentage" gorm:"default:0"`
	LastAccessed       time.Time `json:"last_accessed"`
}
