package models

import "gorm.io/gorm"

// LessonType is the closed set of lesson content types.
type LessonType string

const (
	LessonVideo      LessonType = "video"
	LessonText       LessonType = "text"
	LessonQuiz       LessonType = "quiz"
	LessonAssignment LessonType = "assignment"
)

// Valid reports whether t is one of the known lesson types.
func (t LessonType) Valid() bool {
	switch t {
	case LessonVideo, LessonText, LessonQuiz, LessonAssignment:
		return true
	}
	return false
}

// Lesson belongs to a course by reference. OrderIndex is a sort key
// only; it is not required to be unique within the course.
type Lesson struct {
	gorm.Model
	CourseID        uint       `json:"course_id" gorm:"index;not null"`
	Title           string     `json:"title"`
	Description     string     `json:"description" gorm:"type:text"`
	Content         string     `json:"content" gorm:"type:text"` // video URL, text body, etc.
	LessonType      LessonType `json:"lesson_type" gorm:"default:'text'"`
	DurationMinutes int        `json:"duration_minutes" gorm:"default:0"`
	OrderIndex      int        `json:"order" gorm:"default:0"`
}
