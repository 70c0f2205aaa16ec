package models

import (
	"time"

	"gorm.io/gorm"
)

// Meeting stores virtual-meeting metadata for a course. The system
// only keeps the external join URL; there is no meeting transport.
// InstructorID is denormalized from the owning course.
type Meeting struct {
	gorm.Model
	CourseID        uint      `json:"course_id" gorm:"index;not null"`
	Title           string    `json:"title"`
	Description     string    `json:"description" gorm:"type:text"`
	ScheduledAt     time.Time `json:"scheduled_at" gorm:"index"`
	DurationMinutes int       `json:"duration_minutes" gorm:"default:60"`
	MeetingURL      string    `json:"meeting_url"`
	InstructorID    uint      `json:"instructor_id" gorm:"index;not null"`
	MaxParticipants int       `json:"max_participants" gorm:"default:50"`
}
