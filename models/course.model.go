package models

import "gorm.io/gorm"

// Course represents a learning course. The creating instructor is the
// immutable owner; InstructorName is denormalized for listings.
type Course struct {
	gorm.Model
	Title          string  `json:"title"`
	Description    string  `json:"description" gorm:"type:text"`
	InstructorID   uint    `json:"instructor_id" gorm:"index;not null"`
	InstructorName string  `json:"instructor_name"`
	Thumbnail      string  `json:"thumbnail"`
	DurationHours  int     `json:"duration_hours" gorm:"default:0"`
	Level          string  `json:"level"` // Beginner, Intermediate, Advanced
	Price          float64 `json:"price" gorm:"default:0"`
	IsPublished    bool    `json:"is_published" gorm:"default:true"`
}
