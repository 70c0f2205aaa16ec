package models

import (
	"gorm.io/gorm"
)

// Role is the closed set of user roles. There is no promotion endpoint;
// a user keeps the role it registered with.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"default:''"`
	Email    string `json:"email" gorm:"unique;not null"`
	Role     Role   `json:"role" gorm:"default:'student'"`
	Password string `json:"-" gorm:"not null"`
	Avatar   string `json:"avatar" gorm:"default:''"`
}
