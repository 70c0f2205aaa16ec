package middleware

import "istem/models"

// Authorization policy. Pure functions over role and ownership facts;
// callers supply those facts and map a false result to 403.

// CanCreateContent reports whether the role may create courses, lessons
// or meetings at all.
func CanCreateContent(role models.Role) bool {
	return role == models.RoleInstructor || role == models.RoleAdmin
}

// CanManageCourse reports whether the actor may add lessons or meetings
// to the course owned by ownerID. Instructors may only touch their own
// courses; admins bypass ownership.
func CanManageCourse(role models.Role, actorID, ownerID uint) bool {
	if !CanCreateContent(role) {
		return false
	}
	return actorID == ownerID || role == models.RoleAdmin
}
