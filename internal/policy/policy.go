// Package policy holds the permission predicates. They are pure functions
// over already-loaded records; handlers call them before any mutation and
// redirect to the calendar listing when they return false.
package policy

import "companycal/internal/models"

// CanCreateEvent: any authenticated user may create events.
func CanCreateEvent(user *models.User) bool {
	return user != nil
}

// CanEditEvent: the event's creator or an admin.
func CanEditEvent(user *models.User, event *models.Event) bool {
	if user == nil || event == nil {
		return false
	}
	return user.ID == event.UserID || user.IsAdmin()
}

// CanDeleteEvent: admins only. Owners may edit but not delete their own
// events.
func CanDeleteEvent(user *models.User) bool {
	return user != nil && user.IsAdmin()
}

func CanManageCategories(user *models.User) bool {
	return user != nil && user.IsAdmin()
}

func CanDeleteCategory(user *models.User) bool {
	return user != nil && user.IsAdmin()
}
