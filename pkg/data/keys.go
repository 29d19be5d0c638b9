// Package data provides data management functionality for the Fitnote
// application: the user directory and the owner-scoped task lists.
package data

// CurrentUserKey is the convenience slot holding the last authenticated
// user's projection, read back on startup for auto-login.
const CurrentUserKey = "current_user"

// UserKey returns the storage key of the user record identified by email.
func UserKey(email string) string {
	return "user_" + email
}

// TaskScopeKey returns the storage key of an owner scope's task document.
func TaskScopeKey(owner string) string {
	return "tasks_" + owner
}
