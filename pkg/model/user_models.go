// Package model defines the data structures used throughout the Fitnote application.
package model

import "time"

// User represents a registered account. Email is the sole identity key;
// the password is kept only as a bcrypt hash.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash []byte    `json:"password_hash"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
}

// UserProfile is the reduced projection of a User handed to the
// presentation layer and persisted as the current-user slot. It never
// carries credentials.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Profile returns the password-free projection of the user.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

// UserChange describes an identity re-key after a successful account
// update, published on the event bus so owner-scoped data can follow.
type UserChange struct {
	OldEmail string
	NewEmail string
}
