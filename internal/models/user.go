package models

import (
	"time"
)

// UserDB represents a user record in the database.
// Password holds the bcrypt hash, never the plaintext.
type UserDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Email     string    `json:"email" db:"email"`           // Unique email
	Password  string    `json:"-" db:"password"`            // Hashed password, never serialized
	FirstName string    `json:"firstName" db:"first_name"`  // Required first name
	LastName  string    `json:"lastName" db:"last_name"`    // Required last name
	Phone     *string   `json:"phone" db:"phone"`           // Optional phone
	CreatedAt time.Time `json:"createdAt" db:"created_at"`  // Creation timestamp
}

// UserPublic is the short user view returned from register and login.
type UserPublic struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserProfile is the profile view returned from profile lookups.
// Excludes the password hash.
type UserProfile struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the short client-safe view of the user.
func (u *UserDB) Public() *UserPublic {
	return &UserPublic{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Profile returns the profile view of the user.
func (u *UserDB) Profile() *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
