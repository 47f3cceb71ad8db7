package models

import (
	"time"
)

// BookingDB represents a booking record in the database.
// UserID is the owning user and is immutable after creation.
type BookingDB struct {
	ID          int64     `json:"id" db:"id"`                 // Primary key
	UserID      int64     `json:"userId" db:"user_id"`        // Owning user
	Title       string    `json:"title" db:"title"`           // Required title
	Description *string   `json:"description" db:"description"` // Optional description
	StartTime   time.Time `json:"startTime" db:"start_time"`  // Booking start
	EndTime     time.Time `json:"endTime" db:"end_time"`      // Booking end
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`  // Creation timestamp
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`  // Last update timestamp
}
