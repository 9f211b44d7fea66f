package models

import "time"

// Note belongs to a single user and is returned with the profile projection.
// Rows are removed together with their owner (FK cascade).
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
