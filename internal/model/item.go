package model

import "time"

// Item is the domain model for a todo entry.
// Field names in JSON are fixed; the data file is the public contract.
type Item struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
