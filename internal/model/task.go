package model

import "time"

// Task is a single to-do item. CompletedAt is non-nil iff Completed is true;
// both fields always change together.
type Task struct {
	ID          string     `json:"id"`
	Content     string     `json:"content"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}
