package model

import "time"

// Question is a Q&A entry. Answers are owned exclusively by their parent
// question and have no independent lifecycle.
type Question struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	Answers     []Answer  `json:"answers"`
	Image       string    `json:"image,omitempty"`
}

// Answer is a reply attached to a question.
type Answer struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}
