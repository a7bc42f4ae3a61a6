package model

import "time"

// CommunityPost is a shared note on the community board.
type CommunityPost struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
}

// Comment is a reply attached to a community post.
type Comment struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}
