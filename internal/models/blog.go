package models

import "time"

type Category struct {
	CategoryID string    `db:"category_id"`
	Name       string    `db:"name"`
	CreatedAt  time.Time `db:"created_at"`
}

// BlogPost is a blog_posts row joined with its category and author username.
type BlogPost struct {
	PostID         string     `db:"post_id"`
	AuthorID       string     `db:"author_id"`
	AuthorUsername string     `db:"author_username"`
	Title          string     `db:"title"`
	Content        string     `db:"content"`
	CategoryID     string     `db:"category_id"`
	CategoryName   string     `db:"category_name"`
	ImageURL       *string    `db:"image_url"`
	Status         string     `db:"status"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type Comment struct {
	CommentID   string    `db:"comment_id"`
	PostID      string    `db:"post_id"`
	AuthorName  string    `db:"author_name"`
	AuthorEmail string    `db:"author_email"`
	Content     string    `db:"content"`
	CreatedAt   time.Time `db:"created_at"`
}
