package models

import (
	"time"
)

type User struct {
	UserID      string    `json:"id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	DisplayName *string   `json:"displayName" db:"display_name"`
	Email       string    `json:"email" db:"email"`
	Bio         *string   `json:"bio" db:"bio"`
	Image       *string   `json:"image" db:"image"`
	IsVerified  bool      `json:"isVerified" db:"is_verified"`
	IsAdmin     bool      `json:"isAdmin" db:"is_admin"`
	DateJoined  time.Time `json:"dateJoined" db:"date_joined"`
}

type Post struct {
	PostID    string    `json:"id" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Like struct {
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AuthorSummary is the author slice joined into every post projection.
type AuthorSummary struct {
	UserID      string  `json:"id" db:"author_id"`
	Name        string  `json:"name" db:"author_name"`
	DisplayName *string `json:"displayName" db:"author_display_name"`
	Image       *string `json:"image" db:"author_image"`
}

// PostProjection is the shape a post crosses the API boundary in:
// the post row, its author summary, the like count and the viewer flag.
type PostProjection struct {
	PostID      string        `json:"id" db:"post_id"`
	Content     string        `json:"content" db:"content"`
	ImageURL    *string       `json:"imageUrl" db:"image_url"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	Author      AuthorSummary `json:"author"`
	Likes       int           `json:"likes" db:"likes"`
	LikedByUser bool          `json:"likedByUser" db:"liked_by_user"`
}

// Stats are the aggregate row counts surfaced on the status endpoint.
type Stats struct {
	Users int `json:"users" db:"users"`
	Posts int `json:"posts" db:"posts"`
	Likes int `json:"likes" db:"likes"`
}

// Profile is the public user projection. DisplayName falls back to the
// account handle when the user never set one.
type Profile struct {
	UserID          string    `json:"id"`
	DisplayName     string    `json:"displayName"`
	AccountUsername string    `json:"accountUsername"`
	Bio             *string   `json:"bio"`
	Image           *string   `json:"image"`
	DateJoined      time.Time `json:"dateJoined"`
	IsVerified      bool      `json:"isVerified"`
	IsAdmin         bool      `json:"isAdmin"`
}
