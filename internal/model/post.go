package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	VisibilityPublic  = "public"
	VisibilityFriends = "friends"
	VisibilityPrivate = "private"
)

type Post struct {
	ID         int64      `json:"id"`
	AuthorID   uuid.UUID  `json:"author_id"`
	Content    string     `json:"content"`
	Visibility string     `json:"visibility"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt time.Time  `json:"modified_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
	IsDeleted  bool       `json:"is_deleted"`
}

// FullPost is a post together with its media attachment.
// At most one of Photo/Video is non-nil.
type FullPost struct {
	Post  Post   `json:"post"`
	Photo *Photo `json:"photo"`
	Video *Video `json:"video"`
}
