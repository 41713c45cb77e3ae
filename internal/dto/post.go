package dto

import (
	"time"

	"github.com/google/uuid"
)

// Post is the transfer representation of a post and its media attachment.
type Post struct {
	ID         int64     `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Content    string    `json:"content"`
	Visibility string    `json:"visibility"`
	PhotoURL   *string   `json:"photo_url"`
	VideoURL   *string   `json:"video_url"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

type Photo struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type Video struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type User struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	CoverPictureURL   *string   `json:"cover_picture_url"`
}

// UploadFile carries the raw bytes of a client upload into the service layer.
type UploadFile struct {
	Name string
	Data []byte
}
