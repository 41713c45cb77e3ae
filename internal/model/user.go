package model

import "github.com/google/uuid"

type User struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	CoverPictureURL   *string   `json:"cover_picture_url"`
}
