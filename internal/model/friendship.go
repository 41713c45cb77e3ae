package model

import "github.com/google/uuid"

// Friendship is a directed edge: UserID follows FriendID.
type Friendship struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FriendID  uuid.UUID `json:"friend_id"`
	IsDeleted bool      `json:"is_deleted"`
}
