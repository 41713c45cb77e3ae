package mapper

import (
	"testing"
	"time"

	"github.com/SocialNetworkApp/post-service/internal/dto"
	"github.com/SocialNetworkApp/post-service/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullPostRoundTrip(t *testing.T) {
	photoURL := "https://cdn.example.com/media/abc.png"
	now := time.Now().UTC().Truncate(time.Second)

	original := &dto.Post{
		ID:         42,
		AuthorID:   uuid.New(),
		Content:    "hello world",
		Visibility: model.VisibilityFriends,
		PhotoURL:   &photoURL,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	mapped := FullPostToDTO(FullPostFromDTO(original))
	assert.Equal(t, original, mapped)

	// repeated mapping is idempotent
	assert.Equal(t, mapped, FullPostToDTO(FullPostFromDTO(mapped)))
}

func TestFullPostToDTO_MediaSlots(t *testing.T) {
	full := &model.FullPost{
		Post:  model.Post{ID: 1, Content: "a"},
		Video: &model.Video{ID: 3, PostID: 1, URL: "https://cdn.example.com/media/v.mp4"},
	}

	d := FullPostToDTO(full)
	require.NotNil(t, d.VideoURL)
	assert.Equal(t, full.Video.URL, *d.VideoURL)
	assert.Nil(t, d.PhotoURL)
}

func TestFullPostToDTO_NoMedia(t *testing.T) {
	d := FullPostToDTO(&model.FullPost{Post: model.Post{ID: 7, Content: "plain"}})
	assert.Nil(t, d.PhotoURL)
	assert.Nil(t, d.VideoURL)
}

func TestFullPostToDTO_DoesNotAliasMedia(t *testing.T) {
	photo := &model.Photo{ID: 2, PostID: 1, URL: "https://cdn.example.com/media/p.png"}
	full := &model.FullPost{Post: model.Post{ID: 1}, Photo: photo}

	d := FullPostToDTO(full)
	*d.PhotoURL = "changed"
	assert.Equal(t, "https://cdn.example.com/media/p.png", photo.URL)
}

func TestUserToDTO(t *testing.T) {
	profile := "https://cdn.example.com/media/me.png"
	u := &model.User{ID: uuid.New(), Username: "kara", ProfilePictureURL: &profile}

	d := UserToDTO(u)
	assert.Equal(t, u.ID, d.ID)
	assert.Equal(t, u.Username, d.Username)
	assert.Equal(t, u.ProfilePictureURL, d.ProfilePictureURL)
	assert.Nil(t, d.CoverPictureURL)
}
