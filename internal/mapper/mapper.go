// Package mapper converts between transfer records and storage models.
// Every function is pure: no store access, no mutation of its input.
package mapper

import (
	"github.com/SocialNetworkApp/post-service/internal/dto"
	"github.com/SocialNetworkApp/post-service/internal/model"
)

func PostToModel(d *dto.Post) model.Post {
	return model.Post{
		ID:         d.ID,
		AuthorID:   d.AuthorID,
		Content:    d.Content,
		Visibility: d.Visibility,
		CreatedAt:  d.CreatedAt,
		ModifiedAt: d.ModifiedAt,
	}
}

func FullPostToDTO(p *model.FullPost) *dto.Post {
	d := &dto.Post{
		ID:         p.Post.ID,
		AuthorID:   p.Post.AuthorID,
		Content:    p.Post.Content,
		Visibility: p.Post.Visibility,
		CreatedAt:  p.Post.CreatedAt,
		ModifiedAt: p.Post.ModifiedAt,
	}
	if p.Photo != nil {
		url := p.Photo.URL
		d.PhotoURL = &url
	}
	if p.Video != nil {
		url := p.Video.URL
		d.VideoURL = &url
	}
	return d
}

func FullPostsToDTOs(posts []*model.FullPost) []*dto.Post {
	dtos := make([]*dto.Post, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, FullPostToDTO(p))
	}
	return dtos
}

func FullPostFromDTO(d *dto.Post) *model.FullPost {
	full := &model.FullPost{Post: PostToModel(d)}
	if d.PhotoURL != nil {
		full.Photo = &model.Photo{PostID: d.ID, URL: *d.PhotoURL}
	}
	if d.VideoURL != nil {
		full.Video = &model.Video{PostID: d.ID, URL: *d.VideoURL}
	}
	return full
}

func PhotoToModel(d *dto.Photo) model.Photo {
	return model.Photo{ID: d.ID, URL: d.URL}
}

func PhotoToDTO(p *model.Photo) *dto.Photo {
	return &dto.Photo{ID: p.ID, URL: p.URL}
}

func VideoToModel(d *dto.Video) model.Video {
	return model.Video{ID: d.ID, URL: d.URL}
}

func VideoToDTO(v *model.Video) *dto.Video {
	return &dto.Video{ID: v.ID, URL: v.URL}
}

func UserToDTO(u *model.User) *dto.User {
	return &dto.User{
		ID:                u.ID,
		Username:          u.Username,
		ProfilePictureURL: u.ProfilePictureURL,
		CoverPictureURL:   u.CoverPictureURL,
	}
}
