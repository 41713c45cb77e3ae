package dto

type CreatePostRequest struct {
	Content    string  `form:"content" binding:"required"`
	Visibility string  `form:"visibility"`
	PhotoURL   *string `form:"photo_url"`
	VideoURL   *string `form:"video_url"`
}

type EditPostRequest struct {
	ID         int64  `json:"id" binding:"required"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}
