package model

type Photo struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"post_id"`
	URL    string `json:"url"`
}

type Video struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"post_id"`
	URL    string `json:"url"`
}
