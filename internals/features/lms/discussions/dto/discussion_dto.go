package dto

// CreatePostRequest is the POST /api/discussion body.
type CreatePostRequest struct {
	AuthorName string `json:"authorName" validate:"required"`
	AuthorRole string `json:"authorRole" validate:"required,oneof=teacher student"`
	PostText   string `json:"postText" validate:"required"`
}
