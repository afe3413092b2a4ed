package comments

type CreateCommentRequest struct {
	Owner   string `json:"owner" validate:"required"`
	Content string `json:"content" validate:"required"`
	PostID  string `json:"postId" validate:"required"`
}

// UpdateCommentRequest applies only the fields that are present. The
// post reference is fixed at creation and cannot be moved.
type UpdateCommentRequest struct {
	Owner   string `json:"owner,omitempty"`
	Content string `json:"content,omitempty"`
}
