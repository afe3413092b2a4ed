package posts

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Owner   string `json:"owner" validate:"required"`
}

// UpdatePostRequest applies only the fields that are present.
type UpdatePostRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Owner   string `json:"owner,omitempty"`
}
