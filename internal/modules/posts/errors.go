package posts

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidID    = errors.New("invalid post id")
)
