package comments

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidID       = errors.New("invalid comment id")
	ErrInvalidPostID   = errors.New("invalid post id")
)
