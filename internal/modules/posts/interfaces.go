package posts

import (
	"context"

	"microblog/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PostRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Post) error
	GetAll(ctx context.Context) ([]domain.Post, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.Post, error)
	Update(ctx context.Context, id bson.ObjectID, fields bson.M) (*domain.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) (*domain.Post, error)
}

// CommentPurger — implemented by the comment repository; used for the
// cascade delete when a post is removed.
type CommentPurger interface {
	DeleteByPostID(ctx context.Context, postID bson.ObjectID) (int64, error)
}
