package comments

import (
	"context"

	"microblog/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetAll(ctx context.Context) ([]domain.Comment, error)
	GetByPostID(ctx context.Context, postID bson.ObjectID) ([]domain.Comment, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.Comment, error)
	Update(ctx context.Context, id bson.ObjectID, fields bson.M) (*domain.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) (*domain.Comment, error)
}
