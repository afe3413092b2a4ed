package auth

import (
	"context"

	"microblog/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AccountRepositoryInterface — only the methods the session authority uses
type AccountRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, a *domain.Account) error
	SetRefreshTokens(ctx context.Context, id bson.ObjectID, tokens []string) error
	Delete(ctx context.Context, id bson.ObjectID) error
}
