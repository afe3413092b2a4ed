package repository

import (
	"context"
	"strings"

	"microblog/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection("accounts")}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if a.RefreshTokens == nil {
		a.RefreshTokens = []string{}
	}
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		a.ID = id
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Account, error) {
	var a domain.Account
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var a domain.Account
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	return n > 0, err
}

func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"username": username})
	return n > 0, err
}

func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": a.ID}, bson.M{"$set": bson.M{
		"email":     strings.ToLower(strings.TrimSpace(a.Email)),
		"username":  a.Username,
		"firstName": a.FirstName,
		"lastName":  a.LastName,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetRefreshTokens overwrites the account's token list. The callers
// read the list, mutate it, and write it back; concurrent writers race
// and the last write wins.
func (r *AccountRepository) SetRefreshTokens(ctx context.Context, id bson.ObjectID, tokens []string) error {
	if tokens == nil {
		tokens = []string{}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"refreshTokens": tokens}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
