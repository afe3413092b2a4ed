package repository

import (
	"context"

	"microblog/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection("comments")}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		c.ID = id
	}
	return nil
}

func (r *CommentRepository) GetAll(ctx context.Context) ([]domain.Comment, error) {
	return r.find(ctx, bson.M{})
}

func (r *CommentRepository) GetByPostID(ctx context.Context, postID bson.ObjectID) ([]domain.Comment, error) {
	return r.find(ctx, bson.M{"postId": postID})
}

func (r *CommentRepository) find(ctx context.Context, filter bson.M) ([]domain.Comment, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	comments := []domain.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Comment, error) {
	var c domain.Comment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Update(ctx context.Context, id bson.ObjectID, fields bson.M) (*domain.Comment, error) {
	var c domain.Comment
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) (*domain.Comment, error) {
	var c domain.Comment
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteByPostID removes every comment attached to the post. Used by
// the post cascade delete.
func (r *CommentRepository) DeleteByPostID(ctx context.Context, postID bson.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
