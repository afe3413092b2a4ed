package comments

import (
	"context"
	"errors"

	"microblog/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Service struct {
	comments CommentRepositoryInterface
}

func NewService(comments CommentRepositoryInterface) *Service {
	return &Service{comments: comments}
}

// List returns every comment, or only the ones attached to a post when
// postIDHex is non-empty.
func (s *Service) List(ctx context.Context, postIDHex string) ([]domain.Comment, error) {
	if postIDHex == "" {
		return s.comments.GetAll(ctx)
	}
	postID, err := bson.ObjectIDFromHex(postIDHex)
	if err != nil {
		return nil, ErrInvalidPostID
	}
	return s.comments.GetByPostID(ctx, postID)
}

func (s *Service) Create(ctx context.Context, req CreateCommentRequest) (*domain.Comment, error) {
	postID, err := bson.ObjectIDFromHex(req.PostID)
	if err != nil {
		return nil, ErrInvalidPostID
	}

	comment := &domain.Comment{
		Owner:   req.Owner,
		Content: req.Content,
		PostID:  postID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) Get(ctx context.Context, idHex string) (*domain.Comment, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *Service) Update(ctx context.Context, idHex string, req UpdateCommentRequest) (*domain.Comment, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields := bson.M{}
	if req.Owner != "" {
		fields["owner"] = req.Owner
	}
	if req.Content != "" {
		fields["content"] = req.Content
	}
	if len(fields) == 0 {
		return s.Get(ctx, idHex)
	}

	comment, err := s.comments.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *Service) Delete(ctx context.Context, idHex string) (*domain.Comment, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	comment, err := s.comments.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}
