package posts

import (
	"context"
	"errors"

	"microblog/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Service struct {
	posts    PostRepositoryInterface
	comments CommentPurger
}

func NewService(posts PostRepositoryInterface, comments CommentPurger) *Service {
	return &Service{posts: posts, comments: comments}
}

func (s *Service) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.GetAll(ctx)
}

func (s *Service) Create(ctx context.Context, req CreatePostRequest) (*domain.Post, error) {
	post := &domain.Post{
		Title:   req.Title,
		Content: req.Content,
		Owner:   req.Owner,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) Get(ctx context.Context, idHex string) (*domain.Post, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) Update(ctx context.Context, idHex string, req UpdatePostRequest) (*domain.Post, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields := bson.M{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Content != "" {
		fields["content"] = req.Content
	}
	if req.Owner != "" {
		fields["owner"] = req.Owner
	}
	if len(fields) == 0 {
		return s.Get(ctx, idHex)
	}

	post, err := s.posts.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Delete removes the post and every comment attached to it. A post
// with no comments leaves the comment collection unchanged.
func (s *Service) Delete(ctx context.Context, idHex string) (*domain.Post, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}

	post, err := s.posts.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if _, err := s.comments.DeleteByPostID(ctx, post.ID); err != nil {
		return nil, err
	}
	return post, nil
}
