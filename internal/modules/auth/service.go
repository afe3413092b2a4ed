package auth

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"microblog/internal/domain"
	"microblog/internal/pkg/token"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Service is the session authority: it owns signup, login, refresh
// rotation and the membership-based revocation rule. All durable
// session state is the refresh-token list on the account document.
type Service struct {
	accounts  AccountRepositoryInterface
	access    *token.Codec
	refresh   *token.Codec
	accessTTL time.Duration
}

func NewService(accounts AccountRepositoryInterface, access, refresh *token.Codec, accessTTL time.Duration) *Service {
	return &Service{
		accounts:  accounts,
		access:    access,
		refresh:   refresh,
		accessTTL: accessTTL,
	}
}

// Signup runs the two uniqueness checks in order, email first, so the
// first match decides the error message.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.Account, error) {
	emailTaken, err := s.accounts.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, ErrEmailTaken
	}

	usernameTaken, err := s.accounts.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, ErrUsernameTaken
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Username:      req.Username,
		Password:      string(digest),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		RefreshTokens: []string{},
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login resolves the account by username, checks the password and
// issues a fresh token pair. The new refresh token is appended to the
// account's list; existing sessions stay valid.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	account, err := s.accounts.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.mintPair(account.ID)
	if err != nil {
		return nil, err
	}

	tokens := append(slices.Clone(account.RefreshTokens), pair.RefreshToken)
	if err := s.accounts.SetRefreshTokens(ctx, account.ID, tokens); err != nil {
		return nil, err
	}
	return pair, nil
}

// Refresh rotates a refresh token: the presented token's slot in the
// list is replaced by the newly issued one, so the list length does not
// change. A validly signed token that is not in the list is treated as
// replay evidence and revokes every session for the account.
func (s *Service) Refresh(ctx context.Context, raw string) (*TokenPair, error) {
	account, idx, err := s.resolveRefreshToken(ctx, raw)
	if err != nil {
		return nil, err
	}

	pair, err := s.mintPair(account.ID)
	if err != nil {
		return nil, err
	}

	tokens := slices.Clone(account.RefreshTokens)
	tokens[idx] = pair.RefreshToken
	if err := s.accounts.SetRefreshTokens(ctx, account.ID, tokens); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout consumes one refresh token, removing exactly that token from
// the list. Other sessions keep their tokens. The membership rule is
// the same as Refresh: an unknown token clears the whole list.
func (s *Service) Logout(ctx context.Context, raw string) error {
	account, idx, err := s.resolveRefreshToken(ctx, raw)
	if err != nil {
		return err
	}

	tokens := slices.Clone(account.RefreshTokens)
	tokens = append(tokens[:idx], tokens[idx+1:]...)
	return s.accounts.SetRefreshTokens(ctx, account.ID, tokens)
}

// resolveRefreshToken verifies the token, loads its account and runs
// the membership check. On a membership miss it clears the account's
// entire token list before reporting ErrSessionRevoked; repeating the
// call with the same token keeps failing against the now-empty list.
func (s *Service) resolveRefreshToken(ctx context.Context, raw string) (*domain.Account, int, error) {
	claims, err := s.refresh.Verify(raw)
	if err != nil {
		return nil, 0, ErrInvalidToken
	}

	id, err := bson.ObjectIDFromHex(claims.AccountID)
	if err != nil {
		return nil, 0, ErrInvalidToken
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, 0, ErrInvalidToken
		}
		return nil, 0, err
	}

	idx := slices.Index(account.RefreshTokens, raw)
	if idx < 0 {
		if err := s.accounts.SetRefreshTokens(ctx, account.ID, nil); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, 0, err
		}
		return nil, 0, ErrSessionRevoked
	}
	return account, idx, nil
}

func (s *Service) mintPair(id bson.ObjectID) (*TokenPair, error) {
	accessToken, err := s.access.Issue(id.Hex(), s.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.refresh.Issue(id.Hex(), 0)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *Service) GetAccount(ctx context.Context, idHex string) (*domain.Account, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *Service) UpdateAccount(ctx context.Context, idHex string, req UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, idHex)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		account.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.FirstName != "" {
		account.FirstName = req.FirstName
	}
	if req.LastName != "" {
		account.LastName = req.LastName
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *Service) DeleteAccount(ctx context.Context, idHex string) error {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrInvalidID
	}
	if err := s.accounts.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}
