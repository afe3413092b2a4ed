package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"microblog/internal/domain"
	"microblog/internal/pkg/token"
)

// Mock account repository implementing the interface
type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockAccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) Update(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAccountRepo) SetRefreshTokens(ctx context.Context, id bson.ObjectID, tokens []string) error {
	args := m.Called(ctx, id, tokens)
	return args.Error(0)
}

func (m *mockAccountRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testEnv struct {
	repo    *mockAccountRepo
	access  *token.Codec
	refresh *token.Codec
	svc     *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	access, err := token.New("access-secret")
	require.NoError(t, err)
	refresh, err := token.New("refresh-secret")
	require.NoError(t, err)

	repo := new(mockAccountRepo)
	return &testEnv{
		repo:    repo,
		access:  access,
		refresh: refresh,
		svc:     NewService(repo, access, refresh, 15*time.Minute),
	}
}

func TestService_Signup_Success(t *testing.T) {
	env := newTestEnv(t)
	env.repo.On("ExistsByEmail", mock.Anything, "gal@gmail.com").Return(false, nil)
	env.repo.On("ExistsByUsername", mock.Anything, "gal").Return(false, nil)
	env.repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	account, err := env.svc.Signup(context.Background(), SignupRequest{
		Email:     "gal@gmail.com",
		Username:  "gal",
		Password:  "123456",
		FirstName: "Gal",
		LastName:  "Cohen",
	})
	require.NoError(t, err)

	assert.Equal(t, "gal@gmail.com", account.Email)
	assert.Empty(t, account.RefreshTokens)
	// digest is stored, plaintext is not
	assert.NotEqual(t, "123456", account.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("123456")))
	env.repo.AssertExpectations(t)
}

func TestService_Signup_DuplicateEmailWinsOverUsername(t *testing.T) {
	env := newTestEnv(t)
	env.repo.On("ExistsByEmail", mock.Anything, "gal@gmail.com").Return(true, nil)

	_, err := env.svc.Signup(context.Background(), SignupRequest{
		Email:    "gal@gmail.com",
		Username: "gal",
		Password: "123456",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	// email check fires first, the username check never runs
	env.repo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
}

func TestService_Signup_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.repo.On("ExistsByEmail", mock.Anything, "gal@gmail.com").Return(false, nil)
	env.repo.On("ExistsByUsername", mock.Anything, "gal").Return(true, nil)

	_, err := env.svc.Signup(context.Background(), SignupRequest{
		Email:    "gal@gmail.com",
		Username: "gal",
		Password: "123456",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	env.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	env := newTestEnv(t)
	id := bson.NewObjectID()
	digest, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	env.repo.On("GetByUsername", mock.Anything, "gal").Return(&domain.Account{
		ID:            id,
		Username:      "gal",
		Password:      string(digest),
		RefreshTokens: []string{"existing-session"},
	}, nil)

	var saved []string
	env.repo.On("SetRefreshTokens", mock.Anything, id, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).([]string) }).
		Return(nil)

	pair, err := env.svc.Login(context.Background(), LoginRequest{Username: "gal", Password: "123456"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// access token resolves to the account
	claims, err := env.access.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), claims.AccountID)

	// login appends, existing sessions stay valid
	require.Len(t, saved, 2)
	assert.Equal(t, "existing-session", saved[0])
	assert.Equal(t, pair.RefreshToken, saved[1])
}

func TestService_Login_FailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	digest, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	env.repo.On("GetByUsername", mock.Anything, "nobody").Return(nil, mongo.ErrNoDocuments)
	env.repo.On("GetByUsername", mock.Anything, "gal").Return(&domain.Account{
		ID:       bson.NewObjectID(),
		Username: "gal",
		Password: string(digest),
	}, nil)

	_, unknownErr := env.svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "123456"})
	_, wrongPassErr := env.svc.Login(context.Background(), LoginRequest{Username: "gal", Password: "654321"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPassErr)
}

func TestService_Refresh_RotatesInPlace(t *testing.T) {
	env := newTestEnv(t)
	id := bson.NewObjectID()
	raw, err := env.refresh.Issue(id.Hex(), 0)
	require.NoError(t, err)

	env.repo.On("GetByID", mock.Anything, id).Return(&domain.Account{
		ID:            id,
		RefreshTokens: []string{"first-session", raw, "third-session"},
	}, nil)

	var saved []string
	env.repo.On("SetRefreshTokens", mock.Anything, id, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).([]string) }).
		Return(nil)

	pair, err := env.svc.Refresh(context.Background(), raw)
	require.NoError(t, err)
	assert.NotEqual(t, raw, pair.RefreshToken)

	// consumed token replaced in its slot, length unchanged
	require.Len(t, saved, 3)
	assert.Equal(t, "first-session", saved[0])
	assert.Equal(t, pair.RefreshToken, saved[1])
	assert.Equal(t, "third-session", saved[2])
	assert.NotContains(t, saved, raw)
}

func TestService_Refresh_UnknownTokenRevokesAllSessions(t *testing.T) {
	env := newTestEnv(t)
	id := bson.NewObjectID()
	raw, err := env.refresh.Issue(id.Hex(), 0)
	require.NoError(t, err)

	// validly signed but already rotated out of the list: replay evidence
	env.repo.On("GetByID", mock.Anything, id).Return(&domain.Account{
		ID:            id,
		RefreshTokens: []string{"some-other-session"},
	}, nil).Once()
	env.repo.On("GetByID", mock.Anything, id).Return(&domain.Account{
		ID:            id,
		RefreshTokens: []string{},
	}, nil).Once()

	var saved []string
	env.repo.On("SetRefreshTokens", mock.Anything, id, mock.Anything).
		Run(func(args mock.Arguments) { saved, _ = args.Get(2).([]string) }).
		Return(nil)

	_, err = env.svc.Refresh(context.Background(), raw)
	assert.ErrorIs(t, err, ErrSessionRevoked)
	assert.Empty(t, saved)

	// denial is idempotent against the now-empty list
	_, err = env.svc.Refresh(context.Background(), raw)
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestService_Refresh_BadSignature(t *testing.T) {
	env := newTestEnv(t)
	rogue, err := token.New("rogue-secret")
	require.NoError(t, err)
	raw, err := rogue.Issue(bson.NewObjectID().Hex(), 0)
	require.NoError(t, err)

	_, err = env.svc.Refresh(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
	env.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Refresh_AccountGone(t *testing.T) {
	env := newTestEnv(t)
	id := bson.NewObjectID()
	raw, err := env.refresh.Issue(id.Hex(), 0)
	require.NoError(t, err)

	env.repo.On("GetByID", mock.Anything, id).Return(nil, mongo.ErrNoDocuments)

	_, err = env.svc.Refresh(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Logout_RemovesExactlyOneToken(t *testing.T) {
	env := newTestEnv(t)
	id := bson.NewObjectID()
	raw, err := env.refresh.Issue(id.Hex(), 0)
	require.NoError(t, err)

	env.repo.On("GetByID", mock.Anything, id).Return(&domain.Account{
		ID:            id,
		RefreshTokens: []string{"first-session", raw, "third-session"},
	}, nil)

	var saved []string
	env.repo.On("SetRefreshTokens", mock.Anything, id, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).([]string) }).
		Return(nil)

	err = env.svc.Logout(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"first-session", "third-session"}, saved)
}

func TestService_Logout_UnknownTokenRevokesAllSessions(t *testing.T) {
	env := newTestEnv(t)
	id := bson.NewObjectID()
	raw, err := env.refresh.Issue(id.Hex(), 0)
	require.NoError(t, err)

	env.repo.On("GetByID", mock.Anything, id).Return(&domain.Account{
		ID:            id,
		RefreshTokens: []string{"a-session", "b-session"},
	}, nil)

	var saved []string
	env.repo.On("SetRefreshTokens", mock.Anything, id, mock.Anything).
		Run(func(args mock.Arguments) { saved, _ = args.Get(2).([]string) }).
		Return(nil)

	err = env.svc.Logout(context.Background(), raw)
	assert.ErrorIs(t, err, ErrSessionRevoked)
	assert.Empty(t, saved)
}
