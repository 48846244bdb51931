package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockrepo "passport/internal/mocks/repository"
	mocksvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	userRepo *mockrepo.MockUserRepository
	hasher   *mocksvc.MockPasswordHasher
	tokens   *mocksvc.MockTokenService
	svc      usecase.AuthUsecase
}

func newAuthServiceFixture() *authServiceFixture {
	f := &authServiceFixture{
		userRepo: new(mockrepo.MockUserRepository),
		hasher:   new(mocksvc.MockPasswordHasher),
		tokens:   new(mocksvc.MockTokenService),
	}
	f.svc = NewAuthService(AuthServiceParams{
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func activeUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice Liddell",
		PasswordHash: "pbkdf2-sha256$120000$c2FsdA$aGFzaA",
		Active:       true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthServiceFixture()
	user := activeUser()

	f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	f.hasher.On("Verify", "correct horse", user.PasswordHash).Return(true)
	f.tokens.On("IssueToken", user).Return("signed.jwt.token", nil)
	f.tokens.On("TokenDuration").Return(time.Hour)

	out, err := f.svc.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	require.NotNil(t, out.User)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, "alice", out.User.Username)
	f.userRepo.AssertExpectations(t)
	f.hasher.AssertExpectations(t)
	f.tokens.AssertExpectations(t)
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller so the endpoint cannot be used to probe which usernames exist.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

		out, err := f.svc.Login(context.Background(), &usecase.LoginInput{Username: "ghost", Password: "whatever"})

		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := activeUser()
		f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
		f.hasher.On("Verify", "wrong", user.PasswordHash).Return(false)

		out, err := f.svc.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "wrong"})

		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("inactive account", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := activeUser()
		user.Active = false
		f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)

		out, err := f.svc.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "correct horse"})

		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		f.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login_TokenIssuanceFailure(t *testing.T) {
	f := newAuthServiceFixture()
	user := activeUser()

	f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	f.hasher.On("Verify", "correct horse", user.PasswordHash).Return(true)
	f.tokens.On("IssueToken", user).Return("", errors.New("signing failed"))

	out, err := f.svc.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "correct horse"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, errors.New("connection reset"))

	out, err := f.svc.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "correct horse"})

	require.Error(t, err)
	assert.Nil(t, out)
	// Infrastructure failures must not masquerade as credential failures.
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
