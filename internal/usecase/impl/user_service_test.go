package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

type userServiceFixture struct {
	userRepo *mockrepo.MockUserRepository
	hasher   *mocksvc.MockPasswordHasher
	svc      usecase.UserUsecase
}

func newUserServiceFixture() *userServiceFixture {
	f := &userServiceFixture{
		userRepo: new(mockrepo.MockUserRepository),
		hasher:   new(mocksvc.MockPasswordHasher),
	}
	f.svc = NewUserService(UserServiceParams{
		TxManager: &mockrepo.PassthroughTransactionManager{
			Factory: &mockrepo.StaticRepositoryFactory{UserRepository: f.userRepo},
		},
		UserRepo: f.userRepo,
		Hasher:   f.hasher,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func registerInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Liddell",
		Password: "correct horse battery",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	f := newUserServiceFixture()
	input := registerInput()

	f.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	f.hasher.On("Hash", input.Password).Return("pbkdf2-sha256$120000$c2FsdA$aGFzaA", nil)
	f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, repository.ErrUserNotFound)
	f.userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "alice" &&
			u.Email == "alice@example.com" &&
			u.PasswordHash == "pbkdf2-sha256$120000$c2FsdA$aGFzaA" &&
			u.Active
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = uuid.New()
	}).Return(nil)

	out, err := f.svc.Register(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.Equal(t, "alice", out.User.Username)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
	f.userRepo.AssertExpectations(t)
	f.hasher.AssertExpectations(t)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	f := newUserServiceFixture()
	input := registerInput()
	input.Password = "short"

	f.hasher.On("ValidatePasswordStrength", "short").
		Return(domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters long"))

	out, err := f.svc.Register(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_DuplicateIdentity(t *testing.T) {
	t.Run("username taken", func(t *testing.T) {
		f := newUserServiceFixture()
		input := registerInput()

		f.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
		f.hasher.On("Hash", input.Password).Return("hash", nil)
		f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(activeUser(), nil)

		out, err := f.svc.Register(context.Background(), input)

		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newUserServiceFixture()
		input := registerInput()

		f.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
		f.hasher.On("Hash", input.Password).Return("hash", nil)
		f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, repository.ErrUserNotFound)
		f.userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(activeUser(), nil)

		out, err := f.svc.Register(context.Background(), input)

		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_GetUser(t *testing.T) {
	f := newUserServiceFixture()
	user := activeUser()

	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	view, err := f.svc.GetUser(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, user.Email, view.Email)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	f := newUserServiceFixture()
	id := uuid.New()

	f.userRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	view, err := f.svc.GetUser(context.Background(), id)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateUser(t *testing.T) {
	f := newUserServiceFixture()
	user := activeUser()
	newEmail := "alice+new@example.com"
	newName := "Alice L."

	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.userRepo.On("FindByEmail", mock.Anything, newEmail).Return(nil, repository.ErrUserNotFound)
	f.userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == newEmail && u.FullName == newName
	})).Return(nil)

	view, err := f.svc.UpdateUser(context.Background(), user.ID, &usecase.UpdateUserInput{
		Email:    &newEmail,
		FullName: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, newEmail, view.Email)
	assert.Equal(t, newName, view.FullName)
	f.userRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	f := newUserServiceFixture()
	user := activeUser()
	takenEmail := "bob@example.com"

	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.userRepo.On("FindByEmail", mock.Anything, takenEmail).Return(&entity.User{ID: uuid.New()}, nil)

	view, err := f.svc.UpdateUser(context.Background(), user.ID, &usecase.UpdateUserInput{Email: &takenEmail})

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser(t *testing.T) {
	f := newUserServiceFixture()
	id := uuid.New()

	f.userRepo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, f.svc.DeleteUser(context.Background(), id))
	f.userRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	f := newUserServiceFixture()
	id := uuid.New()

	f.userRepo.On("Delete", mock.Anything, id).Return(repository.ErrUserNotFound)

	err := f.svc.DeleteUser(context.Background(), id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
