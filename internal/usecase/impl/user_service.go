package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
// Duplicate detection and the insert run in one transaction so a concurrent
// registration cannot slip between the check and the write.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hashedPassword,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := srv.checkDuplicateIdentity(ctx, userRepo, input.Username, input.Email); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser.Public()}, nil
}

// checkDuplicateIdentity rejects a registration whose username or email is
// already taken. The database unique constraints remain the last line of
// defense; this check exists to produce precise domain errors.
func (srv *userService) checkDuplicateIdentity(ctx context.Context, userRepo repository.UserRepository, username, email string) error {
	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		return errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username uniqueness")
	}

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email uniqueness")
	}

	return nil
}

// GetUser retrieves a user's public view by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.PublicView, error) {
	srv.log(ctx).Debug("Getting user", slog.Any("userID", id))

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user.Public(), nil
}

// UpdateUser applies the given changes to an existing user. An email change
// re-checks uniqueness inside the same transaction as the write.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.PublicView, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", id))

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Email != nil && *input.Email != user.Email {
			if _, err := userRepo.FindByEmail(ctx, *input.Email); err == nil {
				return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
			} else if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email uniqueness")
			}
			user.Email = *input.Email
		}
		if input.FullName != nil {
			user.FullName = *input.FullName
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute user update transaction", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Debug("User updated", slog.Any("userID", id))

	return updated.Public(), nil
}

// DeleteUser removes a user record.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	// Single operation - use direct repository instance
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}
