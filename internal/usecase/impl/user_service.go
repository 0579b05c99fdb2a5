package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "payverify/internal/delivery/context"
	"payverify/internal/domain/entity"
	domainerrors "payverify/internal/domain/errors"
	"payverify/internal/domain/repository"
	"payverify/internal/domain/service"
	"payverify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser validates the input, rejects a known email, hashes the password and stores the user.
// The unique constraints of the store decide races between concurrent registrations.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	if err := validateInput(input, domainerrors.ErrMissingRegistrationFields); err != nil {
		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Registration rejected, email already registered")

		return nil, domainerrors.ErrEmailAlreadyRegistered
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		IDNumber:      input.IDNumber,
		AccountNumber: input.AccountNumber,
		Username:      input.Username,
		Email:         input.Email,
		PasswordHash:  hash,
		PhoneNumber:   input.PhoneNumber,
		Country:       input.Country,
		Address:       input.Address,
		City:          input.City,
		PostalCode:    input.PostalCode,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			srv.log(ctx).Info("Registration rejected by unique constraint")

			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))
	srv.publishRegistered(ctx, user)

	return &usecase.RegisterOutput{User: withoutHash(user)}, nil
}

// publishRegistered announces the new user. Failures are logged and never fail the registration.
func (srv *userService) publishRegistered(ctx context.Context, user *entity.User) {
	registeredAt := user.CreatedAt
	if registeredAt.IsZero() {
		registeredAt = srv.now()
	}

	event := &service.UserRegisteredEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		UserID:       user.ID.String(),
		Email:        user.Email,
		Username:     user.Username,
		RegisteredAt: registeredAt.UTC(),
	}
	if err := srv.eventPublisher.PublishUserRegistered(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish user registered event",
			slog.String("userID", event.UserID),
			slog.Any("error", err),
		)
	}
}

// Login authenticates the (username, account number, password) triple and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := validateInput(input, domainerrors.ErrMissingLoginFields); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsernameAndAccount(ctx, input.Username, input.AccountNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		srv.log(ctx).Info("Login rejected, invalid credentials", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		User:        withoutHash(user),
		AccessToken: token,
		ExpiresIn:   srv.tokenService.GetAccessTokenDuration(),
	}, nil
}

// GetProfile returns the user identified by an authenticated token subject.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return withoutHash(user), nil
}

func withoutHash(user *entity.User) *entity.User {
	out := *user
	out.PasswordHash = ""

	return &out
}
