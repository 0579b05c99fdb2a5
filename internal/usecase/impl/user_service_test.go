package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"payverify/internal/domain/entity"
	domainerrors "payverify/internal/domain/errors"
	"payverify/internal/domain/repository"
	"payverify/internal/domain/service"
	mockRepo "payverify/internal/mocks/repository"
	mockSvc "payverify/internal/mocks/service"
	"payverify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service        usecase.UserUsecase
	userRepo       *mockRepo.MockUserRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:       userRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return userServiceFixtures{
		service:        svc,
		userRepo:       userRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		eventPublisher: eventPublisher,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()
	newID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Equal(t, input.AccountNumber, user.AccountNumber)
			user.ID = newID
			user.CreatedAt = time.Now()
		}).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishUserRegistered(ctx, mock.MatchedBy(func(event *service.UserRegisteredEvent) bool {
			return event.UserID == newID.String() && event.Email == input.Email && event.Username == input.Username
		})).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.City, output.User.City)
	assert.Empty(t, output.User.PasswordHash)
}

func TestUserService_RegisterUser_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.RegisterUserInput)
	}{
		{name: "first name", mutate: func(in *usecase.RegisterUserInput) { in.FirstName = "" }},
		{name: "last name", mutate: func(in *usecase.RegisterUserInput) { in.LastName = "" }},
		{name: "id number", mutate: func(in *usecase.RegisterUserInput) { in.IDNumber = "" }},
		{name: "account number", mutate: func(in *usecase.RegisterUserInput) { in.AccountNumber = "" }},
		{name: "username", mutate: func(in *usecase.RegisterUserInput) { in.Username = "" }},
		{name: "email", mutate: func(in *usecase.RegisterUserInput) { in.Email = "" }},
		{name: "password", mutate: func(in *usecase.RegisterUserInput) { in.Password = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectations: a store call would fail the test.
			fx := createTestUserService(t)
			input := newRegisterInput()
			tt.mutate(input)

			output, err := fx.service.RegisterUser(context.Background(), input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "Missing required fields", appErr.Message())
		})
	}
}

func TestUserService_RegisterUser_FieldTooLong(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(in *usecase.RegisterUserInput)
		wantDetails string
	}{
		{
			name:        "first name",
			mutate:      func(in *usecase.RegisterUserInput) { in.FirstName = strings.Repeat("a", 101) },
			wantDetails: "too long: FirstName (max 100)",
		},
		{
			name:        "account number",
			mutate:      func(in *usecase.RegisterUserInput) { in.AccountNumber = strings.Repeat("1", 65) },
			wantDetails: "too long: AccountNumber (max 64)",
		},
		{
			name:        "email",
			mutate:      func(in *usecase.RegisterUserInput) { in.Email = strings.Repeat("a", 250) + "@example.com" },
			wantDetails: "too long: Email (max 255)",
		},
		{
			name:        "optional phone number",
			mutate:      func(in *usecase.RegisterUserInput) { in.PhoneNumber = strings.Repeat("0", 33) },
			wantDetails: "too long: PhoneNumber (max 32)",
		},
		{
			name: "several fields sorted",
			mutate: func(in *usecase.RegisterUserInput) {
				in.PostalCode = strings.Repeat("9", 21)
				in.City = strings.Repeat("c", 101)
			},
			wantDetails: "too long: City (max 100), PostalCode (max 20)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository or hasher expectations: the input must be rejected first.
			fx := createTestUserService(t)
			input := newRegisterInput()
			tt.mutate(input)

			output, err := fx.service.RegisterUser(context.Background(), input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, domainerrors.ErrFieldTooLong.Message(), appErr.Message())
			assert.Equal(t, tt.wantDetails, appErr.Details())
		})
	}
}

func TestUserService_RegisterUser_MissingReportedBeforeTooLong(t *testing.T) {
	fx := createTestUserService(t)
	input := newRegisterInput()
	input.FirstName = strings.Repeat("a", 101)
	input.Email = ""

	_, err := fx.service.RegisterUser(context.Background(), input)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Missing required fields", appErr.Message())
	assert.Equal(t, "missing: Email", appErr.Details())
}

func TestUserService_RegisterUser_LimitsCountCharacters(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()
	input.FirstName = strings.Repeat("é", 100)

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.eventPublisher.EXPECT().PublishUserRegistered(ctx, mock.AnythingOfType("*service.UserRegisteredEvent")).Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.FirstName, output.User.FirstName)
}

func TestUserService_RegisterUser_NilInput(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.RegisterUser(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_RegisterUser_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(newStoredUser(input.Email, "999"), nil)

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_RegisterUser_WriteTimeConflict(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUser)

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishUserRegistered(ctx, mock.AnythingOfType("*service.UserRegisteredEvent")).
		Return(errors.New("topic unavailable"))

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output.User)
}

func TestUserService_RegisterUser_InfrastructureErrors(t *testing.T) {
	dbErr := errors.New("connection reset")

	t.Run("email lookup fails", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		input := newRegisterInput()

		fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, dbErr)

		_, err := fx.service.RegisterUser(ctx, input)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("hashing fails", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		input := newRegisterInput()
		hashErr := errors.New("entropy exhausted")

		fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(input.Password).Return("", hashErr)

		_, err := fx.service.RegisterUser(ctx, input)
		assert.ErrorIs(t, err, hashErr)
	})

	t.Run("password too long", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		input := newRegisterInput()

		fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(input.Password).Return("", domainerrors.ErrPasswordTooLong)

		_, err := fx.service.RegisterUser(ctx, input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("insert fails", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		input := newRegisterInput()

		fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(dbErr)

		_, err := fx.service.RegisterUser(ctx, input)
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	stored := newStoredUser("ada@example.com", "1234567890")
	input := &usecase.LoginInput{Username: "ada", AccountNumber: "1234567890", Password: "Str0ngPassw0rd!"}

	fx.userRepo.EXPECT().FindByUsernameAndAccount(ctx, "ada", "1234567890").Return(stored, nil)
	fx.hasher.EXPECT().Verify(input.Password, stored.PasswordHash).Return(true, nil)
	fx.tokenService.EXPECT().GenerateAccessToken(stored.ID).Return("signed.jwt.token", nil)
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, 15*time.Minute, output.ExpiresIn)
	assert.Equal(t, stored.ID, output.User.ID)
	assert.Empty(t, output.User.PasswordHash)
	assert.Equal(t, "$2a$10$storedhash", stored.PasswordHash, "stored entity must not be mutated")
}

func TestUserService_Login_MissingFields(t *testing.T) {
	inputs := []*usecase.LoginInput{
		{AccountNumber: "1234567890", Password: "pw"},
		{Username: "ada", Password: "pw"},
		{Username: "ada", AccountNumber: "1234567890"},
		nil,
	}

	for _, input := range inputs {
		fx := createTestUserService(t)

		_, err := fx.service.Login(context.Background(), input)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Missing username, account number or password", appErr.Message())
	}
}

func TestUserService_Login_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsernameAndAccount(ctx, "ada", "000").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ada", AccountNumber: "000", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Login_InvalidPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	stored := newStoredUser("ada@example.com", "1234567890")

	fx.userRepo.EXPECT().FindByUsernameAndAccount(ctx, "ada", "1234567890").Return(stored, nil)
	fx.hasher.EXPECT().Verify("wrong", stored.PasswordHash).Return(false, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ada", AccountNumber: "1234567890", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_MalformedHash(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	stored := newStoredUser("ada@example.com", "1234567890")
	hashErr := errors.New("crypto/bcrypt: hashedSecret too short")

	fx.userRepo.EXPECT().FindByUsernameAndAccount(ctx, "ada", "1234567890").Return(stored, nil)
	fx.hasher.EXPECT().Verify("pw", stored.PasswordHash).Return(false, hashErr)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ada", AccountNumber: "1234567890", Password: "pw"})
	assert.ErrorIs(t, err, hashErr)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	stored := newStoredUser("ada@example.com", "1234567890")

	fx.userRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	user, err := fx.service.GetProfile(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Email, user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
