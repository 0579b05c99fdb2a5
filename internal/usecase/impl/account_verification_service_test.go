package impl

import (
	"context"
	"net/http"
	"testing"

	domainerrors "payverify/internal/domain/errors"
	"payverify/internal/domain/repository"
	mockRepo "payverify/internal/mocks/repository"
	"payverify/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	senderEmail     = "sender@example.com"
	senderAccount   = "1111111111"
	receiverEmail   = "receiver@example.com"
	receiverAccount = "2222222222"
)

func newVerifyInput() *usecase.VerifyAccountInput {
	return &usecase.VerifyAccountInput{
		AccountNumber: senderAccount,
		SenderEmail:   senderEmail,
		AccountInfo:   receiverAccount,
		ReceiverEmail: receiverEmail,
	}
}

func createTestVerificationService(t *testing.T) (usecase.AccountVerificationUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)

	return NewAccountVerificationService(AccountVerificationServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	}), userRepo
}

func TestAccountVerificationService_Verified(t *testing.T) {
	svc, userRepo := createTestVerificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, senderEmail).Return(newStoredUser(senderEmail, senderAccount), nil)
	userRepo.EXPECT().FindByEmail(ctx, receiverEmail).Return(newStoredUser(receiverEmail, receiverAccount), nil)

	result, err := svc.VerifyAccount(ctx, newVerifyInput())

	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, usecase.OutcomeVerified, result.Outcome)
	assert.Equal(t, "Both sender and receiver verified successfully.", result.Message)
	assert.Nil(t, result.Reason)
}

func TestAccountVerificationService_Failures(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(ctx context.Context, repo *mockRepo.MockUserRepository)
		wantOutcome usecase.VerificationOutcome
		wantMessage string
		wantStatus  int
	}{
		{
			name: "sender not found",
			setup: func(ctx context.Context, repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByEmail(ctx, senderEmail).Return(nil, repository.ErrUserNotFound)
			},
			wantOutcome: usecase.OutcomeSenderNotFound,
			wantMessage: "Sender email not found in system.",
			wantStatus:  http.StatusNotFound,
		},
		{
			name: "sender account mismatch",
			setup: func(ctx context.Context, repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByEmail(ctx, senderEmail).Return(newStoredUser(senderEmail, "9999999999"), nil)
			},
			wantOutcome: usecase.OutcomeSenderAccountMismatch,
			wantMessage: "Sender account number does not match the provided email.",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name: "receiver not found",
			setup: func(ctx context.Context, repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByEmail(ctx, senderEmail).Return(newStoredUser(senderEmail, senderAccount), nil)
				repo.EXPECT().FindByEmail(ctx, receiverEmail).Return(nil, repository.ErrUserNotFound)
			},
			wantOutcome: usecase.OutcomeReceiverNotFound,
			wantMessage: "Receiver email not found in system.",
			wantStatus:  http.StatusNotFound,
		},
		{
			name: "receiver account mismatch",
			setup: func(ctx context.Context, repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByEmail(ctx, senderEmail).Return(newStoredUser(senderEmail, senderAccount), nil)
				repo.EXPECT().FindByEmail(ctx, receiverEmail).Return(newStoredUser(receiverEmail, "8888888888"), nil)
			},
			wantOutcome: usecase.OutcomeReceiverAccountMismatch,
			wantMessage: "Receiver account number does not match records.",
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo := createTestVerificationService(t)
			ctx := context.Background()
			tt.setup(ctx, userRepo)

			result, err := svc.VerifyAccount(ctx, newVerifyInput())

			require.NoError(t, err)
			assert.False(t, result.Verified)
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.wantMessage, result.Message)
			require.NotNil(t, result.Reason)
			assert.Equal(t, tt.wantStatus, result.Reason.HTTPCode())
			assert.Equal(t, string(tt.wantOutcome), result.Reason.ErrorCode())
		})
	}
}

// Both parties are wrong; the sender failure must be reported and the receiver never looked up.
func TestAccountVerificationService_SenderCheckedFirst(t *testing.T) {
	svc, userRepo := createTestVerificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, senderEmail).Return(nil, repository.ErrUserNotFound).Once()

	input := newVerifyInput()
	input.AccountInfo = "not-the-receiver-account"

	result, err := svc.VerifyAccount(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeSenderNotFound, result.Outcome)
	userRepo.AssertNotCalled(t, "FindByEmail", ctx, receiverEmail)
}

func TestAccountVerificationService_Idempotent(t *testing.T) {
	svc, userRepo := createTestVerificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, senderEmail).Return(newStoredUser(senderEmail, senderAccount), nil).Twice()
	userRepo.EXPECT().FindByEmail(ctx, receiverEmail).Return(newStoredUser(receiverEmail, "other"), nil).Twice()

	first, err := svc.VerifyAccount(ctx, newVerifyInput())
	require.NoError(t, err)
	second, err := svc.VerifyAccount(ctx, newVerifyInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAccountVerificationService_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.VerifyAccountInput)
	}{
		{name: "account number", mutate: func(in *usecase.VerifyAccountInput) { in.AccountNumber = "" }},
		{name: "sender email", mutate: func(in *usecase.VerifyAccountInput) { in.SenderEmail = "" }},
		{name: "account info", mutate: func(in *usecase.VerifyAccountInput) { in.AccountInfo = "" }},
		{name: "receiver email", mutate: func(in *usecase.VerifyAccountInput) { in.ReceiverEmail = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestVerificationService(t)
			input := newVerifyInput()
			tt.mutate(input)

			result, err := svc.VerifyAccount(context.Background(), input)

			assert.Nil(t, result)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingVerificationFields))
		})
	}
}

func TestAccountVerificationService_StoreFailure(t *testing.T) {
	svc, userRepo := createTestVerificationService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	userRepo.EXPECT().FindByEmail(ctx, senderEmail).Return(newStoredUser(senderEmail, senderAccount), nil)
	userRepo.EXPECT().FindByEmail(ctx, receiverEmail).Return(nil, dbErr)

	result, err := svc.VerifyAccount(ctx, newVerifyInput())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}
