package impl

import (
	"context"
	"log/slog"

	deliverycontext "payverify/internal/delivery/context"
	"payverify/internal/domain/entity"
	domainerrors "payverify/internal/domain/errors"
	"payverify/internal/domain/repository"
	"payverify/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const verifiedMessage = "Both sender and receiver verified successfully."

type accountVerificationService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AccountVerificationServiceParams holds dependencies for the verification engine, injected by Fx.
type AccountVerificationServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAccountVerificationService is the constructor for the account verification engine.
func NewAccountVerificationService(params AccountVerificationServiceParams) usecase.AccountVerificationUsecase {
	return &accountVerificationService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *accountVerificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyAccount runs the checks in a fixed order and stops at the first failure:
// sender exists, sender account matches, receiver exists, receiver account matches.
// Only validation and store failures are returned as errors.
func (srv *accountVerificationService) VerifyAccount(ctx context.Context, input *usecase.VerifyAccountInput) (*usecase.VerificationResult, error) {
	if err := validateInput(input, domainerrors.ErrMissingVerificationFields); err != nil {
		return nil, err
	}

	sender, err := srv.lookup(ctx, input.SenderEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up sender")
	}
	if sender == nil {
		return srv.fail(ctx, usecase.OutcomeSenderNotFound, domainerrors.ErrSenderNotFound), nil
	}
	if !sender.HasAccount(input.AccountNumber) {
		return srv.fail(ctx, usecase.OutcomeSenderAccountMismatch, domainerrors.ErrSenderAccountMismatch), nil
	}

	receiver, err := srv.lookup(ctx, input.ReceiverEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up receiver")
	}
	if receiver == nil {
		return srv.fail(ctx, usecase.OutcomeReceiverNotFound, domainerrors.ErrReceiverNotFound), nil
	}
	if !receiver.HasAccount(input.AccountInfo) {
		return srv.fail(ctx, usecase.OutcomeReceiverAccountMismatch, domainerrors.ErrReceiverAccountMismatch), nil
	}

	srv.log(ctx).Debug("Payment parties verified")

	return &usecase.VerificationResult{
		Verified: true,
		Outcome:  usecase.OutcomeVerified,
		Message:  verifiedMessage,
	}, nil
}

// lookup returns nil without error when no user has the email.
func (srv *accountVerificationService) lookup(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}

	return user, err
}

func (srv *accountVerificationService) fail(ctx context.Context, outcome usecase.VerificationOutcome, reason *domainerrors.BaseError) *usecase.VerificationResult {
	srv.log(ctx).Info("Payment verification failed", slog.String("outcome", string(outcome)))

	return &usecase.VerificationResult{
		Verified: false,
		Outcome:  outcome,
		Message:  reason.Message(),
		Reason:   reason,
	}
}
