package impl

import (
	"context"
	"log/slog"

	deliverycontext "payverify/internal/delivery/context"
	"payverify/internal/domain/entity"
	domainerrors "payverify/internal/domain/errors"
	"payverify/internal/usecase"

	"go.uber.org/fx"
)

const validSwiftMessage = "SWIFT code is valid."

type bankCodeService struct {
	codes  *entity.BankCodeSet
	logger *slog.Logger
}

// BankCodeServiceParams holds dependencies for the bank code validator, injected by Fx.
type BankCodeServiceParams struct {
	fx.In

	Codes  *entity.BankCodeSet
	Logger *slog.Logger
}

// NewBankCodeService is the constructor for the bank code validator.
func NewBankCodeService(params BankCodeServiceParams) usecase.BankCodeUsecase {
	codes := params.Codes
	if codes == nil {
		codes = entity.EmptyBankCodeSet()
	}

	return &bankCodeService{
		codes:  codes,
		logger: params.Logger,
	}
}

// VerifySwiftCode normalizes the code and tests it against the reference set.
// An unknown code is a negative result, not an error.
func (srv *bankCodeService) VerifySwiftCode(ctx context.Context, input *usecase.VerifySwiftInput) (*usecase.BankCodeCheckResult, error) {
	if err := validateInput(input, domainerrors.ErrMissingSwiftCode); err != nil {
		return nil, err
	}

	code := entity.NormalizeBankCode(input.SwiftCode)
	if code == "" || !srv.codes.Contains(code) {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Unknown SWIFT code", slog.String("code", code))

		return &usecase.BankCodeCheckResult{
			Valid:   false,
			Code:    code,
			Message: domainerrors.ErrSwiftCodeNotFound.Message(),
		}, nil
	}

	return &usecase.BankCodeCheckResult{
		Valid:   true,
		Code:    code,
		Message: validSwiftMessage,
	}, nil
}
