package handler

import (
	"log/slog"
	"net/http"

	"payverify/internal/delivery/api/response"
	deliverycontext "payverify/internal/delivery/context"
	domainerrors "payverify/internal/domain/errors"
	"payverify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerificationHandlerParams holds dependencies for VerificationHandler, injected by Fx.
type VerificationHandlerParams struct {
	fx.In

	AccountUC  usecase.AccountVerificationUsecase
	BankCodeUC usecase.BankCodeUsecase
	Logger     *slog.Logger
}

// VerificationHandler serves the employee payment checks.
type VerificationHandler struct {
	accountUC  usecase.AccountVerificationUsecase
	bankCodeUC usecase.BankCodeUsecase
	logger     *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler.
func NewVerificationHandler(params VerificationHandlerParams) *VerificationHandler {
	return &VerificationHandler{
		accountUC:  params.AccountUC,
		bankCodeUC: params.BankCodeUC,
		logger:     params.Logger,
	}
}

// VerifyAccountRequest is the body of POST /api/employeepayments/verify-account.
type VerifyAccountRequest struct {
	AccountNumber string `json:"accountNumber"`
	SenderEmail   string `json:"senderEmail"`
	AccountInfo   string `json:"accountInfo"`
	ReceiverEmail string `json:"receiverEmail"`
}

// VerifySwiftRequest is the body of POST /api/employeepayments/verify-swift.
type VerifySwiftRequest struct {
	SwiftCode string `json:"swiftCode"`
}

// VerifyAccountResponse is returned for both outcomes of an account verification.
type VerifyAccountResponse struct {
	Verified  bool   `json:"verified"`
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// VerifySwiftResponse is returned for both outcomes of a SWIFT code check.
type VerifySwiftResponse struct {
	Valid     bool   `json:"valid"`
	Message   string `json:"message"`
	SwiftCode string `json:"swiftCode,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// VerifyAccount checks the payment's sender and receiver against stored users.
func (h *VerificationHandler) VerifyAccount(c echo.Context) error {
	var req VerifyAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid verification input")
	}

	result, err := h.accountUC.VerifyAccount(c.Request().Context(), &usecase.VerifyAccountInput{
		AccountNumber: req.AccountNumber,
		SenderEmail:   req.SenderEmail,
		AccountInfo:   req.AccountInfo,
		ReceiverEmail: req.ReceiverEmail,
	})
	if err != nil {
		appErr, ok := clientError(err)
		if !ok {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, appErr.HTTPCode(), VerifyAccountResponse{
			Verified:  false,
			Message:   appErr.Message(),
			Code:      appErr.ErrorCode(),
			RequestID: deliverycontext.GetRequestID(c),
		})
	}

	if result.Verified {
		return response.Success(c, http.StatusOK, VerifyAccountResponse{
			Verified: true,
			Message:  result.Message,
		})
	}

	status := http.StatusBadRequest
	if result.Reason != nil {
		status = result.Reason.HTTPCode()
	}

	return response.Success(c, status, VerifyAccountResponse{
		Verified:  false,
		Message:   result.Message,
		Code:      string(result.Outcome),
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// VerifySwift checks a SWIFT/BIC code against the reference set.
func (h *VerificationHandler) VerifySwift(c echo.Context) error {
	var req VerifySwiftRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid SWIFT code input")
	}

	result, err := h.bankCodeUC.VerifySwiftCode(c.Request().Context(), &usecase.VerifySwiftInput{
		SwiftCode: req.SwiftCode,
	})
	if err != nil {
		appErr, ok := clientError(err)
		if !ok {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, appErr.HTTPCode(), VerifySwiftResponse{
			Valid:     false,
			Message:   appErr.Message(),
			Code:      appErr.ErrorCode(),
			RequestID: deliverycontext.GetRequestID(c),
		})
	}

	if result.Valid {
		return response.Success(c, http.StatusOK, VerifySwiftResponse{
			Valid:     true,
			Message:   result.Message,
			SwiftCode: result.Code,
		})
	}

	return response.Success(c, domainerrors.ErrSwiftCodeNotFound.HTTPCode(), VerifySwiftResponse{
		Valid:     false,
		Message:   result.Message,
		SwiftCode: result.Code,
		Code:      domainerrors.ErrSwiftCodeNotFound.ErrorCode(),
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// clientError returns err as an AppError when it is caused by the request.
func clientError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
		return nil, false
	}

	return appErr, true
}
