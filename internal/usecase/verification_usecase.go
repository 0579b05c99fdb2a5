package usecase

import (
	"context"

	domainerrors "payverify/internal/domain/errors"
)

// VerifyAccountInput is a payment's sender and receiver details.
// AccountNumber belongs to the sender and AccountInfo to the receiver.
type VerifyAccountInput struct {
	AccountNumber string `validate:"required"`
	SenderEmail   string `validate:"required"`
	AccountInfo   string `validate:"required"`
	ReceiverEmail string `validate:"required"`
}

// VerificationOutcome is the machine-readable result of an account verification.
type VerificationOutcome string

const (
	OutcomeVerified                VerificationOutcome = "VERIFIED"
	OutcomeSenderNotFound          VerificationOutcome = "SENDER_NOT_FOUND"
	OutcomeSenderAccountMismatch   VerificationOutcome = "SENDER_ACCOUNT_MISMATCH"
	OutcomeReceiverNotFound        VerificationOutcome = "RECEIVER_NOT_FOUND"
	OutcomeReceiverAccountMismatch VerificationOutcome = "RECEIVER_ACCOUNT_MISMATCH"
)

// VerificationResult reports the first failed check, or success.
// Reason is nil when Verified is true.
type VerificationResult struct {
	Verified bool
	Outcome  VerificationOutcome
	Message  string
	Reason   domainerrors.AppError
}

// AccountVerificationUsecase checks a payment's parties against the credential store.
type AccountVerificationUsecase interface {
	VerifyAccount(ctx context.Context, input *VerifyAccountInput) (*VerificationResult, error)
}

// VerifySwiftInput carries the bank identifier code to check.
type VerifySwiftInput struct {
	SwiftCode string `validate:"required"`
}

// BankCodeCheckResult reports whether a code is in the reference set.
// Code is the normalized form that was looked up.
type BankCodeCheckResult struct {
	Valid   bool
	Code    string
	Message string
}

// BankCodeUsecase validates bank identifier codes.
type BankCodeUsecase interface {
	VerifySwiftCode(ctx context.Context, input *VerifySwiftInput) (*BankCodeCheckResult, error)
}
