package impl

import (
	"io"
	"log/slog"

	"payverify/internal/domain/entity"
	"payverify/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegisterInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		IDNumber:      "8001015009087",
		AccountNumber: "1234567890",
		Username:      "ada",
		Email:         "ada@example.com",
		Password:      "Str0ngPassw0rd!",
		PhoneNumber:   "+27110000000",
		City:          "Cape Town",
	}
}

func newStoredUser(email, accountNumber string) *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		FirstName:     "Ada",
		LastName:      "Lovelace",
		IDNumber:      "8001015009087",
		AccountNumber: accountNumber,
		Username:      "ada",
		Email:         email,
		PasswordHash:  "$2a$10$storedhash",
		PhoneNumber:   "+27110000000",
	}
}
