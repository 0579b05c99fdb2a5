// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"payverify/internal/delivery/api/response"
	deliverycontext "payverify/internal/delivery/context"
	"payverify/internal/domain/entity"
	domainerrors "payverify/internal/domain/errors"
	"payverify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:     params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	IDNumber      string `json:"idNumber"`
	AccountNumber string `json:"accountNumber"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phoneNumber"`
	Country       string `json:"country"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

// RegisteredUser is the stored user returned after registration, without the password hash.
type RegisteredUser struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	IDNumber      string    `json:"idNumber"`
	AccountNumber string    `json:"accountNumber"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	Country       string    `json:"country"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	PostalCode    string    `json:"postalCode"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserProjection is the public view of a user returned by login and profile.
type UserProjection struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	AccountNumber string    `json:"accountNumber"`
	IDNumber      string    `json:"idNumber"`
	PhoneNumber   string    `json:"phoneNumber"`
}

type registerResponse struct {
	Message string          `json:"message"`
	User    *RegisteredUser `json:"user"`
}

type loginResponse struct {
	Message   string          `json:"message"`
	User      *UserProjection `json:"user"`
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expiresIn"`
}

type profileResponse struct {
	Message string          `json:"message"`
	User    *UserProjection `json:"user"`
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		IDNumber:      req.IDNumber,
		AccountNumber: req.AccountNumber,
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		PhoneNumber:   req.PhoneNumber,
		Country:       req.Country,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		User:    toRegisteredUser(output.User),
	})
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username:      req.Username,
		AccountNumber: req.AccountNumber,
		Password:      req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		Message:   "Login successful",
		User:      toUserProjection(output.User),
		Token:     output.AccessToken,
		ExpiresIn: int64(output.ExpiresIn.Seconds()),
	})
}

// GetProfile returns the authenticated user's projection.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profileResponse{
		Message: "Profile retrieved successfully",
		User:    toUserProjection(user),
	})
}

func toRegisteredUser(user *entity.User) *RegisteredUser {
	return &RegisteredUser{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		IDNumber:      user.IDNumber,
		AccountNumber: user.AccountNumber,
		Username:      user.Username,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		Country:       user.Country,
		Address:       user.Address,
		City:          user.City,
		PostalCode:    user.PostalCode,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func toUserProjection(user *entity.User) *UserProjection {
	return &UserProjection{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Username:      user.Username,
		AccountNumber: user.AccountNumber,
		IDNumber:      user.IDNumber,
		PhoneNumber:   user.PhoneNumber,
	}
}
