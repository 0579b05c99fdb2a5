// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"payverify/internal/domain/entity"
	domainerrors "payverify/internal/domain/errors"
	"payverify/internal/domain/repository"
	"payverify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by id", "id = ?", id)
}

// FindByEmail retrieves a single user by exact email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by email", "email = ?", email)
}

// FindByUsernameAndAccount retrieves the user whose username and account number both match.
func (repo *userRepository) FindByUsernameAndAccount(ctx context.Context, username, accountNumber string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by username and account number",
		"username = ? AND account_number = ?", username, accountNumber)
}

func (repo *userRepository) findOne(ctx context.Context, errMsg string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, errMsg)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new user. The id is generated by PostgreSQL and copied back onto the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		IDNumber:      m.IDNumber,
		AccountNumber: m.AccountNumber,
		Username:      m.Username,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		PhoneNumber:   m.PhoneNumber,
		Country:       m.Country,
		Address:       m.Address,
		City:          m.City,
		PostalCode:    m.PostalCode,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	if u == nil {
		return nil
	}

	return &model.UserModel{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		IDNumber:      u.IDNumber,
		AccountNumber: u.AccountNumber,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		PhoneNumber:   u.PhoneNumber,
		Country:       u.Country,
		Address:       u.Address,
		City:          u.City,
		PostalCode:    u.PostalCode,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
