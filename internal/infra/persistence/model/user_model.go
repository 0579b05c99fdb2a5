package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// Unique constraints: email, and (username, account_number).
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100);not null"`
	IDNumber      string    `gorm:"column:id_number;type:varchar(64);not null"`
	AccountNumber string    `gorm:"type:varchar(64);not null;uniqueIndex:users_username_account_number_key,priority:2"`
	Username      string    `gorm:"type:varchar(100);not null;uniqueIndex:users_username_account_number_key,priority:1"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:users_email_key"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	PhoneNumber   string    `gorm:"type:varchar(32)"`
	Country       string    `gorm:"type:varchar(100)"`
	Address       string    `gorm:"type:varchar(255)"`
	City          string    `gorm:"type:varchar(100)"`
	PostalCode    string    `gorm:"type:varchar(20)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
