// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder known to the system.
// Email is globally unique and (Username, AccountNumber) is unique; AccountNumber
// is the identifier that payment verification compares against.
type User struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	IDNumber      string // National identity number supplied at registration.
	AccountNumber string
	Username      string
	Email         string
	PasswordHash  string // bcrypt hash; never leaves the service.
	PhoneNumber   string
	Country       string
	Address       string
	City          string
	PostalCode    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasAccount reports whether accountNumber is the account on file for this user.
func (u *User) HasAccount(accountNumber string) bool {
	return u.AccountNumber == accountNumber
}
