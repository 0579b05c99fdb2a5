package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantUnique bool
		wantNull   bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, wantUnique: true},
		{name: "wrapped pg unique", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), wantUnique: true},
		{name: "pg not null", err: &pgconn.PgError{Code: "23502"}, wantNull: true},
		{name: "other pg error", err: &pgconn.PgError{Code: "40001"}},
		{name: "plain error", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUnique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.wantNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
