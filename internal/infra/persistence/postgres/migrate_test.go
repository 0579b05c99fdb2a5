package postgres

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"testing"

	"payverify/internal/infra/persistence/migrations"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	content, err := fs.ReadFile(migrations.FS, "00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(content), "UNIQUE (email)")
	assert.Contains(t, string(content), "UNIQUE (username, account_number)")
}

func TestRunMigrations(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(_ context.Context, db *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		assert.Same(t, sqlDB, db)
		gotDir = dir

		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), sqlDB, slog.Default()))
	assert.Equal(t, ".", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("relation already exists")
	}

	err = RunMigrations(context.Background(), sqlDB, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply migrations")
}
