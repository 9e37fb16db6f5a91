// Package databasetest opens throwaway SQLite databases for tests.
package databasetest

import (
	"path/filepath"
	"testing"

	"github.com/Youssef-M-Salama/E-Commerce-Website/config"
	"github.com/Youssef-M-Salama/E-Commerce-Website/database"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New returns a migrated database backed by a file in t.TempDir().
func New(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "storefront.db")
	db, err := database.Open(config.DatabaseConfig{URL: "sqlite://" + path}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { database.Close(db) })
	return db
}
