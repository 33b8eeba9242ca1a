package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/willowworks/batrack/internal/db"
	"github.com/willowworks/batrack/internal/model"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_time_format=sqlite"
	conn, err := sqlx.Connect("sqlite", dsn)
	require.NoError(t, err)
	// Single connection avoids SQLITE_BUSY under parallel statements
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	return conn
}

func testUser(email, nationalID string) *model.User {
	return &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealha",
		Name:         "Test User",
		Gender:       "female",
		NationalID:   nationalID,
		Age:          27,
		Location:     "Leeds",
		CreatedAt:    time.Now(),
	}
}

func testBat(userID, brand string, createdAt time.Time) *model.Bat {
	return &model.Bat{
		ID:              uuid.New().String(),
		UserID:          userID,
		BrandName:       brand,
		Price:           199.99,
		Description:     "English willow, full profile",
		BrandAmbassador: "Joe Root",
		ImagePath:       "image-1700000000000000000.png",
		CreatedAt:       createdAt,
	}
}
