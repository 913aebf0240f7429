package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fittrack-dev/fittrack/db"
	"github.com/fittrack-dev/fittrack/internal/auth"
	"github.com/fittrack-dev/fittrack/internal/models"
	"github.com/fittrack-dev/fittrack/internal/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the
	// whole test.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, db.SeedExercises(gdb))

	return gdb
}

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func createTestUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()

	svc := services.NewAuthService(gdb, newTestTokens())
	email := username + "@example.com"
	user, _, err := svc.Register(context.Background(), username, email, "secret1")
	require.NoError(t, err)

	return user
}

func exerciseByName(t *testing.T, gdb *gorm.DB, name string) models.Exercise {
	t.Helper()

	var exercise models.Exercise
	require.NoError(t, gdb.Where("name = ?", name).First(&exercise).Error)

	return exercise
}
