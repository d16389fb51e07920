package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/pacer/internal/models"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "pacer-db-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func createDatabaseTestUser(t *testing.T, database *gorm.DB, subjectID string) models.User {
	t.Helper()

	subject := subjectID
	user := models.User{
		Username:     subject,
		SubjectID:    &subject,
		PasswordHash: "!test-sentinel",
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
