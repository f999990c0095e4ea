// Package testing provides test utilities and database setup for exercising
// repositories and business flows against a real SQL engine
package testing

import (
	"context"
	"fmt"

	"github.com/amirphl/copydesk/models"
	"github.com/amirphl/copydesk/utils"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB represents an isolated in-memory test database
type TestDB struct {
	DB   *gorm.DB
	Name string
}

// SetupTestDB opens a fresh in-memory SQLite database with a unique name and
// migrates every model into it
func SetupTestDB() (*TestDB, error) {
	name := uuid.NewString()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open test database %s: %w", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// One connection keeps the shared in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Campaign{},
		&models.AdCopy{},
		&models.PerformanceRecord{},
	); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate test database %s: %w", name, err)
	}

	return &TestDB{DB: db, Name: name}, nil
}

// TeardownTestDB closes the connection, which drops the in-memory database
func (tdb *TestDB) TeardownTestDB() error {
	if tdb.DB == nil {
		return nil
	}
	sqlDB, err := tdb.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ClearAllTables removes all data from tables while preserving structure
func (tdb *TestDB) ClearAllTables() error {
	// Children first
	tables := []string{
		models.PerformanceRecord{}.TableName(),
		models.AdCopy{}.TableName(),
		models.Campaign{}.TableName(),
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	return nil
}

// TestWithDB sets up a test database, runs the test function, and cleans up
func TestWithDB(testFunc func(*TestDB) error) error {
	testDB, err := SetupTestDB()
	if err != nil {
		return fmt.Errorf("failed to setup test database: %w", err)
	}
	defer func() { _ = testDB.TeardownTestDB() }()

	return testFunc(testDB)
}

// CreateTestContext returns a context carrying userID as the authenticated
// caller. An empty userID yields an anonymous context.
func CreateTestContext(userID string) context.Context {
	ctx := context.Background()
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, utils.UserIDKey, userID)
}
