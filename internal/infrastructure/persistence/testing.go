//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	ArtifactRepo artifacts.ArtifactRepository
}

// SetupTestDB initializes a migrated test database that is closed on test cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName, logger)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	artifactRepo, err := NewGormArtifactRepository(db, logger)
	require.NoError(t, err, "Failed to create artifact repository")

	return &TestContext{
		DB:           db,
		ArtifactRepo: artifactRepo,
	}
}

// CreateTestArtifact creates an encryption artifact with default values
func CreateTestArtifact(t *testing.T, source string) *artifacts.ArtifactMeta {
	t.Helper()

	return &artifacts.ArtifactMeta{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		Operation:       artifacts.OperationEncryption,
		Source:          source,
		Destination:     "encrypted.txt",
		Units:           len(source),
		Modulus:         3233,
		PublicExponent:  17,
		Strategy:        "fixed",
	}
}
