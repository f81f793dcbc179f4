//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	artifact := CreateTestArtifact(t, "input.txt")

	require.NoError(t, ctx.ArtifactRepo.Create(context.Background(), artifact))

	var created models.ArtifactModel
	require.NoError(t, ctx.DB.First(&created, "id = ?", artifact.ID).Error)
	assert.Equal(t, artifact.Source, created.Source)
	assert.Equal(t, uint64(3233), created.Modulus)
}

func TestArtifactSqliteRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.ArtifactRepo.Create(context.Background(), &artifacts.ArtifactMeta{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestArtifactSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	artifact := CreateTestArtifact(t, "input.txt")
	require.NoError(t, ctx.ArtifactRepo.Create(context.Background(), artifact))

	fetched, err := ctx.ArtifactRepo.GetByID(context.Background(), artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, artifact.ID, fetched.ID)
	assert.Equal(t, artifact.Units, fetched.Units)
	assert.Equal(t, artifact.Strategy, fetched.Strategy)
}

func TestArtifactSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.ArtifactRepo.GetByID(context.Background(), "non-existent-id")
	assert.True(t, errors.Is(err, artifacts.ErrArtifactNotFound))
}

func TestArtifactSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	first := CreateTestArtifact(t, "notes.txt")
	first.DateTimeCreated = time.Now().UTC().Add(-time.Hour)
	second := CreateTestArtifact(t, "letter.txt")
	second.Operation = artifacts.OperationDecryption
	second.Strategy = "coprime"
	second.PublicExponent = 7
	require.NoError(t, ctx.ArtifactRepo.Create(bg, first))
	require.NoError(t, ctx.ArtifactRepo.Create(bg, second))

	t.Run("All", func(t *testing.T) {
		list, err := ctx.ArtifactRepo.List(bg, nil)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
	})

	t.Run("ByOperation", func(t *testing.T) {
		list, err := ctx.ArtifactRepo.List(bg, &artifacts.ArtifactQuery{Operation: artifacts.OperationDecryption})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, second.ID, list[0].ID)
	})

	t.Run("BySourceSubstring", func(t *testing.T) {
		list, err := ctx.ArtifactRepo.List(bg, &artifacts.ArtifactQuery{Source: "notes"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID, list[0].ID)
	})

	t.Run("SortedAndPaged", func(t *testing.T) {
		list, err := ctx.ArtifactRepo.List(bg, &artifacts.ArtifactQuery{SortBy: "date_time_created", SortOrder: "desc", Limit: 1})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, second.ID, list[0].ID)
	})

	t.Run("InvalidQuery", func(t *testing.T) {
		_, err := ctx.ArtifactRepo.List(bg, &artifacts.ArtifactQuery{SortBy: "id"})
		assert.Error(t, err)
	})
}

func TestArtifactSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()
	artifact := CreateTestArtifact(t, "input.txt")
	require.NoError(t, ctx.ArtifactRepo.Create(bg, artifact))

	require.NoError(t, ctx.ArtifactRepo.DeleteByID(bg, artifact.ID))

	_, err := ctx.ArtifactRepo.GetByID(bg, artifact.ID)
	assert.True(t, errors.Is(err, artifacts.ErrArtifactNotFound))

	err = ctx.ArtifactRepo.DeleteByID(bg, artifact.ID)
	assert.True(t, errors.Is(err, artifacts.ErrArtifactNotFound))
}
