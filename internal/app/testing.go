//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/cache"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/textio"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyService        toyrsa.KeyService
	EncryptionService toyrsa.EncryptionService
	DecryptionService toyrsa.DecryptionService
	ArtifactService   artifacts.ArtifactService

	KeyCache  *cache.KeyCache
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services on the given database
// with the reference engine settings (p=61, q=53, e=17).
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	settings := config.DefaultEngineSettings()

	var engines []toyrsa.Engine
	for _, strategy := range []toyrsa.ExponentStrategy{toyrsa.StrategyFixed, toyrsa.StrategySmallestCoprime} {
		opts, err := cryptography.EngineOptionsFromSettings(settings)
		require.NoError(t, err)
		opts.Strategy = strategy

		engine, err := cryptography.NewToyRSAEngine(opts, logger)
		require.NoError(t, err, "Failed to create toy RSA engine")
		engines = append(engines, engine)
	}

	keyCache := cache.NewKeyCacheFromSettings(config.DefaultRestConfig().KeyCache)
	keyService, err := NewKeyService(engines, settings, keyCache, nil, logger)
	require.NoError(t, err, "Failed to create KeyService")

	codec := cryptography.NewTextCodec()
	store := textio.NewFileStore(logger)

	encryptionService, err := NewEncryptionService(keyService, codec, store, dbContext.ArtifactRepo, nil, logger)
	require.NoError(t, err, "Failed to create EncryptionService")

	decryptionService, err := NewDecryptionService(keyService, codec, store, dbContext.ArtifactRepo, nil, logger)
	require.NoError(t, err, "Failed to create DecryptionService")

	artifactService, err := NewArtifactService(dbContext.ArtifactRepo, logger)
	require.NoError(t, err, "Failed to create ArtifactService")

	return &TestServices{
		KeyService:        keyService,
		EncryptionService: encryptionService,
		DecryptionService: decryptionService,
		ArtifactService:   artifactService,
		KeyCache:          keyCache,
		DBContext:         dbContext,
	}
}
