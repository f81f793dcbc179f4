package testutil

import (
	"testing"

	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a console logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := config.DefaultLoggerSettings()
	require.NoError(t, logger.InitLogger(&settings))

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
