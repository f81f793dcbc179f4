//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name:     "in-memory sqlite",
			settings: &DatabaseSettings{Type: SqliteDbType},
		},
		{
			name:     "sqlite file",
			settings: &DatabaseSettings{Type: SqliteDbType, DSN: "history.db"},
		},
		{
			name: "postgres",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				Name: "toyrsa",
			},
		},
		{
			name:     "mysql",
			settings: &DatabaseSettings{Type: MysqlDbType, DSN: "root:root@tcp(localhost:3306)/toyrsa?parseTime=true"},
		},
		{
			name:          "missing type",
			settings:      &DatabaseSettings{DSN: "history.db"},
			expectedError: true,
		},
		{
			name:          "unknown type",
			settings:      &DatabaseSettings{Type: "oracle", DSN: "x"},
			expectedError: true,
		},
		{
			name:          "postgres without DSN",
			settings:      &DatabaseSettings{Type: PostgresDbType, Name: "toyrsa"},
			expectedError: true,
		},
		{
			name:          "postgres without name",
			settings:      &DatabaseSettings{Type: PostgresDbType, DSN: "host=localhost"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
