package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types for the artifact history
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
	MysqlDbType    = "mysql"
)

// DatabaseSettings describes where artifact history is stored.
// An empty sqlite DSN means an in-memory database.
type DatabaseSettings struct {
	Type string `yaml:"type" validate:"required,oneof=sqlite postgres mysql"`
	DSN  string `yaml:"dsn" validate:"required_unless=Type sqlite"`
	Name string `yaml:"name" validate:"required_if=Type postgres"`
}

// DefaultDatabaseSettings returns an in-memory sqlite database.
func DefaultDatabaseSettings() DatabaseSettings {
	return DatabaseSettings{Type: SqliteDbType}
}

// Validate checks the database settings
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
