package models

import (
	"time"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
)

// ArtifactModel is the GORM database model for artifact history
type ArtifactModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	DateTimeCreated time.Time `gorm:"not null;index"`
	Operation       string    `gorm:"not null;index;type:varchar(16)"`
	Source          string    `gorm:"not null;type:varchar(255)"`
	Destination     string    `gorm:"type:varchar(255)"`
	Units           int       `gorm:"not null"`
	Modulus         uint64    `gorm:"not null"`
	PublicExponent  uint64    `gorm:"not null"`
	Strategy        string    `gorm:"not null;type:varchar(16)"`
}

// TableName specifies the table name for GORM
func (ArtifactModel) TableName() string {
	return "artifacts"
}

// ToDomain converts GORM model to domain entity
func (m *ArtifactModel) ToDomain() *artifacts.ArtifactMeta {
	return &artifacts.ArtifactMeta{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		Operation:       m.Operation,
		Source:          m.Source,
		Destination:     m.Destination,
		Units:           m.Units,
		Modulus:         m.Modulus,
		PublicExponent:  m.PublicExponent,
		Strategy:        m.Strategy,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ArtifactModel) FromDomain(a *artifacts.ArtifactMeta) {
	m.ID = a.ID
	m.DateTimeCreated = a.DateTimeCreated
	m.Operation = a.Operation
	m.Source = a.Source
	m.Destination = a.Destination
	m.Units = a.Units
	m.Modulus = a.Modulus
	m.PublicExponent = a.PublicExponent
	m.Strategy = a.Strategy
}
