package artifacts

import (
	"context"
	"errors"
)

// ErrArtifactNotFound is returned when no artifact has the requested ID.
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactService defines methods for reading and pruning the artifact history.
type ArtifactService interface {
	// List retrieves artifact metadata considering a query filter when set.
	List(ctx context.Context, query *ArtifactQuery) ([]*ArtifactMeta, error)

	// GetByID retrieves the artifact metadata by ID.
	GetByID(ctx context.Context, artifactID string) (*ArtifactMeta, error)

	// DeleteByID deletes the artifact metadata by ID.
	DeleteByID(ctx context.Context, artifactID string) error
}

// ArtifactRepository defines the interface for ArtifactMeta persistence
type ArtifactRepository interface {
	// Create adds a new ArtifactMeta to the database
	Create(ctx context.Context, artifact *ArtifactMeta) error
	// List lists ArtifactMeta in the database with optional filter
	List(ctx context.Context, query *ArtifactQuery) ([]*ArtifactMeta, error)
	// GetByID retrieves an ArtifactMeta from the database by ID
	GetByID(ctx context.Context, artifactID string) (*ArtifactMeta, error)
	// DeleteByID deletes an ArtifactMeta in the database by ID
	DeleteByID(ctx context.Context, artifactID string) error
}
