package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"
)

// artifactService implements the artifacts.ArtifactService interface
type artifactService struct {
	artifactRepo artifacts.ArtifactRepository
	logger       logger.Logger
}

// NewArtifactService creates a new artifactService instance
func NewArtifactService(artifactRepo artifacts.ArtifactRepository, logger logger.Logger) (artifacts.ArtifactService, error) {
	if artifactRepo == nil {
		return nil, fmt.Errorf("artifact repository is required")
	}
	return &artifactService{
		artifactRepo: artifactRepo,
		logger:       logger,
	}, nil
}

// List retrieves artifact metadata matching query
func (s *artifactService) List(ctx context.Context, query *artifacts.ArtifactQuery) ([]*artifacts.ArtifactMeta, error) {
	list, err := s.artifactRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return list, nil
}

// GetByID retrieves one artifact
func (s *artifactService) GetByID(ctx context.Context, artifactID string) (*artifacts.ArtifactMeta, error) {
	return s.artifactRepo.GetByID(ctx, artifactID)
}

// DeleteByID removes one artifact from the history
func (s *artifactService) DeleteByID(ctx context.Context, artifactID string) error {
	if err := s.artifactRepo.DeleteByID(ctx, artifactID); err != nil {
		return err
	}
	s.logger.Info("Deleted artifact ", artifactID)
	return nil
}
