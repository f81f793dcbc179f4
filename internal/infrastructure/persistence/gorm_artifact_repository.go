package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormArtifactRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormArtifactRepository creates a new GORM-based ArtifactRepository implementation
func NewGormArtifactRepository(db *gorm.DB, logger logger.Logger) (artifacts.ArtifactRepository, error) {
	if db == nil {
		return nil, errors.New("database connection is required")
	}
	return &gormArtifactRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Migrate creates or updates the artifact history schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ArtifactModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (r *gormArtifactRepository) Create(ctx context.Context, artifact *artifacts.ArtifactMeta) error {
	if err := artifact.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ArtifactModel{}
	model.FromDomain(artifact)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}

	r.logger.Info("Created artifact metadata with id ", artifact.ID)
	return nil
}

func (r *gormArtifactRepository) List(ctx context.Context, query *artifacts.ArtifactQuery) ([]*artifacts.ArtifactMeta, error) {
	if query == nil {
		query = artifacts.NewArtifactQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ArtifactModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ArtifactModel{})

	if query.Operation != "" {
		dbQuery = dbQuery.Where("operation = ?", query.Operation)
	}
	if query.Strategy != "" {
		dbQuery = dbQuery.Where("strategy = ?", query.Strategy)
	}
	if query.Source != "" {
		dbQuery = dbQuery.Where("source LIKE ?", "%"+query.Source+"%")
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	// SortBy and SortOrder are restricted to known columns by Validate
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	} else {
		dbQuery = dbQuery.Order("date_time_created asc")
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch artifacts: %w", err)
	}

	domainList := make([]*artifacts.ArtifactMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormArtifactRepository) GetByID(ctx context.Context, artifactID string) (*artifacts.ArtifactMeta, error) {
	var model models.ArtifactModel
	if err := r.db.WithContext(ctx).Where("id = ?", artifactID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", artifacts.ErrArtifactNotFound, artifactID)
		}
		return nil, fmt.Errorf("failed to fetch artifact: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormArtifactRepository) DeleteByID(ctx context.Context, artifactID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", artifactID).Delete(&models.ArtifactModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete artifact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", artifacts.ErrArtifactNotFound, artifactID)
	}

	r.logger.Info("Deleted artifact metadata with id ", artifactID)
	return nil
}
