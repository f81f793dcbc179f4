//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"

	"github.com/stretchr/testify/mock"
)

// MockTextStore is a mock implementation of toyrsa.TextStore
type MockTextStore struct {
	mock.Mock
}

func (m *MockTextStore) LoadText(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockTextStore) SaveText(path string, content []byte) error {
	args := m.Called(path, content)
	return args.Error(0)
}

// MockArtifactRepository is a mock implementation of artifacts.ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) Create(ctx context.Context, artifact *artifacts.ArtifactMeta) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockArtifactRepository) List(ctx context.Context, query *artifacts.ArtifactQuery) ([]*artifacts.ArtifactMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*artifacts.ArtifactMeta), args.Error(1)
}

func (m *MockArtifactRepository) GetByID(ctx context.Context, artifactID string) (*artifacts.ArtifactMeta, error) {
	args := m.Called(ctx, artifactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artifacts.ArtifactMeta), args.Error(1)
}

func (m *MockArtifactRepository) DeleteByID(ctx context.Context, artifactID string) error {
	args := m.Called(ctx, artifactID)
	return args.Error(0)
}
