//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"

	"github.com/stretchr/testify/mock"
)

// MockKeyService is a mock implementation of toyrsa.KeyService
type MockKeyService struct {
	mock.Mock
}

func (m *MockKeyService) Derive(ctx context.Context, req *toyrsa.KeyRequest) (*toyrsa.KeyState, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toyrsa.KeyState), args.Error(1)
}

func (m *MockKeyService) Session(ctx context.Context, req *toyrsa.KeyRequest) (*toyrsa.KeySession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toyrsa.KeySession), args.Error(1)
}

// MockEncryptionService is a mock implementation of toyrsa.EncryptionService
type MockEncryptionService struct {
	mock.Mock
}

func (m *MockEncryptionService) EncryptFile(ctx context.Context, req *toyrsa.KeyRequest, inputPath, outputPath string) (*toyrsa.EncryptionResult, error) {
	args := m.Called(ctx, req, inputPath, outputPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toyrsa.EncryptionResult), args.Error(1)
}

func (m *MockEncryptionService) EncryptText(ctx context.Context, req *toyrsa.KeyRequest, plaintext []byte) (*toyrsa.EncryptionResult, error) {
	args := m.Called(ctx, req, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toyrsa.EncryptionResult), args.Error(1)
}

// MockDecryptionService is a mock implementation of toyrsa.DecryptionService
type MockDecryptionService struct {
	mock.Mock
}

func (m *MockDecryptionService) DecryptFile(ctx context.Context, req *toyrsa.KeyRequest, inputPath, outputPath string) (*toyrsa.DecryptionResult, error) {
	args := m.Called(ctx, req, inputPath, outputPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toyrsa.DecryptionResult), args.Error(1)
}

func (m *MockDecryptionService) DecryptText(ctx context.Context, req *toyrsa.KeyRequest, ciphertext string) (*toyrsa.DecryptionResult, error) {
	args := m.Called(ctx, req, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toyrsa.DecryptionResult), args.Error(1)
}

// MockArtifactService is a mock implementation of artifacts.ArtifactService
type MockArtifactService struct {
	mock.Mock
}

func (m *MockArtifactService) List(ctx context.Context, query *artifacts.ArtifactQuery) ([]*artifacts.ArtifactMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*artifacts.ArtifactMeta), args.Error(1)
}

func (m *MockArtifactService) GetByID(ctx context.Context, artifactID string) (*artifacts.ArtifactMeta, error) {
	args := m.Called(ctx, artifactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artifacts.ArtifactMeta), args.Error(1)
}

func (m *MockArtifactService) DeleteByID(ctx context.Context, artifactID string) error {
	args := m.Called(ctx, artifactID)
	return args.Error(0)
}
