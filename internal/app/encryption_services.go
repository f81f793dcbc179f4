package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/metrics"

	"github.com/google/uuid"
)

// SourceInline is recorded as the artifact source of in-memory requests
const SourceInline = "inline"

// encryptionService implements the toyrsa.EncryptionService interface
type encryptionService struct {
	keyService   toyrsa.KeyService
	codec        toyrsa.TextCodec
	store        toyrsa.TextStore
	artifactRepo artifacts.ArtifactRepository
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewEncryptionService creates a new encryptionService instance. store is only
// needed by EncryptFile and artifactRepo may be nil to skip history.
func NewEncryptionService(
	keyService toyrsa.KeyService,
	codec toyrsa.TextCodec,
	store toyrsa.TextStore,
	artifactRepo artifacts.ArtifactRepository,
	m *metrics.Metrics,
	logger logger.Logger,
) (toyrsa.EncryptionService, error) {
	return &encryptionService{
		keyService:   keyService,
		codec:        codec,
		store:        store,
		artifactRepo: artifactRepo,
		metrics:      m,
		logger:       logger,
	}, nil
}

// EncryptFile encrypts the whole file at inputPath and saves the annotated artifact
func (s *encryptionService) EncryptFile(ctx context.Context, req *toyrsa.KeyRequest, inputPath, outputPath string) (*toyrsa.EncryptionResult, error) {
	plaintext, err := s.store.LoadText(inputPath)
	if err != nil {
		return nil, err
	}

	result, err := s.encrypt(ctx, req, plaintext)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveText(outputPath, []byte(result.Artifact)); err != nil {
		return nil, err
	}
	s.logger.Info("Encrypted data path ", outputPath)

	result.ArtifactID, err = s.record(ctx, result, inputPath, outputPath)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EncryptText encrypts plaintext held in memory
func (s *encryptionService) EncryptText(ctx context.Context, req *toyrsa.KeyRequest, plaintext []byte) (*toyrsa.EncryptionResult, error) {
	result, err := s.encrypt(ctx, req, plaintext)
	if err != nil {
		return nil, err
	}

	result.ArtifactID, err = s.record(ctx, result, SourceInline, "")
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *encryptionService) encrypt(ctx context.Context, req *toyrsa.KeyRequest, plaintext []byte) (*toyrsa.EncryptionResult, error) {
	if len(plaintext) == 0 {
		return nil, toyrsa.ErrEmptyInput
	}

	session, err := s.keyService.Session(ctx, req)
	if err != nil {
		return nil, err
	}
	state := session.State()

	ciphertext := s.codec.Encode(plaintext, session)
	s.metrics.AddUnits(artifacts.OperationEncryption, len(plaintext))

	return &toyrsa.EncryptionResult{
		Ciphertext: ciphertext,
		Artifact:   s.codec.Annotate(ciphertext, state),
		Keys:       state,
		Strategy:   session.Strategy(),
		Units:      len(plaintext),
	}, nil
}

func (s *encryptionService) record(ctx context.Context, result *toyrsa.EncryptionResult, source, destination string) (string, error) {
	if s.artifactRepo == nil {
		return "", nil
	}

	meta := &artifacts.ArtifactMeta{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		Operation:       artifacts.OperationEncryption,
		Source:          source,
		Destination:     destination,
		Units:           result.Units,
		Modulus:         result.Keys.N,
		PublicExponent:  result.Keys.E,
		Strategy:        result.Strategy.String(),
	}
	if err := s.artifactRepo.Create(ctx, meta); err != nil {
		return "", fmt.Errorf("failed to record artifact: %w", err)
	}
	return meta.ID, nil
}
