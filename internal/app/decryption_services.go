package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/metrics"

	"github.com/google/uuid"
)

// decryptionService implements the toyrsa.DecryptionService interface
type decryptionService struct {
	keyService   toyrsa.KeyService
	codec        toyrsa.TextCodec
	store        toyrsa.TextStore
	artifactRepo artifacts.ArtifactRepository
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewDecryptionService creates a new decryptionService instance
func NewDecryptionService(
	keyService toyrsa.KeyService,
	codec toyrsa.TextCodec,
	store toyrsa.TextStore,
	artifactRepo artifacts.ArtifactRepository,
	m *metrics.Metrics,
	logger logger.Logger,
) (toyrsa.DecryptionService, error) {
	return &decryptionService{
		keyService:   keyService,
		codec:        codec,
		store:        store,
		artifactRepo: artifactRepo,
		metrics:      m,
		logger:       logger,
	}, nil
}

// DecryptFile decrypts the artifact at inputPath
func (s *decryptionService) DecryptFile(ctx context.Context, req *toyrsa.KeyRequest, inputPath, outputPath string) (*toyrsa.DecryptionResult, error) {
	content, err := s.store.LoadText(inputPath)
	if err != nil {
		return nil, err
	}

	result, err := s.decrypt(ctx, req, string(content))
	if err != nil {
		return nil, err
	}

	if outputPath != "" {
		if err := s.store.SaveText(outputPath, result.Plaintext); err != nil {
			return nil, err
		}
		s.logger.Info("Decrypted data path ", outputPath)
	}

	result.ArtifactID, err = s.record(ctx, result, inputPath, outputPath)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DecryptText decrypts ciphertext held in memory
func (s *decryptionService) DecryptText(ctx context.Context, req *toyrsa.KeyRequest, ciphertext string) (*toyrsa.DecryptionResult, error) {
	result, err := s.decrypt(ctx, req, ciphertext)
	if err != nil {
		return nil, err
	}

	result.ArtifactID, err = s.record(ctx, result, SourceInline, "")
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *decryptionService) decrypt(ctx context.Context, req *toyrsa.KeyRequest, ciphertext string) (*toyrsa.DecryptionResult, error) {
	if strings.TrimSpace(ciphertext) == "" {
		return nil, toyrsa.ErrEmptyInput
	}

	session, err := s.keyService.Session(ctx, req)
	if err != nil {
		return nil, err
	}
	state := session.State()
	if !state.HasPrivateKey() {
		s.logger.Warn("No private exponent for n=", state.N, " e=", state.E, ", decrypted text is meaningless")
	}

	plaintext, err := s.codec.Decode(ciphertext, contextCipher{UnitCipher: session, ctx: ctx})
	if err != nil {
		return nil, err
	}
	s.metrics.AddUnits(artifacts.OperationDecryption, len(plaintext))

	return &toyrsa.DecryptionResult{
		Plaintext: plaintext,
		Keys:      state,
		Strategy:  session.Strategy(),
		Units:     len(plaintext),
	}, nil
}

func (s *decryptionService) record(ctx context.Context, result *toyrsa.DecryptionResult, source, destination string) (string, error) {
	if s.artifactRepo == nil {
		return "", nil
	}

	meta := &artifacts.ArtifactMeta{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		Operation:       artifacts.OperationDecryption,
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

// contextCipher stops a decode between units once ctx is done
type contextCipher struct {
	toyrsa.UnitCipher
	ctx context.Context
}

func (c contextCipher) Decrypt(unit uint64) (uint64, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.UnitCipher.Decrypt(unit)
}
