package textio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"
)

const outputFileMode = 0600

type fileStore struct {
	logger logger.Logger
}

// NewFileStore creates a TextStore on the local file system
func NewFileStore(logger logger.Logger) toyrsa.TextStore {
	return &fileStore{logger: logger}
}

// LoadText reads the full raw contents of path
func (s *fileStore) LoadText(path string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s: %w", toyrsa.ErrFileNotFound, path, err)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %s: %w", toyrsa.ErrAccessDenied, path, err)
		default:
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	s.logger.Debug("Loaded ", len(content), " bytes from ", path)
	return content, nil
}

// SaveText creates or truncates path and writes content
func (s *fileStore) SaveText(path string, content []byte) error {
	if err := os.WriteFile(filepath.Clean(path), content, outputFileMode); err != nil {
		return fmt.Errorf("%w: %s: %w", toyrsa.ErrWriteError, path, err)
	}

	s.logger.Debug("Saved ", len(content), " bytes to ", path)
	return nil
}
