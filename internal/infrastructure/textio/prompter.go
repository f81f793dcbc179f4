package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
)

type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter asks for paths on out and reads one line per answer from in.
func NewLinePrompter(in io.Reader, out io.Writer) toyrsa.PathPrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

// PromptPath returns ok == false when the answer is blank or the input is exhausted.
func (p *linePrompter) PromptPath(label string) (string, bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read answer: %w", err)
	}

	path := strings.TrimSpace(line)
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}
