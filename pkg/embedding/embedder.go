// Package embedding provides the text→vector boundary of the core: an
// Embedder contract, a process-wide compute-once cache, a gRPC client for
// an external embedding service, and a deterministic local embedder for
// offline mode and tests.
package embedding

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors for embedding operations.
var (
	// ErrEmptyText rejects empty or whitespace-only input.
	ErrEmptyText = errors.New("cannot embed empty text")

	// ErrUnavailable marks a transient embedder failure. Callers skip
	// trajectory work for the cycle and continue.
	ErrUnavailable = errors.New("embedding service unavailable")
)

// Embedder turns text into a fixed-dimension vector. Implementations must
// be deterministic: the same text yields the same vector within a process.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// validateText enforces the shared non-empty input rule.
func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}
