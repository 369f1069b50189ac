package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// LocalEmbedder is a deterministic feature-hashing embedder. Tokens are
// hashed into dimension buckets with an alternating sign and the result is
// L2-normalized, so distances behave sensibly even without a model. Used
// in offline mode and throughout the test suite; production deployments
// point at a real embedding service via GRPCClient.
type LocalEmbedder struct {
	dimension int
}

// DefaultDimension is the local embedder's vector size when none is
// configured.
const DefaultDimension = 256

// NewLocalEmbedder creates a local embedder with the given dimension
// (DefaultDimension if dim <= 0).
func NewLocalEmbedder(dim int) *LocalEmbedder {
	if dim <= 0 {
		dim = DefaultDimension
	}
	return &LocalEmbedder{dimension: dim}
}

func (e *LocalEmbedder) Dimension() int { return e.dimension }

// Embed hashes the text's tokens into a unit vector. Never fails for
// non-empty input and ignores ctx: the computation is local and fast.
func (e *LocalEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	vec := make([]float32, e.dimension)
	for _, tok := range tokenize(text) {
		h := fnv.New64a()
		_, _ = h.Write([]byte(tok))
		sum := h.Sum64()
		bucket := int(sum % uint64(e.dimension))
		sign := float32(1)
		if (sum>>63)&1 == 1 {
			sign = -1
		}
		vec[bucket] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
