package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeVector(t *testing.T) {
	vec := []float32{0.25, -1.5, 0, 3.14159, 1e-7}
	decoded, err := DecodeVector(EncodeVector(vec))
	require.NoError(t, err)
	assert.Equal(t, vec, decoded)
}

func TestEncodeVectorEmpty(t *testing.T) {
	decoded, err := DecodeVector(EncodeVector(nil))
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecodeVectorRejectsOddLength(t *testing.T) {
	_, err := DecodeVector([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestEncodeVectorIsLittleEndian(t *testing.T) {
	// 1.0 as float32 is 0x3f800000.
	buf := EncodeVector([]float32{1.0})
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf)
}
