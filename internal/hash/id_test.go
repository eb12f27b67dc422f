package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Digest([]byte(tt.data)))
		})
	}
}

func TestDigestStable(t *testing.T) {
	doc := []byte("# vtk DataFile Version 3.0\nvtk output\nASCII\nDATASET POLYDATA\n")
	assert.Equal(t, Digest(doc), Digest(append([]byte(nil), doc...)))
	assert.NotEqual(t, Digest(doc), Digest(doc[:len(doc)-1]))
}
