package compress

// ZstdCompressor compresses documents with Zstandard.
//
// The implementation is selected at build time: see zstd_pure.go and
// zstd_cgo.go.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
