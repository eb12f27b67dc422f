// Package hash computes xxHash64 digests of rendered documents.
package hash

import "github.com/cespare/xxhash/v2"

// Digest returns the xxHash64 of data.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
