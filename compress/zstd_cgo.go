//go:build nobuild

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress Zstandard-compresses a frame via cgo, at the same level
// ZstdCompressor's pure-Go build (zstd_pure.go) targets, so swapping
// build tags does not change a stream's on-wire size.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress reverses Compress.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
