package compress

import "github.com/klauspost/compress/s2"

// S2Compressor wraps klauspost/compress/s2, an LZ77 variant tuned for
// streaming throughput rather than maximum ratio. It sits between LZ4
// (faster, worse ratio) and Zstd (slower, better ratio) for a
// stream.Compressor's Payload codec.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 frame compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress S2-compresses a frame. S2's block format self-describes its
// decompressed length, so unlike LZ4Compressor no buffer-growth loop is
// needed on the decode side.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
