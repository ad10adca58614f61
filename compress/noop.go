package compress

// NoOpCompressor passes a stream.Compressor's encoded frame through
// unchanged. It satisfies Codec so a Config can select "no payload
// compression" through the same WithPayloadCodec wiring as the real
// codecs, rather than special-casing a nil codec at every call site.
//
// Useful when frames are already small (alias substitution did the real
// work) or when a caller wants to isolate wire-codec overhead from
// compression overhead in a benchmark.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a compressor that leaves frame bytes untouched.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unmodified. The returned slice aliases data's
// backing array; callers must not mutate data afterward if they still
// hold the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unmodified, mirroring Compress.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
