package compress

// Algorithm identifies a payload compression codec. It replaces the
// teacher's format.CompressionType: wyre has no encoding-type concept (no
// delta/Gorilla numeric encodings), so only the compression axis survives
// the port.
type Algorithm uint8

const (
	AlgorithmNone Algorithm = 0x1 // AlgorithmNone applies no compression.
	AlgorithmZstd Algorithm = 0x2 // AlgorithmZstd applies Zstandard compression.
	AlgorithmS2   Algorithm = 0x3 // AlgorithmS2 applies S2 compression.
	AlgorithmLZ4  Algorithm = 0x4 // AlgorithmLZ4 applies LZ4 compression.
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "None"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmS2:
		return "S2"
	case AlgorithmLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
