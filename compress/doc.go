// Package compress provides compression and decompression codecs for wyre
// stream output buffers.
//
// This package offers multiple general-purpose compression algorithms
// applied to the final serialized byte buffer a streaming compressor
// produces, after wire encoding and alias substitution have already
// squeezed out the structural redundancy they can see.
//
// # Overview
//
// Wyre applies a two-stage compression strategy:
//
//  1. **Wire encoding + aliasing**: Exploits structural and repeated-string
//     patterns in the value tree (varint-packed headers, alias backreferences)
//  2. **Payload compression**: Further reduces the encoded buffer using a
//     general-purpose byte-stream algorithm
//
// The compress package implements the second stage, supporting multiple
// algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (compress.AlgorithmNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - The buffer is already well-compacted by aliasing
//   - CPU is more critical than transfer size
//   - Data is incompressible (random, encrypted)
//
// **Zstandard (Zstd)** (compress.AlgorithmZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Excellent (typically 2-4x on top of wire encoding)
//   - Speed: Moderate (compression: ~400 MB/s, decompression: ~1000 MB/s)
//   - Memory: ~2-4 MB for compression, ~1-2 MB for decompression
//   - Latency: Medium (adds ~0.5-2ms for typical payloads)
//
// Use when:
//   - Transfer or storage cost is the primary concern
//   - Network bandwidth is limited
//   - Can tolerate moderate compression overhead
//
// Best for:
//   - String-heavy payloads (high compression ratio)
//   - Large batched streams
//   - Cold storage / archival
//
// **S2 (Snappy Alternative)** (compress.AlgorithmS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Good (typically 1.5-2.5x on top of wire encoding)
//   - Speed: Fast (compression: ~1000 MB/s, decompression: ~2000 MB/s)
//   - Memory: ~256KB for compression, ~64KB for decompression
//   - Latency: Low (adds ~0.2-0.5ms for typical payloads)
//
// Use when:
//   - Need balance between compression and speed
//   - Latency is important
//   - Moderate savings are acceptable
//
// Best for:
//   - Real-time message ingestion
//   - Hot path request/response bodies
//   - Streaming applications
//
// **LZ4** (compress.AlgorithmLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Moderate (typically 1.3-2x on top of wire encoding)
//   - Speed: Very fast decompression (~3000 MB/s), moderate compression (~800 MB/s)
//   - Memory: ~64KB for compression, ~16KB for decompression
//   - Latency: Very low (adds ~0.1-0.3ms for typical payloads)
//
// Use when:
//   - Read performance is critical
//   - Decompression speed matters more than compression ratio
//   - Low latency is required
//
// Best for:
//   - Read-heavy workloads
//   - Low-latency applications
//   - Cache-friendly scenarios
//
// # Algorithm Selection Guide
//
// **Choose based on workload**:
//
// | Workload Type          | Recommended | Reason                              |
// |------------------------|-------------|-------------------------------------|
// | Storage-constrained    | Zstd        | Best compression ratio              |
// | Real-time ingestion    | S2          | Balanced speed and compression      |
// | Read-heavy             | LZ4         | Fastest decompression               |
// | CPU-constrained        | None        | No compression overhead             |
// | Cold storage           | Zstd        | Maximize space savings              |
// | Hot path               | LZ4 or S2   | Minimize latency                    |
// | Network transmission   | Zstd        | Reduce bandwidth usage              |
//
// **Choose based on payload characteristics**:
//
// | Payload Shape            | Recommended | Typical Ratio (after wire encoding) |
// |---------------------------|-------------|--------------------------------------|
// | String-heavy objects      | Zstd        | 3-5x                                  |
// | Mostly numeric arrays     | S2          | 1.5-2x                                |
// | Deeply nested structures  | Zstd        | 2-3x                                  |
// | Repeated keys (few alias) | Zstd        | 3-4x                                  |
// | Mixed                     | S2          | 1.8-2.5x                              |
//
// # Memory Management
//
// Pooling differs per codec:
//   - LZ4 pools its block compressors; its output buffer is sized by
//     lz4.CompressBlockBound, and decompression grows a buffer from 4x the
//     compressed size until the block fits
//   - Zstd pools its encoders and decoders and returns them after each call
//   - S2 and NoOp keep no pooled state
//
// Memory overhead:
//   - NoOp: Zero overhead
//   - LZ4: ~64KB compression, ~16KB decompression
//   - S2: ~256KB compression, ~64KB decompression
//   - Zstd: ~2-4MB compression, ~1-2MB decompression
//
// # Thread Safety
//
// All codec implementations are thread-safe and can be safely shared across goroutines.
// However, for best performance, consider using a codec per goroutine to avoid
// internal lock contention.
//
// # Error Handling
//
// Compression errors are rare but can occur:
//   - Input too large (exceeds algorithm limits)
//   - Memory allocation failure
//
// Decompression errors are more common:
//   - Corrupted compressed data
//   - Invalid compression format
//   - Decompressed size exceeds limits
//   - Checksum validation failure (algorithm-dependent)
//
// Zstd decompression errors are wrapped with context; LZ4 and S2 return
// the underlying library's error as is.
//
// # Best Practices
//
//  1. **Profile your workload**: Different algorithms excel at different scenarios
//  2. **Consider total cost**: Factor in CPU, memory, transfer, and storage
//  3. **Use appropriate levels**: Higher compression levels may not be worth the CPU cost
//  4. **Monitor metrics**: Track compression ratios, latencies, and resource usage
//  5. **Test with real data**: Synthetic benchmarks may not represent your workload
//  6. **Cache decompressors**: Create once, reuse many times
//
// # Integration with the stream package
//
// The stream package uses this package internally. Configure payload
// compression via the streaming compressor's Config:
//
//	cfg := stream.Config{
//	    MaxCache:       alias.DefaultMaxCache,
//	    MaxFutureCache: alias.DefaultMaxFutureCache,
//	    Payload:        compress.NewZstdCompressor(),
//	}
//	c := stream.NewCompressor(cfg)
//	frame, _ := c.Compress(v)
//
// A stream.Decompressor configured with the matching Payload codec reverses
// the process automatically.
//
// # Advanced Usage
//
// For custom compression needs, implement the Compressor/Decompressor interfaces:
//
//	type MyCodec struct{}
//
//	func (c *MyCodec) Compress(data []byte) ([]byte, error) {
//	    // Custom compression logic
//	    return compressedData, nil
//	}
//
//	func (c *MyCodec) Decompress(data []byte) ([]byte, error) {
//	    // Custom decompression logic
//	    return originalData, nil
//	}
//
// Any type satisfying Codec can be passed as stream.Config.Payload.
package compress
