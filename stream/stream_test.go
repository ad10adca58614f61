package stream

import (
	"testing"

	"github.com/arloliu/wyre/compress"
	"github.com/arloliu/wyre/value"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, cfg Config, values []value.Value) {
	t.Helper()

	c := NewCompressor(cfg)
	d := NewDecompressor(cfg)

	for i, v := range values {
		frame, err := c.Compress(v)
		require.NoErrorf(t, err, "compress #%d", i)

		got, consumed, err := d.Decompress(frame)
		require.NoErrorf(t, err, "decompress #%d", i)
		require.Truef(t, value.Equal(v, got), "#%d: want %s, got %s", i, v, got)

		if cfg.Payload == nil {
			require.Equal(t, len(frame), consumed)
		} else {
			require.Equal(t, len(frame), consumed)
		}
	}
}

func TestCompressDecompress_NoRepeats(t *testing.T) {
	cfg := Config{}
	values := []value.Value{
		value.Positive(42),
		value.String("hello"),
		value.Array([]value.Value{value.Bool(true), value.Null()}),
		value.Object(map[string]value.Value{"a": value.Positive(1)}),
	}
	roundTrip(t, cfg, values)
}

func TestCompressDecompress_PromotesRepeatedString(t *testing.T) {
	cfg := Config{MaxCache: 4, MaxFutureCache: 16, ReconsiderEvery: 2}
	c := NewCompressor(cfg)
	d := NewDecompressor(cfg)

	repeated := value.String("a-fairly-long-repeated-string-value")

	var lastConsumed int
	var lastGot value.Value
	for i := 0; i < 6; i++ {
		frame, err := c.Compress(repeated)
		require.NoError(t, err)

		got, consumed, err := d.Decompress(frame)
		require.NoError(t, err)
		require.True(t, value.Equal(repeated, got), "iteration %d", i)
		lastConsumed = consumed
		lastGot = got
	}
	require.True(t, value.Equal(repeated, lastGot))
	require.Greater(t, lastConsumed, 0)
}

func TestCompressDecompress_NestedRepeatedStrings(t *testing.T) {
	cfg := Config{MaxCache: 8, MaxFutureCache: 32, ReconsiderEvery: 1}
	c := NewCompressor(cfg)
	d := NewDecompressor(cfg)

	key := "repeated-tag-value-for-alias-substitution"
	makeRecord := func(n int) value.Value {
		return value.Object(map[string]value.Value{
			"tag":   value.String(key),
			"index": value.Positive(uint64(n)),
		})
	}

	for i := 0; i < 10; i++ {
		v := makeRecord(i)
		frame, err := c.Compress(v)
		require.NoError(t, err)

		got, _, err := d.Decompress(frame)
		require.NoError(t, err)
		require.True(t, value.Equal(v, got), "iteration %d: want %s got %s", i, v, got)
	}
}

func TestCompressor_Forget(t *testing.T) {
	cfg := Config{MaxCache: 2, MaxFutureCache: 8, ReconsiderEvery: 1}
	c := NewCompressor(cfg)
	d := NewDecompressor(cfg)

	s := value.String("evict-me-after-one-use")

	frame, err := c.Compress(s)
	require.NoError(t, err)
	_, _, err = d.Decompress(frame)
	require.NoError(t, err)

	frame, err = c.Compress(s)
	require.NoError(t, err)
	got, _, err := d.Decompress(frame)
	require.NoError(t, err)
	require.True(t, value.Equal(s, got))

	// An id was assigned by promotion; forgetting it must be reflected on
	// both the encoder's cache and, once the Forget record reaches the
	// decoder, its table.
	forgetFrame, ok := c.Forget(0)
	require.True(t, ok)
	require.NotNil(t, forgetFrame)

	_, _, err = d.Decompress(forgetFrame)
	require.NoError(t, err)

	_, err = d.table.Resolve(0)
	require.Error(t, err)
}

func TestCompressDecompress_WithPayloadCodec(t *testing.T) {
	cfg := Config{Payload: compress.NewZstdCompressor()}
	values := []value.Value{
		value.String("payload-compressed string value"),
		value.Array([]value.Value{value.Positive(1), value.Positive(2), value.Positive(3)}),
	}
	roundTrip(t, cfg, values)
}

func TestNewConfig_FunctionalOptions(t *testing.T) {
	codec := compress.NewS2Compressor()
	cfg := NewConfig(
		WithMaxCache(10),
		WithMaxFutureCache(20),
		WithReconsiderEvery(5),
		WithPayloadCodec(codec),
	)

	require.Equal(t, 10, cfg.MaxCache)
	require.Equal(t, 20, cfg.MaxFutureCache)
	require.Equal(t, 5, cfg.ReconsiderEvery)
	require.Equal(t, codec, cfg.Payload)
}

func TestDecompress_PropagatesWireError(t *testing.T) {
	d := NewDecompressor(Config{})
	_, _, err := d.Decompress([]byte{0xFF})
	require.Error(t, err)
}
