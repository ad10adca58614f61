package varint

import (
	"testing"

	"github.com/arloliu/wyre/errs"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 2, 126, 127, 128, 129,
		0x3FFF, 0x4000, 0x4001,
		0x1F_FFFF, 0x20_0000, 0x20_0001,
		1 << 32,
		1<<63 - 1,
		^uint64(0),
	}

	for _, n := range values {
		enc := Encode(n)
		got, consumed, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, n, got)
		require.Equal(t, len(enc), consumed)
	}
}

func TestEncode_WidthBoundaries(t *testing.T) {
	tests := []struct {
		n            uint64
		expectedLen int
	}{
		{0, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x80 + 0x3FFF, 2},
		{0x80 + 0x4000, 3},
	}

	for _, tt := range tests {
		enc := Encode(tt.n)
		require.Lenf(t, enc, tt.expectedLen, "n=%d", tt.n)
	}
}

func TestAppendEncode_DoesNotMutateCapacityUnexpectedly(t *testing.T) {
	dst := []byte{0xAA, 0xBB}
	out := AppendEncode(dst, 300)
	require.Equal(t, byte(0xAA), out[0])
	require.Equal(t, byte(0xBB), out[1])

	got, consumed, err := Decode(out[2:])
	require.NoError(t, err)
	require.Equal(t, uint64(300), got)
	require.Equal(t, len(out)-2, consumed)
}

func TestDecode_MissingBytes(t *testing.T) {
	// A continuation byte with nothing following.
	_, _, err := Decode([]byte{0x80})
	require.ErrorIs(t, err, errs.ErrMissingBytes)
}

func TestDecode_EmptyInput(t *testing.T) {
	_, _, err := Decode(nil)
	require.ErrorIs(t, err, errs.ErrMissingBytes)
}

func TestDecode_VarintTooBig(t *testing.T) {
	data := make([]byte, maxBytes)
	for i := range data {
		data[i] = 0xFF
	}
	_, _, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrVarintTooBig)
}

func TestEncode_NonRedundancy(t *testing.T) {
	// Every distinct n in range must produce a distinct encoding, and
	// every encoding must decode back to exactly the n that produced it
	// (spec §8 non-redundancy law: one encoding per uint64).
	seen := map[string]uint64{}
	for n := uint64(0); n < 0x20_0000+10; n++ {
		enc := Encode(n)
		if prior, ok := seen[string(enc)]; ok {
			t.Fatalf("collision: %d and %d both encode to %x", prior, n, enc)
		}
		seen[string(enc)] = n

		got, _, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestDecode_StopsAtFirstTerminator(t *testing.T) {
	enc := Encode(300)
	trailer := append(append([]byte{}, enc...), 0xFF, 0xFF)
	got, consumed, err := Decode(trailer)
	require.NoError(t, err)
	require.Equal(t, uint64(300), got)
	require.Equal(t, len(enc), consumed)
}
