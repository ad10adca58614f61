// Package errs defines the sentinel errors returned by wyre's decode paths
// and JSON bridge.
//
// Callers should use errors.Is against these sentinels; wrapping errors
// (MissingBytes counts, offending byte values, duplicate keys, unknown
// alias ids) are attached with fmt.Errorf("...: %w", ...) so both the
// sentinel and the diagnostic detail survive.
package errs

import "errors"

// Wire decode errors (spec §7).
var (
	// ErrUnknownDataType is returned when the top 3 bits of a header byte
	// do not name one of the seven known data type tags.
	ErrUnknownDataType = errors.New("wyre: unknown data type")

	// ErrUnknownSpecialType is returned when a Special header's low 5 bits
	// do not name one of the four known special tags.
	ErrUnknownSpecialType = errors.New("wyre: unknown special type")

	// ErrMissingBytes is returned when the buffer ends before a field's
	// declared length is satisfied.
	ErrMissingBytes = errors.New("wyre: missing bytes")

	// ErrVarintTooBig is returned when a varint's continuation byte is
	// still set after the maximum 10-byte width.
	ErrVarintTooBig = errors.New("wyre: varint value too big")

	// ErrBadUTF8 is returned when a string or object key payload is not
	// valid UTF-8.
	ErrBadUTF8 = errors.New("wyre: invalid utf-8")

	// ErrDuplicateKey is returned when an object contains the same key
	// twice on the wire.
	ErrDuplicateKey = errors.New("wyre: duplicate object key")

	// ErrUnknownAlias is returned by a streaming decoder when an Alias
	// record references an id that is not in the active table.
	ErrUnknownAlias = errors.New("wyre: unknown alias id")

	// ErrForgetUnknown is returned by a streaming decoder when a Forget
	// record evicts an id that is not in the active table.
	ErrForgetUnknown = errors.New("wyre: forget of unknown alias id")
)

// JSON bridge errors (spec §4.5).
var (
	// ErrNegativeIntegerTooBig is returned converting Negative(n) to JSON
	// when n exceeds the magnitude representable by an int64.
	ErrNegativeIntegerTooBig = errors.New("wyre: negative integer too big for json")

	// ErrBadFloat is returned converting a NaN or infinite Float to JSON.
	ErrBadFloat = errors.New("wyre: float has no json representation")

	// ErrUnsupportedAlias is returned converting an Alias value to JSON.
	ErrUnsupportedAlias = errors.New("wyre: alias has no json representation")

	// ErrUnsupportedNone is returned converting Special::None to JSON.
	ErrUnsupportedNone = errors.New("wyre: none has no json representation")

	// ErrUnsupportedDefine is returned converting Special::Define to JSON.
	ErrUnsupportedDefine = errors.New("wyre: define has no json representation")

	// ErrUnsupportedForget is returned converting Special::Forget to JSON.
	ErrUnsupportedForget = errors.New("wyre: forget has no json representation")
)
