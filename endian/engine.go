// Package endian provides the byte-order primitive used by the wire codec.
//
// It extends the standard encoding/binary package by combining the
// ByteOrder and AppendByteOrder interfaces into a single EndianEngine,
// so call sites can use the allocation-free Append* methods without
// threading a separate interface around.
//
// The wire format (spec §6) fixes little-endian for every multi-byte
// field, so wyre exposes a single constructor rather than a configurable
// byte-order choice:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, value)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into one interface. binary.LittleEndian satisfies it directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used throughout
// the wire codec.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
