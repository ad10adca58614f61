package wire

import (
	"github.com/arloliu/wyre/internal/pool"
	"github.com/arloliu/wyre/value"
)

// Encoder encodes a sequence of values into one growing buffer taken from
// a pool, in the spirit of the teacher's VarStringEncoder: every value is
// appended to the same buffer (growth is left to append) instead of
// allocating a fresh slice per value.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewEncoder creates an Encoder backed by a pooled buffer.
func NewEncoder() *Encoder {
	return &Encoder{buf: pool.GetBuffer()}
}

// Encode appends the wire encoding of v to the encoder's buffer.
func (e *Encoder) Encode(v value.Value) {
	e.buf.B = appendValue(e.buf.B, v)
	e.count++
}

// Bytes returns the encoded data so far. The returned slice shares the
// encoder's underlying buffer; copy it before calling Reset if it must
// outlive the encoder.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values encoded since the last Reset.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the total number of bytes written since the last Reset.
func (e *Encoder) Size() int {
	return e.buf.Len()
}

// Reset clears the encoder and returns its buffer to the pool. The
// encoder should not be used again after Reset.
func (e *Encoder) Reset() {
	if e.buf != nil {
		pool.PutBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}
