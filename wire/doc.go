// Package wire implements the recursive encoder and decoder for every
// wire data type: the 1-byte header (package header), the base-offset
// varint (package varint), and the byte-accounting rules that tie them
// together into a self-describing stream.
//
// # Overview
//
// Every encoded value begins with one header byte whose top 3 bits name a
// Tag (Special, Integer, Float, String, Array, Object, Alias) and whose
// low 5 bits carry a type-specific payload — either inline, or an
// overflow-continuation pointer into an appended varint (package header).
//
// Encode is a pure function of a value.Value:
//
//	data := wire.Encode(value.Array([]value.Value{value.Null(), value.Positive(5)}))
//
// Decode reverses it and reports exactly how many bytes it consumed:
//
//	v, n, err := wire.Decode(data)
//
// For encoding many values in sequence, Encoder reuses a pooled buffer
// instead of allocating per call, the same growth strategy the teacher's
// VarStringEncoder uses for repeated string writes.
//
// # Bounds checking
//
// Every field read checks the remaining buffer length before touching it;
// shortfalls report errs.ErrMissingBytes with the count still required.
// There is no unchecked pointer arithmetic — the source this codec is
// based on used raw pointer reads inside the decoder, replaced here by
// ordinary bounds-checked slice indexing (a single length check per
// branch recovers the performance safe indexing would otherwise cost).
package wire
