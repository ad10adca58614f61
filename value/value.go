// Package value implements the tagged-union value model shared by the
// wire codec, the JSON bridge, and the alias cache (spec §3, §4.2).
//
// A Value is an immutable sum of six families: Special, Integer, Float,
// String, Array, and Object, plus an Alias back-reference. Value is a
// plain data carrier — equality is structural and all serialization logic
// lives in package wire.
package value

import "fmt"

// Kind identifies which of the value families a Value holds, mirroring
// the small tagged uint8 enums the teacher uses for on-wire type fields
// (see package header's Tag).
type Kind uint8

const (
	KindSpecial Kind = iota
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindSpecial:
		return "Special"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	case KindAlias:
		return "Alias"
	default:
		return "Unknown"
	}
}

// SpecialTag selects which of the four Special sub-cases a KindSpecial
// Value holds.
type SpecialTag uint8

const (
	SpecialNone SpecialTag = iota
	SpecialNull
	SpecialDefine
	SpecialForget
)

func (t SpecialTag) String() string {
	switch t {
	case SpecialNone:
		return "None"
	case SpecialNull:
		return "Null"
	case SpecialDefine:
		return "Define"
	case SpecialForget:
		return "Forget"
	default:
		return "Unknown"
	}
}

// IntKind selects which of the three Integer sub-cases a KindInteger
// Value holds.
type IntKind uint8

const (
	IntPositive IntKind = iota
	IntNegative
	IntBool
)

func (k IntKind) String() string {
	switch k {
	case IntPositive:
		return "Positive"
	case IntNegative:
		return "Negative"
	case IntBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Value is an immutable, structurally-comparable element of the encodable
// value space. The zero Value is Special::None.
type Value struct {
	kind    Kind
	special SpecialTag
	intKind IntKind

	u    uint64 // magnitude for Integer::Positive/Negative, Alias id, Forget id, Bool as 0/1
	f    float64
	s    string
	arr  []Value
	obj  map[string]Value
	defn *Value // inner value for Special::Define
}

// Kind returns which value family v belongs to.
func (v Value) Kind() Kind { return v.kind }

// --- constructors ---

// None returns the in-process absence marker. It is not convertible to JSON.
func None() Value { return Value{kind: KindSpecial, special: SpecialNone} }

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindSpecial, special: SpecialNull} }

// Define returns a Special::Define record binding inner to the next alias
// identifier in a streaming decoder's table.
func Define(inner Value) Value {
	cp := inner
	return Value{kind: KindSpecial, special: SpecialDefine, defn: &cp}
}

// Forget returns a Special::Forget record evicting id from the alias table.
func Forget(id uint64) Value {
	return Value{kind: KindSpecial, special: SpecialForget, u: id}
}

// Bool returns an Integer::Bool value.
func Bool(b bool) Value {
	var u uint64
	if b {
		u = 1
	}
	return Value{kind: KindInteger, intKind: IntBool, u: u}
}

// Positive returns an Integer::Positive value for a non-negative magnitude.
func Positive(n uint64) Value { return Value{kind: KindInteger, intKind: IntPositive, u: n} }

// Negative returns an Integer::Negative value; n is the absolute value of
// a negative number (the true number is -n). Negative(0) is legal on
// decode but encoders should prefer Positive(0) (spec §3 invariant).
func Negative(n uint64) Value { return Value{kind: KindInteger, intKind: IntNegative, u: n} }

// Float returns a binary64 Float value. NaN and +/-Inf are representable
// on the wire but fail conversion to JSON (spec §4.5).
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a UTF-8 String value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an ordered, heterogeneous Array value. The slice is not
// copied; callers should not mutate it after construction.
func Array(xs []Value) Value { return Value{kind: KindArray, arr: xs} }

// Object returns a string-keyed Object value. The map is not copied;
// callers should not mutate it after construction. Key order carries no
// semantic meaning (spec §9 non-canonical object order).
func Object(m map[string]Value) Value { return Value{kind: KindObject, obj: m} }

// Alias returns an Alias back-reference to a previously Define'd value.
func Alias(id uint64) Value { return Value{kind: KindAlias, u: id} }

// --- accessors ---
//
// Each accessor panics if called on a Value of the wrong Kind/sub-kind;
// callers should switch on Kind() (and SpecialTag()/IntKind() where
// relevant) before calling one, exactly as a type switch would.

func (v Value) wrongKind(want Kind) string {
	return fmt.Sprintf("value: wrong kind: want %s, have %s", want, v.kind)
}

// SpecialTag returns the Special sub-case. Panics if Kind() != KindSpecial.
func (v Value) SpecialTag() SpecialTag {
	if v.kind != KindSpecial {
		panic(v.wrongKind(KindSpecial))
	}
	return v.special
}

// DefineInner returns the value bound by a Special::Define record. Panics
// if v is not a Define record.
func (v Value) DefineInner() Value {
	if v.kind != KindSpecial || v.special != SpecialDefine {
		panic("value: not a Define record")
	}
	return *v.defn
}

// ForgetID returns the alias id evicted by a Special::Forget record.
// Panics if v is not a Forget record.
func (v Value) ForgetID() uint64 {
	if v.kind != KindSpecial || v.special != SpecialForget {
		panic("value: not a Forget record")
	}
	return v.u
}

// IntKind returns the Integer sub-case. Panics if Kind() != KindInteger.
func (v Value) IntKind() IntKind {
	if v.kind != KindInteger {
		panic(v.wrongKind(KindInteger))
	}
	return v.intKind
}

// Bool returns the boolean carried by an Integer::Bool value. Panics
// otherwise.
func (v Value) Bool() bool {
	if v.kind != KindInteger || v.intKind != IntBool {
		panic("value: not an Integer::Bool")
	}
	return v.u != 0
}

// Magnitude returns the unsigned magnitude carried by an Integer::Positive
// or Integer::Negative value (the true number is +/-Magnitude()
// respectively). Panics for any other kind.
func (v Value) Magnitude() uint64 {
	if v.kind != KindInteger || (v.intKind != IntPositive && v.intKind != IntNegative) {
		panic("value: not an Integer::Positive/Negative")
	}
	return v.u
}

// Float64 returns the float64 carried by a Float value. Panics otherwise.
func (v Value) Float64() float64 {
	if v.kind != KindFloat {
		panic(v.wrongKind(KindFloat))
	}
	return v.f
}

// Str returns the string carried by a String value. Panics otherwise.
func (v Value) Str() string {
	if v.kind != KindString {
		panic(v.wrongKind(KindString))
	}
	return v.s
}

// Elems returns the elements of an Array value. Panics otherwise.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		panic(v.wrongKind(KindArray))
	}
	return v.arr
}

// Fields returns the entries of an Object value. Panics otherwise.
func (v Value) Fields() map[string]Value {
	if v.kind != KindObject {
		panic(v.wrongKind(KindObject))
	}
	return v.obj
}

// AliasID returns the identifier carried by an Alias value. Panics
// otherwise.
func (v Value) AliasID() uint64 {
	if v.kind != KindAlias {
		panic(v.wrongKind(KindAlias))
	}
	return v.u
}

// Equal reports whether a and b are structurally equal. Object comparison
// ignores iteration order (spec §9): it checks both maps have the same
// key set and each value is Equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindSpecial:
		if a.special != b.special {
			return false
		}
		switch a.special {
		case SpecialDefine:
			return Equal(*a.defn, *b.defn)
		case SpecialForget:
			return a.u == b.u
		default:
			return true
		}
	case KindInteger:
		if a.intKind != b.intKind {
			return false
		}
		if a.intKind == IntBool {
			return (a.u != 0) == (b.u != 0)
		}
		return a.u == b.u
	case KindFloat:
		return a.f == b.f || (isNaN(a.f) && isNaN(b.f))
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindAlias:
		return a.u == b.u
	default:
		return false
	}
}

func isNaN(f float64) bool { return f != f }

// String renders a compact debug representation of v. It is not the wire
// format and is not meant to be parsed back.
func (v Value) String() string {
	switch v.kind {
	case KindSpecial:
		switch v.special {
		case SpecialNone:
			return "None"
		case SpecialNull:
			return "Null"
		case SpecialDefine:
			return fmt.Sprintf("Define(%s)", v.defn.String())
		case SpecialForget:
			return fmt.Sprintf("Forget(%d)", v.u)
		}
	case KindInteger:
		switch v.intKind {
		case IntBool:
			return fmt.Sprintf("Bool(%t)", v.u != 0)
		case IntPositive:
			return fmt.Sprintf("Positive(%d)", v.u)
		case IntNegative:
			return fmt.Sprintf("Negative(%d)", v.u)
		}
	case KindFloat:
		return fmt.Sprintf("Float(%v)", v.f)
	case KindString:
		return fmt.Sprintf("String(%q)", v.s)
	case KindArray:
		return fmt.Sprintf("Array(len=%d)", len(v.arr))
	case KindObject:
		return fmt.Sprintf("Object(len=%d)", len(v.obj))
	case KindAlias:
		return fmt.Sprintf("Alias(%d)", v.u)
	}
	return "Unknown"
}
