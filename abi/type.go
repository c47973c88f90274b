// Package abi implements the Ethereum contract Application Binary Interface:
// a recursive type model, canonical signature rendering, and the 32-byte-word
// head/tail encoding used for call data and event logs.
package abi

// Kind identifies the shape of an ABI type.
type Kind byte

const (
	UintKind       Kind = iota // uintM, 8 <= M <= 256, M % 8 == 0
	IntKind                    // intM
	BoolKind                   // bool
	AddressKind                // address, 20 bytes
	FixedBytesKind             // bytesM, 1 <= M <= 32
	BytesKind                  // bytes, dynamic
	StringKind                 // string, dynamic
	ArrayKind                  // T[k], fixed length
	SliceKind                  // T[], dynamic length
	TupleKind                  // (T1,...,Tk)
	FixedKind                  // fixedMxN, representable but not packable
	UfixedKind                 // ufixedMxN
)

// Type is the recursive representation of an ABI type. Name and Indexed are
// annotation channels: they attach binding and topic metadata to a node
// without ever affecting classification, canonical rendering, or wire
// layout.
type Type struct {
	Kind   Kind
	Size   int    // bit width (Uint/Int/Fixed/Ufixed), byte length (FixedBytes), or element count (Array)
	Frac   int    // fractional digits N for fixedMxN/ufixedMxN
	Elem   *Type  // element type for Array/Slice
	Fields []Type // member types for Tuple

	Name    string // binding annotation, used only for decode-time captures
	Indexed bool   // event topic membership annotation
}

// UintType returns the uintM type for the given bit width.
func UintType(bits int) Type { return Type{Kind: UintKind, Size: bits} }

// IntType returns the intM type for the given bit width.
func IntType(bits int) Type { return Type{Kind: IntKind, Size: bits} }

// BoolType returns the bool type.
func BoolType() Type { return Type{Kind: BoolKind} }

// AddressType returns the 20-byte address type.
func AddressType() Type { return Type{Kind: AddressKind} }

// FixedBytesType returns the bytesN type for 1 <= n <= 32.
func FixedBytesType(n int) Type { return Type{Kind: FixedBytesKind, Size: n} }

// BytesType returns the dynamic bytes type.
func BytesType() Type { return Type{Kind: BytesKind} }

// StringType returns the string type.
func StringType() Type { return Type{Kind: StringKind} }

// ArrayType returns the fixed-length array type elem[k].
func ArrayType(elem Type, k int) Type {
	return Type{Kind: ArrayKind, Size: k, Elem: &elem}
}

// SliceType returns the dynamic-length array type elem[].
func SliceType(elem Type) Type {
	return Type{Kind: SliceKind, Elem: &elem}
}

// TupleType returns the tuple type (fields[0],fields[1],...).
func TupleType(fields ...Type) Type {
	return Type{Kind: TupleKind, Fields: fields}
}

// WithName returns a copy of the type carrying the given binding name.
func (t Type) WithName(name string) Type {
	t.Name = name
	return t
}

// AsIndexed returns a copy of the type marked as an indexed event parameter.
func (t Type) AsIndexed() Type {
	t.Indexed = true
	return t
}

// IsDynamic reports whether the type has a variable wire size. A type is
// dynamic iff it is bytes, string, T[] for any T, T[k] for dynamic T, or a
// tuple with at least one dynamic member.
func (t Type) IsDynamic() bool {
	switch t.Kind {
	case BytesKind, StringKind, SliceKind:
		return true
	case ArrayKind:
		return t.Elem.IsDynamic()
	case TupleKind:
		for _, f := range t.Fields {
			if f.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// staticWords returns the number of 32-byte words a static type occupies
// inline. It must not be called on dynamic types.
func (t Type) staticWords() int {
	switch t.Kind {
	case ArrayKind:
		return t.Size * t.Elem.staticWords()
	case TupleKind:
		n := 0
		for _, f := range t.Fields {
			n += f.staticWords()
		}
		return n
	default:
		return 1
	}
}

// headWords returns the number of head-region words the type contributes at
// an enclosing level: its full static size inline, or a single offset word
// when dynamic.
func (t Type) headWords() int {
	if t.IsDynamic() {
		return 1
	}
	return t.staticWords()
}
