package abi

import "strconv"

// CanonicalName renders the type as its normalized elementary name:
// uint256 (never uint), bytesM, address, bool, string, bytes, elem[] or
// elem[k] for arrays, and (m1,m2,...) for tuples. Annotations do not
// appear in the rendering.
func (t Type) CanonicalName() string {
	switch t.Kind {
	case UintKind:
		return "uint" + strconv.Itoa(t.Size)
	case IntKind:
		return "int" + strconv.Itoa(t.Size)
	case BoolKind:
		return "bool"
	case AddressKind:
		return "address"
	case FixedBytesKind:
		return "bytes" + strconv.Itoa(t.Size)
	case BytesKind:
		return "bytes"
	case StringKind:
		return "string"
	case ArrayKind:
		return t.Elem.CanonicalName() + "[" + strconv.Itoa(t.Size) + "]"
	case SliceKind:
		return t.Elem.CanonicalName() + "[]"
	case TupleKind:
		s := "("
		for i, f := range t.Fields {
			if i > 0 {
				s += ","
			}
			s += f.CanonicalName()
		}
		return s + ")"
	case FixedKind:
		return "fixed" + strconv.Itoa(t.Size) + "x" + strconv.Itoa(t.Frac)
	case UfixedKind:
		return "ufixed" + strconv.Itoa(t.Size) + "x" + strconv.Itoa(t.Frac)
	default:
		return "<invalid>"
	}
}

// String implements fmt.Stringer.
func (t Type) String() string { return t.CanonicalName() }

// Signature builds the canonical signature string name(t1,t2,...) over the
// annotation-stripped types. The result is ASCII and fully deterministic;
// its keccak256 digest identifies functions (first four bytes) and events
// (all 32 bytes, topic 0).
func Signature(name string, types []Type) string {
	s := name + "("
	for i, t := range types {
		if i > 0 {
			s += ","
		}
		s += t.CanonicalName()
	}
	return s + ")"
}
