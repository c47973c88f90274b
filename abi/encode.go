package abi

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// wordSize is the alignment unit of the ABI wire format.
const wordSize = 32

var twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Pack encodes the given values against their declared types into a
// word-aligned buffer: one head slot per parameter, holding the value
// inline for static types or a tail offset for dynamic ones. Encoding is
// all-or-nothing; any error discards the partial buffer.
func Pack(typs []Type, values []Value) ([]byte, error) {
	if len(typs) != len(values) {
		return nil, fmt.Errorf("abi: %d values for %d types: %w", len(values), len(typs), ErrArity)
	}
	return packLevel(typs, values)
}

// packLevel lays out one head/tail encoding level. Offsets are measured
// from the start of the level's head region.
func packLevel(typs []Type, values []Value) ([]byte, error) {
	headLen := 0
	for _, t := range typs {
		headLen += t.headWords() * wordSize
	}
	var head, tail []byte
	for i, t := range typs {
		enc, err := packValue(t, values[i])
		if err != nil {
			return nil, err
		}
		if t.IsDynamic() {
			head = append(head, uintWord(uint64(headLen+len(tail)))...)
			tail = append(tail, enc...)
		} else {
			head = append(head, enc...)
		}
	}
	return append(head, tail...), nil
}

// packValue encodes a single value. For dynamic types the result is the
// tail payload; the enclosing level writes the offset word.
func packValue(t Type, v Value) ([]byte, error) {
	switch t.Kind {
	case UintKind:
		if v.kind != integerValue {
			return nil, shapeErr(t, v)
		}
		return packUint(t, v.num)

	case IntKind:
		if v.kind != integerValue {
			return nil, shapeErr(t, v)
		}
		return packInt(t, v.num)

	case BoolKind:
		if v.kind != boolValue {
			return nil, shapeErr(t, v)
		}
		var w [wordSize]byte
		if v.flag {
			w[wordSize-1] = 1
		}
		return w[:], nil

	case AddressKind:
		if v.kind != addressValue {
			return nil, shapeErr(t, v)
		}
		var w [wordSize]byte
		copy(w[12:], v.addr[:])
		return w[:], nil

	case FixedBytesKind:
		if v.kind != bytesValue {
			return nil, shapeErr(t, v)
		}
		if len(v.data) > t.Size {
			return nil, fmt.Errorf("abi: %d bytes for %s: %w", len(v.data), t.CanonicalName(), ErrShape)
		}
		var w [wordSize]byte
		copy(w[:], v.data)
		return w[:], nil

	case BytesKind, StringKind:
		if v.kind != bytesValue {
			return nil, shapeErr(t, v)
		}
		return append(uintWord(uint64(len(v.data))), rightPad(v.data)...), nil

	case ArrayKind:
		if v.kind != sequenceValue {
			return nil, shapeErr(t, v)
		}
		if len(v.list) != t.Size {
			return nil, fmt.Errorf("abi: %d elements for %s: %w", len(v.list), t.CanonicalName(), ErrShape)
		}
		return packLevel(repeatType(*t.Elem, t.Size), v.list)

	case SliceKind:
		if v.kind != sequenceValue {
			return nil, shapeErr(t, v)
		}
		body, err := packLevel(repeatType(*t.Elem, len(v.list)), v.list)
		if err != nil {
			return nil, err
		}
		return append(uintWord(uint64(len(v.list))), body...), nil

	case TupleKind:
		if v.kind != tupleValue {
			return nil, shapeErr(t, v)
		}
		if len(v.list) != len(t.Fields) {
			return nil, fmt.Errorf("abi: %d members for %s: %w", len(v.list), t.CanonicalName(), ErrShape)
		}
		return packLevel(t.Fields, v.list)

	default:
		return nil, fmt.Errorf("abi: cannot encode %s: %w", t.CanonicalName(), ErrUnsupportedType)
	}
}

// packUint encodes an unsigned integer of bit width t.Size as a 32-byte
// big-endian word, zero left-padded.
func packUint(t Type, x *big.Int) ([]byte, error) {
	u, overflow := uint256.FromBig(x)
	if x.Sign() < 0 || overflow || x.BitLen() > t.Size {
		return nil, fmt.Errorf("abi: %s cannot hold %s: %w", t.CanonicalName(), x, ErrOverflow)
	}
	w := u.Bytes32()
	return w[:], nil
}

// packInt encodes a signed integer of bit width t.Size as 32-byte
// two's-complement big-endian, sign-extended to the full word.
func packInt(t Type, x *big.Int) ([]byte, error) {
	bound := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	max := new(big.Int).Sub(bound, big.NewInt(1))
	min := new(big.Int).Neg(bound)
	if x.Cmp(min) < 0 || x.Cmp(max) > 0 {
		return nil, fmt.Errorf("abi: %s cannot hold %s: %w", t.CanonicalName(), x, ErrOverflow)
	}
	y := x
	if x.Sign() < 0 {
		y = new(big.Int).Add(twoPow256, x)
	}
	u, _ := uint256.FromBig(y)
	w := u.Bytes32()
	return w[:], nil
}

func shapeErr(t Type, v Value) error {
	return fmt.Errorf("abi: %s value for %s: %w", v.kindName(), t.CanonicalName(), ErrShape)
}

func (v Value) kindName() string {
	switch v.kind {
	case integerValue:
		return "integer"
	case bytesValue:
		return "bytes"
	case boolValue:
		return "boolean"
	case addressValue:
		return "address"
	case sequenceValue:
		return "sequence"
	case tupleValue:
		return "tuple"
	default:
		return "invalid"
	}
}

// uintWord encodes u as a 32-byte big-endian word.
func uintWord(u uint64) []byte {
	w := make([]byte, wordSize)
	w[24] = byte(u >> 56)
	w[25] = byte(u >> 48)
	w[26] = byte(u >> 40)
	w[27] = byte(u >> 32)
	w[28] = byte(u >> 24)
	w[29] = byte(u >> 16)
	w[30] = byte(u >> 8)
	w[31] = byte(u)
	return w
}

// rightPad pads data with zero bytes to the next multiple of 32.
func rightPad(data []byte) []byte {
	n := len(data) % wordSize
	if n == 0 {
		out := make([]byte, len(data))
		copy(out, data)
		return out
	}
	out := make([]byte, len(data)+wordSize-n)
	copy(out, data)
	return out
}

// repeatType returns k copies of elem, the type list of a k-element
// homogeneous level.
func repeatType(elem Type, k int) []Type {
	typs := make([]Type, k)
	for i := range typs {
		typs[i] = elem
	}
	return typs
}
