package abi

import (
	"bytes"
	"math/big"

	"github.com/ethabi/ethabi/core/types"
)

// valueKind tags the variants of the Value union.
type valueKind byte

const (
	integerValue valueKind = iota
	bytesValue
	boolValue
	addressValue
	sequenceValue // array or slice elements
	tupleValue
)

// Value is the tagged union of runtime values accepted by the encoder and
// produced by the decoder: integer, bytes (also strings), boolean, address,
// sequence, and tuple. The encoder validates a Value against its declared
// Type; mismatches are shape errors, never coercions.
type Value struct {
	kind valueKind
	num  *big.Int
	data []byte
	flag bool
	addr types.Address
	list []Value
}

// BigInt wraps a big integer value. The integer is copied.
func BigInt(x *big.Int) Value {
	return Value{kind: integerValue, num: new(big.Int).Set(x)}
}

// Uint64 wraps an unsigned integer value.
func Uint64(u uint64) Value {
	return Value{kind: integerValue, num: new(big.Int).SetUint64(u)}
}

// Int64 wraps a signed integer value.
func Int64(i int64) Value {
	return Value{kind: integerValue, num: big.NewInt(i)}
}

// Bool wraps a boolean value.
func Bool(b bool) Value {
	return Value{kind: boolValue, flag: b}
}

// Addr wraps a 20-byte address value.
func Addr(a types.Address) Value {
	return Value{kind: addressValue, addr: a}
}

// Bytes wraps a byte-string value (bytes, bytesM). The slice is copied.
func Bytes(b []byte) Value {
	return Value{kind: bytesValue, data: bytes.Clone(b)}
}

// String wraps a string value.
func String(s string) Value {
	return Value{kind: bytesValue, data: []byte(s)}
}

// List wraps an ordered sequence of values for array and slice types.
func List(items ...Value) Value {
	return Value{kind: sequenceValue, list: items}
}

// Tuple wraps an ordered group of member values for tuple types.
func Tuple(items ...Value) Value {
	return Value{kind: tupleValue, list: items}
}

// BigInt returns the integer payload, or nil for non-integer values.
func (v Value) BigInt() *big.Int {
	if v.kind != integerValue {
		return nil
	}
	return new(big.Int).Set(v.num)
}

// Uint64 returns the integer payload as uint64. It returns 0 for values
// that are not integers or do not fit.
func (v Value) Uint64() uint64 {
	if v.kind != integerValue || !v.num.IsUint64() {
		return 0
	}
	return v.num.Uint64()
}

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.kind == boolValue && v.flag }

// Addr returns the address payload.
func (v Value) Addr() types.Address {
	if v.kind != addressValue {
		return types.Address{}
	}
	return v.addr
}

// Bytes returns the byte-string payload.
func (v Value) Bytes() []byte {
	if v.kind != bytesValue {
		return nil
	}
	return bytes.Clone(v.data)
}

// String returns the byte-string payload as a string. For non-byte values
// it returns the empty string.
func (v Value) String() string {
	if v.kind != bytesValue {
		return ""
	}
	return string(v.data)
}

// Len returns the number of elements of a sequence or tuple value.
func (v Value) Len() int { return len(v.list) }

// At returns the i-th element of a sequence or tuple value.
func (v Value) At(i int) Value {
	if i < 0 || i >= len(v.list) {
		return Value{}
	}
	return v.list[i]
}

// Equal reports deep equality of two values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case integerValue:
		return v.num.Cmp(o.num) == 0
	case bytesValue:
		return bytes.Equal(v.data, o.data)
	case boolValue:
		return v.flag == o.flag
	case addressValue:
		return v.addr == o.addr
	case sequenceValue, tupleValue:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
