package abi

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ethabi/ethabi/core/types"
	"github.com/holiman/uint256"
)

// Unpack decodes a word-aligned buffer against the given type list and
// returns the positional values. Decoding is all-or-nothing: the first
// error aborts with no partial results.
func Unpack(typs []Type, data []byte) ([]Value, error) {
	if len(data)%wordSize != 0 {
		return nil, fmt.Errorf("abi: length %d is not a multiple of 32: %w", len(data), ErrBufferTooShort)
	}
	return unpackLevel(typs, data)
}

// unpackLevel decodes one head/tail level. Offsets in head words are
// interpreted relative to the start of data and must land inside
// [headLen, len(data)).
func unpackLevel(typs []Type, data []byte) ([]Value, error) {
	headLen := 0
	for _, t := range typs {
		headLen += t.headWords() * wordSize
	}
	if len(data) < headLen {
		return nil, fmt.Errorf("abi: head needs %d bytes, have %d: %w", headLen, len(data), ErrBufferTooShort)
	}
	vals := make([]Value, 0, len(typs))
	pos := 0
	for _, t := range typs {
		var v Value
		var err error
		if t.IsDynamic() {
			off, ok := wordToUint(data[pos : pos+wordSize])
			if !ok || off < uint64(headLen) || off >= uint64(len(data)) {
				return nil, fmt.Errorf("abi: offset %d outside [%d,%d): %w", off, headLen, len(data), ErrOffsetOutOfRange)
			}
			v, err = unpackValue(t, data[off:])
			pos += wordSize
		} else {
			v, err = unpackValue(t, data[pos:])
			pos += t.staticWords() * wordSize
		}
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// unpackValue decodes a single value starting at data[0].
func unpackValue(t Type, data []byte) (Value, error) {
	switch t.Kind {
	case UintKind:
		w, err := takeWord(data)
		if err != nil {
			return Value{}, err
		}
		u := new(uint256.Int).SetBytes(w)
		x := u.ToBig()
		if x.BitLen() > t.Size {
			return Value{}, fmt.Errorf("abi: %s cannot hold %s: %w", t.CanonicalName(), x, ErrOverflow)
		}
		return Value{kind: integerValue, num: x}, nil

	case IntKind:
		w, err := takeWord(data)
		if err != nil {
			return Value{}, err
		}
		x := new(big.Int).SetBytes(w)
		if w[0]&0x80 != 0 {
			x.Sub(x, twoPow256)
		}
		bound := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		if x.Cmp(new(big.Int).Neg(bound)) < 0 || x.Cmp(bound) >= 0 {
			return Value{}, fmt.Errorf("abi: %s cannot hold %s: %w", t.CanonicalName(), x, ErrOverflow)
		}
		return Value{kind: integerValue, num: x}, nil

	case BoolKind:
		w, err := takeWord(data)
		if err != nil {
			return Value{}, err
		}
		for _, b := range w[:wordSize-1] {
			if b != 0 {
				return Value{}, fmt.Errorf("abi: improperly encoded boolean %x", w)
			}
		}
		switch w[wordSize-1] {
		case 0:
			return Bool(false), nil
		case 1:
			return Bool(true), nil
		default:
			return Value{}, fmt.Errorf("abi: improperly encoded boolean %x", w)
		}

	case AddressKind:
		w, err := takeWord(data)
		if err != nil {
			return Value{}, err
		}
		return Addr(types.BytesToAddress(w[12:])), nil

	case FixedBytesKind:
		w, err := takeWord(data)
		if err != nil {
			return Value{}, err
		}
		return Bytes(w[:t.Size]), nil

	case BytesKind, StringKind:
		w, err := takeWord(data)
		if err != nil {
			return Value{}, err
		}
		n, ok := wordToUint(w)
		if !ok || n > uint64(len(data)-wordSize) {
			return Value{}, fmt.Errorf("abi: %s length %d exceeds buffer: %w", t.CanonicalName(), n, ErrBufferTooShort)
		}
		return Bytes(data[wordSize : wordSize+n]), nil

	case ArrayKind:
		if t.Elem.IsDynamic() {
			items, err := unpackLevel(repeatType(*t.Elem, t.Size), data)
			if err != nil {
				return Value{}, err
			}
			return Value{kind: sequenceValue, list: items}, nil
		}
		stride := t.Elem.staticWords() * wordSize
		if len(data) < t.Size*stride {
			return Value{}, fmt.Errorf("abi: %s needs %d bytes, have %d: %w", t.CanonicalName(), t.Size*stride, len(data), ErrBufferTooShort)
		}
		items := make([]Value, 0, t.Size)
		for i := 0; i < t.Size; i++ {
			v, err := unpackValue(*t.Elem, data[i*stride:])
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{kind: sequenceValue, list: items}, nil

	case SliceKind:
		w, err := takeWord(data)
		if err != nil {
			return Value{}, err
		}
		k, ok := wordToUint(w)
		// Every element contributes at least one head word after the
		// length, which bounds k against the buffer.
		if !ok || k > uint64(len(data)-wordSize)/wordSize {
			return Value{}, fmt.Errorf("abi: %s length %d exceeds buffer: %w", t.CanonicalName(), k, ErrBufferTooShort)
		}
		items, err := unpackLevel(repeatType(*t.Elem, int(k)), data[wordSize:])
		if err != nil {
			return Value{}, err
		}
		return Value{kind: sequenceValue, list: items}, nil

	case TupleKind:
		items, err := unpackLevel(t.Fields, data)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: tupleValue, list: items}, nil

	default:
		return Value{}, fmt.Errorf("abi: cannot decode %s: %w", t.CanonicalName(), ErrUnsupportedType)
	}
}

// takeWord returns the first 32 bytes of data.
func takeWord(data []byte) ([]byte, error) {
	if len(data) < wordSize {
		return nil, fmt.Errorf("abi: need %d bytes, have %d: %w", wordSize, len(data), ErrBufferTooShort)
	}
	return data[:wordSize], nil
}

// wordToUint interprets a 32-byte word as an unsigned integer that must
// fit in 64 bits.
func wordToUint(w []byte) (uint64, bool) {
	for _, b := range w[:wordSize-8] {
		if b != 0 {
			return 0, false
		}
	}
	return binary.BigEndian.Uint64(w[wordSize-8:]), true
}
