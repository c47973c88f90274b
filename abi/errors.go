package abi

import "errors"

var (
	// ErrArity is returned when the number of values does not match the
	// number of types.
	ErrArity = errors.New("abi: argument count mismatch")

	// ErrOverflow is returned when a numeric value lies outside the domain
	// of its declared bit width or sign.
	ErrOverflow = errors.New("abi: value out of range for type")

	// ErrShape is returned when an aggregate value is structurally
	// incompatible with its declared type.
	ErrShape = errors.New("abi: value shape incompatible with type")

	// ErrBufferTooShort is returned when decode input is truncated or not
	// word-aligned.
	ErrBufferTooShort = errors.New("abi: buffer too short")

	// ErrOffsetOutOfRange is returned when a decoded tail offset points
	// outside the valid region of the buffer.
	ErrOffsetOutOfRange = errors.New("abi: offset out of range")

	// ErrSignatureMismatch is returned when topic 0 of an event log does not
	// match the event's signature hash.
	ErrSignatureMismatch = errors.New("abi: event signature mismatch")

	// ErrUnsupportedType is returned for types that are representable in the
	// type model but have no defined encoding (fixed-point).
	ErrUnsupportedType = errors.New("abi: unsupported type")

	// ErrInvalidType is returned by the parser for malformed type strings.
	ErrInvalidType = errors.New("abi: invalid type")
)
