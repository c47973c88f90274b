package abi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// elementaryRegex splits an elementary type name into its base name, bit or
// byte size, and fixed-point fraction.
var elementaryRegex = regexp.MustCompile(`^([a-z]+)([0-9]+)?(x([0-9]+))?$`)

// ParseType parses a type string from the signature grammar: elementary
// names, tuples (T1,T2,...), and array suffixes T[] / T[k]. Bare uint, int,
// fixed, and ufixed aliases normalize to their canonical widths.
func ParseType(s string) (Type, error) {
	if s == "" {
		return Type{}, fmt.Errorf("abi: empty type string: %w", ErrInvalidType)
	}
	if strings.HasSuffix(s, "]") {
		i := strings.LastIndex(s, "[")
		if i < 0 {
			return Type{}, fmt.Errorf("abi: unbalanced brackets in %q: %w", s, ErrInvalidType)
		}
		elem, err := ParseType(s[:i])
		if err != nil {
			return Type{}, err
		}
		dim := s[i+1 : len(s)-1]
		if dim == "" {
			return SliceType(elem), nil
		}
		k, err := strconv.Atoi(dim)
		if err != nil || k < 0 {
			return Type{}, fmt.Errorf("abi: bad array length in %q: %w", s, ErrInvalidType)
		}
		return ArrayType(elem, k), nil
	}
	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return Type{}, fmt.Errorf("abi: unbalanced parentheses in %q: %w", s, ErrInvalidType)
		}
		inner := s[1 : len(s)-1]
		if inner == "" {
			return TupleType(), nil
		}
		parts, err := splitTopLevel(inner)
		if err != nil {
			return Type{}, fmt.Errorf("abi: %q: %w", s, err)
		}
		fields := make([]Type, len(parts))
		for i, p := range parts {
			f, err := ParseType(p)
			if err != nil {
				return Type{}, err
			}
			fields[i] = f
		}
		return TupleType(fields...), nil
	}
	return parseElementary(s)
}

// MustParseType is ParseType that panics on malformed input.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

func parseElementary(s string) (Type, error) {
	m := elementaryRegex.FindStringSubmatch(s)
	if m == nil {
		return Type{}, fmt.Errorf("abi: unsupported type %q: %w", s, ErrInvalidType)
	}
	base := m[1]
	size := -1
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Type{}, fmt.Errorf("abi: bad size in %q: %w", s, ErrInvalidType)
		}
		size = n
	}
	frac := -1
	if m[4] != "" {
		n, err := strconv.Atoi(m[4])
		if err != nil {
			return Type{}, fmt.Errorf("abi: bad fraction in %q: %w", s, ErrInvalidType)
		}
		frac = n
	}

	bad := func() (Type, error) {
		return Type{}, fmt.Errorf("abi: unsupported type %q: %w", s, ErrInvalidType)
	}
	switch base {
	case "uint", "int":
		if frac >= 0 {
			return bad()
		}
		if size < 0 {
			size = 256
		}
		if size < 8 || size > 256 || size%8 != 0 {
			return bad()
		}
		if base == "uint" {
			return UintType(size), nil
		}
		return IntType(size), nil
	case "bool":
		if size >= 0 || frac >= 0 {
			return bad()
		}
		return BoolType(), nil
	case "address":
		if size >= 0 || frac >= 0 {
			return bad()
		}
		return AddressType(), nil
	case "string":
		if size >= 0 || frac >= 0 {
			return bad()
		}
		return StringType(), nil
	case "bytes":
		if frac >= 0 {
			return bad()
		}
		if size < 0 {
			return BytesType(), nil
		}
		if size < 1 || size > 32 {
			return bad()
		}
		return FixedBytesType(size), nil
	case "fixed", "ufixed":
		if size < 0 && frac < 0 {
			size, frac = 128, 18
		}
		if size < 8 || size > 256 || size%8 != 0 || frac < 1 || frac > 80 {
			return bad()
		}
		kind := FixedKind
		if base == "ufixed" {
			kind = UfixedKind
		}
		return Type{Kind: kind, Size: size, Frac: frac}, nil
	default:
		return bad()
	}
}

// splitTopLevel splits a comma-separated list at bracket depth zero.
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced brackets: %w", ErrInvalidType)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets: %w", ErrInvalidType)
	}
	parts = append(parts, s[start:])
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("empty list element: %w", ErrInvalidType)
		}
	}
	return parts, nil
}
