package abi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ethabi/ethabi/core/types"
)

// ABI holds the callable surface of a contract as loaded from a JSON ABI
// document: functions and the optional fallback keyed by name, and events
// keyed by name.
type ABI struct {
	Methods  map[string]*Method
	Events   map[string]*Event
	Fallback *Method
}

// JSON parses a JSON ABI document from r.
func JSON(r io.Reader) (*ABI, error) {
	dec := json.NewDecoder(r)
	abi := new(ABI)
	if err := dec.Decode(abi); err != nil {
		return nil, err
	}
	return abi, nil
}

// argument is one entry of an inputs/outputs list in a JSON ABI document.
type argument struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Indexed    bool       `json:"indexed"`
	Components []argument `json:"components"`
}

// toType maps the argument into the type model, retaining the name as a
// binding annotation and the indexed flag where present.
func (a argument) toType() (Type, error) {
	t, err := typeFromJSON(a.Type, a.Components)
	if err != nil {
		return Type{}, err
	}
	t.Name = a.Name
	t.Indexed = a.Indexed
	return t, nil
}

// typeFromJSON resolves a JSON type string. Tuples arrive as "tuple" plus a
// components list (with optional array suffixes); everything else is plain
// signature grammar.
func typeFromJSON(s string, components []argument) (Type, error) {
	if !strings.HasPrefix(s, "tuple") {
		return ParseType(s)
	}
	fields := make([]Type, len(components))
	for i, c := range components {
		f, err := c.toType()
		if err != nil {
			return Type{}, err
		}
		fields[i] = f
	}
	t := TupleType(fields...)
	suffix := s[len("tuple"):]
	for suffix != "" {
		if suffix[0] != '[' {
			return Type{}, fmt.Errorf("abi: bad tuple type %q: %w", s, ErrInvalidType)
		}
		j := strings.IndexByte(suffix, ']')
		if j < 0 {
			return Type{}, fmt.Errorf("abi: bad tuple type %q: %w", s, ErrInvalidType)
		}
		dim := suffix[1:j]
		if dim == "" {
			t = SliceType(t)
		} else {
			k := 0
			if _, err := fmt.Sscanf(dim, "%d", &k); err != nil || k < 0 {
				return Type{}, fmt.Errorf("abi: bad tuple type %q: %w", s, ErrInvalidType)
			}
			t = ArrayType(t, k)
		}
		suffix = suffix[j+1:]
	}
	return t, nil
}

func argumentTypes(args []argument) ([]Type, error) {
	typs := make([]Type, len(args))
	for i, a := range args {
		t, err := a.toType()
		if err != nil {
			return nil, err
		}
		typs[i] = t
	}
	return typs, nil
}

// UnmarshalJSON implements json.Unmarshaler. Entries of type "function" and
// "fallback" become Methods; "event" entries become Events; "constructor"
// and "receive" entries are outside the selector model and are skipped.
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var fields []struct {
		Type            string
		Name            string
		Inputs          []argument
		Outputs         []argument
		StateMutability string
		Anonymous       bool
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	abi.Methods = make(map[string]*Method)
	abi.Events = make(map[string]*Event)
	for _, field := range fields {
		switch field.Type {
		case "function":
			inputs, err := argumentTypes(field.Inputs)
			if err != nil {
				return err
			}
			outputs, err := argumentTypes(field.Outputs)
			if err != nil {
				return err
			}
			name := overloadedName(field.Name, func(s string) bool { _, ok := abi.Methods[s]; return ok })
			abi.Methods[name] = NewMethod(field.Name, inputs, outputs)
		case "fallback":
			if abi.Fallback != nil {
				return errors.New("abi: only a single fallback is allowed")
			}
			abi.Fallback = NewMethod("", nil, nil)
		case "event":
			inputs, err := argumentTypes(field.Inputs)
			if err != nil {
				return err
			}
			name := overloadedName(field.Name, func(s string) bool { _, ok := abi.Events[s]; return ok })
			abi.Events[name] = NewEvent(field.Name, inputs)
		case "constructor", "receive":
			// Not part of the selector model.
		default:
			return fmt.Errorf("abi: unrecognized entry type %q for field %q", field.Type, field.Name)
		}
	}
	return nil
}

// overloadedName uniquifies a name against taken by appending a counter:
// the first collision of foo becomes foo0, the next foo1, and so on.
func overloadedName(rawName string, taken func(string) bool) string {
	name := rawName
	for idx := 0; taken(name); idx++ {
		name = fmt.Sprintf("%s%d", rawName, idx)
	}
	return name
}

// Pack encodes a call to the named method: selector followed by arguments.
func (abi *ABI) Pack(name string, args ...Value) ([]byte, error) {
	method, ok := abi.Methods[name]
	if !ok {
		return nil, fmt.Errorf("abi: method %q not found", name)
	}
	return method.PackCall(args...)
}

// Unpack decodes a return buffer of the named method.
func (abi *ABI) Unpack(name string, data []byte) ([]Value, error) {
	method, ok := abi.Methods[name]
	if !ok {
		return nil, fmt.Errorf("abi: method %q not found", name)
	}
	return method.UnpackOutputs(data)
}

// MethodByID locates the method whose selector matches the leading four
// bytes of sigdata.
func (abi *ABI) MethodByID(sigdata []byte) (*Method, error) {
	if len(sigdata) < SelectorLength {
		return nil, fmt.Errorf("abi: data too short (%d bytes) for method lookup", len(sigdata))
	}
	var id Selector
	copy(id[:], sigdata)
	for _, method := range abi.Methods {
		if method.SelectorID() == id {
			return method, nil
		}
	}
	return nil, fmt.Errorf("abi: no method with id %x", id[:])
}

// EventByID locates the event whose signature hash matches topic.
func (abi *ABI) EventByID(topic types.Hash) (*Event, error) {
	for _, event := range abi.Events {
		if event.SignatureHash() == topic {
			return event, nil
		}
	}
	return nil, fmt.Errorf("abi: no event with id %s", topic.Hex())
}

// UnpackCall dispatches a call-data payload: it resolves the method by
// selector and decodes the arguments that follow.
func (abi *ABI) UnpackCall(data []byte) (*Method, []Value, error) {
	method, err := abi.MethodByID(data)
	if err != nil {
		return nil, nil, err
	}
	args, err := method.Unpack(data[SelectorLength:])
	if err != nil {
		return nil, nil, err
	}
	return method, args, nil
}
