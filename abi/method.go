package abi

import (
	"fmt"
	"sync"

	"github.com/ethabi/ethabi/crypto"
)

// SelectorLength is the size of the call-data function selector.
const SelectorLength = 4

// Selector is the 4-byte function identifier: the leading bytes of the
// keccak256 digest of the canonical signature.
type Selector [SelectorLength]byte

// Hex returns the hex string representation of the selector.
func (s Selector) Hex() string { return fmt.Sprintf("0x%x", s[:]) }

// Method describes a callable contract function: an optional name (empty
// for the fallback function), the ordered input types, and the ordered
// output types. The canonical signature and selector are pure functions of
// the name and input types, computed once per instance.
type Method struct {
	Name    string
	Inputs  []Type
	Outputs []Type

	sig func() string
	id  func() Selector
}

// NewMethod builds a Method. An empty name denotes the fallback function,
// which takes no inputs.
func NewMethod(name string, inputs, outputs []Type) *Method {
	m := &Method{Name: name, Inputs: inputs, Outputs: outputs}
	m.sig = sync.OnceValue(func() string {
		return Signature(m.Name, m.Inputs)
	})
	m.id = sync.OnceValue(func() Selector {
		var id Selector
		copy(id[:], crypto.Keccak256([]byte(m.sig())))
		return id
	})
	return m
}

// Signature returns the canonical signature string name(t1,t2,...). The
// result is memoized; repeated calls return the identical string without
// recomputation.
func (m *Method) Signature() string { return m.sig() }

// SelectorID returns the 4-byte function selector.
func (m *Method) SelectorID() Selector { return m.id() }

// Pack encodes the argument values against the method's input types.
func (m *Method) Pack(values ...Value) ([]byte, error) {
	return Pack(m.Inputs, values)
}

// PackCall encodes a full call-data payload: the 4-byte selector followed
// by the encoded arguments.
func (m *Method) PackCall(values ...Value) ([]byte, error) {
	args, err := Pack(m.Inputs, values)
	if err != nil {
		return nil, err
	}
	id := m.SelectorID()
	return append(id[:], args...), nil
}

// Unpack decodes an argument buffer against the method's input types.
func (m *Method) Unpack(data []byte) ([]Value, error) {
	return Unpack(m.Inputs, data)
}

// UnpackNamed decodes arguments and captures values for named parameters.
func (m *Method) UnpackNamed(data []byte) ([]Value, []NamedValue, error) {
	return UnpackNamed(m.Inputs, data)
}

// UnpackOutputs decodes a return buffer against the method's output types.
func (m *Method) UnpackOutputs(data []byte) ([]Value, error) {
	return Unpack(m.Outputs, data)
}
