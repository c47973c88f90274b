package abi

import (
	"fmt"
	"sync"

	"github.com/ethabi/ethabi/core/types"
	"github.com/ethabi/ethabi/crypto"
)

// Event describes a contract log event. The full parameter list is
// partitioned by the Indexed annotation into topic parameters and data
// parameters, each preserving declaration order; every parameter lands in
// exactly one half. The signature hash over the full list is computed
// lazily, exactly once.
type Event struct {
	Name   string
	Inputs []Type

	topicInputs []Type
	dataInputs  []Type

	hashFn  func(...[]byte) types.Hash
	sig     func() string
	sigHash func() types.Hash
}

// NewEvent builds an Event from its name and full ordered parameter list.
func NewEvent(name string, inputs []Type) *Event {
	e := &Event{Name: name, Inputs: inputs, hashFn: crypto.Keccak256Hash}
	for _, t := range inputs {
		if t.Indexed {
			e.topicInputs = append(e.topicInputs, t)
		} else {
			e.dataInputs = append(e.dataInputs, t)
		}
	}
	e.sig = sync.OnceValue(func() string {
		return Signature(e.Name, e.Inputs)
	})
	e.sigHash = sync.OnceValue(func() types.Hash {
		return e.hashFn([]byte(e.sig()))
	})
	return e
}

// TopicInputs returns the indexed parameters in declaration order.
func (e *Event) TopicInputs() []Type { return e.topicInputs }

// DataInputs returns the non-indexed parameters in declaration order.
func (e *Event) DataInputs() []Type { return e.dataInputs }

// Signature returns the canonical signature string over the full parameter
// list, independent of the topic/data partition.
func (e *Event) Signature() string { return e.sig() }

// SignatureHash returns the 32-byte keccak256 digest of the canonical
// signature: topic 0 of every log this event emits. The digest is cached
// on first use and never recomputed.
func (e *Event) SignatureHash() types.Hash { return e.sigHash() }

// LogOptions controls event log decoding.
type LogOptions struct {
	// SkipSignatureCheck disables the topic-0 equality check.
	SkipSignatureCheck bool
	// Named requests named captures alongside the positional values.
	Named bool
}

// DecodedLog is the result of decoding an event log. Event identifies the
// selector that produced the values; Values holds the decoded topic values
// followed by the decoded data values; Data holds the decoded data tuple
// alone; Named holds topic captures followed by data captures when
// requested.
type DecodedLog struct {
	Event  *Event
	Values []Value
	Data   []Value
	Named  []NamedValue
}

// DecodeLog decodes an event log from its topic list and data buffer.
// Unless disabled, topics[0] must equal SignatureHash. Each indexed
// parameter is decoded from its own topic word; an indexed parameter of
// dynamic or multi-word type is surfaced as the 32-byte keccak256 digest
// the topic holds, since the raw value is not recoverable. The data buffer
// is decoded against the non-indexed parameters.
func (e *Event) DecodeLog(topics []types.Hash, data []byte, opts *LogOptions) (*DecodedLog, error) {
	if opts == nil {
		opts = &LogOptions{}
	}
	if !opts.SkipSignatureCheck {
		if len(topics) == 0 || topics[0] != e.SignatureHash() {
			return nil, fmt.Errorf("abi: event %s: %w", e.Signature(), ErrSignatureMismatch)
		}
	}
	if len(topics) != len(e.topicInputs)+1 {
		return nil, fmt.Errorf("abi: event %s: %d topics for %d indexed parameters: %w",
			e.Signature(), len(topics), len(e.topicInputs), ErrArity)
	}

	out := &DecodedLog{Event: e}
	for i, t := range e.topicInputs {
		word := topics[i+1]
		var v Value
		if t.IsDynamic() || t.staticWords() > 1 {
			// The topic holds keccak256 of the value's encoding.
			v = Bytes(word[:])
		} else {
			vals, err := Unpack([]Type{t}, word[:])
			if err != nil {
				return nil, err
			}
			v = vals[0]
		}
		out.Values = append(out.Values, v)
		if opts.Named {
			collectCaptures(t, v, &out.Named)
		}
	}

	dataVals, err := Unpack(e.dataInputs, data)
	if err != nil {
		return nil, err
	}
	out.Data = dataVals
	out.Values = append(out.Values, dataVals...)
	if opts.Named {
		for i, t := range e.dataInputs {
			collectCaptures(t, dataVals[i], &out.Named)
		}
	}
	return out, nil
}

// DecodeLogRecord decodes a types.Log as produced by an execution client.
func (e *Event) DecodeLogRecord(log *types.Log, opts *LogOptions) (*DecodedLog, error) {
	return e.DecodeLog(log.Topics, log.Data, opts)
}
