package abi

// Binding is one entry of the named-binding index: a name annotation found
// at some depth of the type tree, with the inner type it names. The index
// drives decode-time named captures and plays no part in wire layout.
type Binding struct {
	Name  string
	Depth int
	Type  Type
}

// NamedValue pairs a binding name with the value decoded at its tree
// position.
type NamedValue struct {
	Name  string
	Value Value
}

// Bindings builds the named-binding index for a type list: every node
// carrying a name annotation, in declaration order, flattened across
// nesting depth. Descending into an array element or tuple member adds one
// to the depth; indexed annotations add none.
func Bindings(typs []Type) []Binding {
	var out []Binding
	for _, t := range typs {
		collectBindings(t, 0, &out)
	}
	return out
}

func collectBindings(t Type, depth int, out *[]Binding) {
	if t.Name != "" {
		*out = append(*out, Binding{Name: t.Name, Depth: depth, Type: t})
	}
	switch t.Kind {
	case ArrayKind, SliceKind:
		collectBindings(*t.Elem, depth+1, out)
	case TupleKind:
		for _, f := range t.Fields {
			collectBindings(f, depth+1, out)
		}
	}
}

// UnpackNamed decodes like Unpack and additionally captures the value at
// every named node of the type tree, in declaration order.
func UnpackNamed(typs []Type, data []byte) ([]Value, []NamedValue, error) {
	vals, err := Unpack(typs, data)
	if err != nil {
		return nil, nil, err
	}
	var named []NamedValue
	for i, t := range typs {
		collectCaptures(t, vals[i], &named)
	}
	return vals, named, nil
}

func collectCaptures(t Type, v Value, out *[]NamedValue) {
	if t.Name != "" {
		*out = append(*out, NamedValue{Name: t.Name, Value: v})
	}
	switch t.Kind {
	case ArrayKind, SliceKind:
		for i := 0; i < v.Len(); i++ {
			collectCaptures(*t.Elem, v.At(i), out)
		}
	case TupleKind:
		for i, f := range t.Fields {
			collectCaptures(f, v.At(i), out)
		}
	}
}
