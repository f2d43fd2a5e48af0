package bloopmodel

import (
	"encoding/json/jsontext"
)

// Member is an object member this library does not model. The raw value is
// kept in compact form and written back unchanged.
type Member struct {
	Name  string
	Value jsontext.Value
}

// Members preserves unmodelled object members in document order.
type Members []Member

func (ms Members) Get(name string) (v jsontext.Value, ok bool) {
	for _, m := range ms {
		if m.Name == name {
			v, ok = m.Value, true
			break
		}
	}
	return v, ok
}

func (ms Members) Names() []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}
	return names
}
