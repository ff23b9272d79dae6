package goshape

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Document is the ordered key-value output of a dump. Field order follows the
// schema's declaration order, not lexicographic order, so the wire shape is
// reproducible. A Document is created fresh per dump call and holds plain
// values only: string, number, bool, nil, *Document, or []*Document.
type Document struct {
	keys   []string
	values map[string]any
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{values: map[string]any{}}
}

// Set assigns a field value. First assignment fixes the field's position;
// re-assigning an existing field keeps its original position.
func (d *Document) Set(name string, v any) {
	if _, ok := d.values[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.values[name] = v
}

// Get returns the value for name and whether the field is present.
func (d *Document) Get(name string) (any, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Keys returns the field names in declaration order. The returned slice is
// shared; callers must not mutate it.
func (d *Document) Keys() []string { return d.keys }

// Len returns the number of fields.
func (d *Document) Len() int { return len(d.keys) }

// Map returns a plain map copy of the document. Nested Documents are left as
// *Document values; order is lost.
func (d *Document) Map() map[string]any {
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the document as a JSON object preserving field order.
// Values are encoded with goccy/go-json; nested Documents recurse through
// this method.
func (d *Document) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
