// Package export renders a profile as the flat key-value document shared
// with persistence and chat collaborators. Keys are stable Italian labels,
// dates use DD/MM/YYYY and calendar values read "{raw} → {final}".
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/tartampluch/go-numerology/internal/config"
	"gopkg.in/yaml.v3"
)

// Field is one top-level entry of a Document.
type Field struct {
	Key   string
	Value any
}

// Document is an insertion-ordered string-keyed map. Setting an existing
// key replaces its value in place, new keys are appended.
type Document struct {
	fields []Field
	index  map[string]int
}

// New returns an empty document.
func New() *Document {
	return &Document{index: make(map[string]int)}
}

// Set stores value under key.
func (d *Document) Set(key string, value any) *Document {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[key]; ok {
		d.fields[i].Value = value
		return d
	}
	d.index[key] = len(d.fields)
	d.fields = append(d.fields, Field{Key: key, Value: value})
	return d
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.fields[i].Value, true
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.fields))
	for i, f := range d.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the entries in order.
func (d *Document) Fields() []Field {
	return slices.Clone(d.fields)
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return len(d.fields)
}

// Extend copies every field of other into d, keeping d's order for keys it
// already has.
func (d *Document) Extend(other *Document) *Document {
	if other == nil {
		return d
	}
	for _, f := range other.fields {
		d.Set(f.Key, f.Value)
	}
	return d
}

// MarshalJSON writes the fields as a JSON object in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", config.ErrEncode, f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the order of its top-level keys.
// Nested values decode to the generic encoding/json types.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New(config.ErrDecode + ": expected an object")
	}

	*d = Document{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("%s %q: %w", config.ErrDecode, key, err)
		}
		d.Set(key, normalizeNumber(value))
	}
	_, err = dec.Token()
	return err
}

// normalizeNumber turns integral json.Numbers back into ints so documents
// read from disk compare equal to freshly built ones.
func normalizeNumber(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// MarshalYAML builds an ordered mapping node.
func (d *Document) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range d.fields {
		var val yaml.Node
		if err := val.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("%s %q: %w", config.ErrEncode, f.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&val,
		)
	}
	return node, nil
}

// Read decodes a JSON document from r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDecode, err)
	}
	d := New()
	if err := d.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDecode, err)
	}
	return d, nil
}
