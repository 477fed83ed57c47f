package corrector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Table is a string-keyed map that remembers insertion order.
// Decoding from JSON keeps the key order of the source document,
// which matters for base-verb resolution (first prefix match wins).
type Table[V any] struct {
	keys    []string
	entries map[string]V
}

// NewTable returns an empty table.
func NewTable[V any]() *Table[V] {
	return &Table[V]{entries: make(map[string]V)}
}

// Set stores v under key. A key that is already present keeps its
// original position.
func (t *Table[V]) Set(key string, v V) {
	if t.entries == nil {
		t.entries = make(map[string]V)
	}
	if _, ok := t.entries[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = v
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	if t == nil {
		var zero V
		return zero, false
	}
	v, ok := t.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table[V]) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of entries.
func (t *Table[V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns a copy of the keys in insertion order.
func (t *Table[V]) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// All iterates over the entries in insertion order.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if t == nil {
			return
		}
		for _, k := range t.keys {
			if !yield(k, t.entries[k]) {
				return
			}
		}
	}
}

func (t *Table[V]) reset() {
	t.keys = nil
	t.entries = make(map[string]V)
}

// UnmarshalJSON decodes a JSON object, keeping its key order.
func (t *Table[V]) UnmarshalJSON(data []byte) error {
	t.reset()
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		t.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the table as a JSON object in insertion order.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalVerbatim(k)
		if err != nil {
			return nil, err
		}
		vb, err := marshalVerbatim(t.entries[k])
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalVerbatim encodes v without HTML escaping so that the text
// is written back as it was read.
func marshalVerbatim(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
