package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Categories maps category names to their bookmark entries while keeping the
// key order of the JSON object they were decoded from. The zero value is an
// empty set ready to use.
type Categories struct {
	order   []string
	entries map[string][]BookmarkEntry
}

// NewCategories builds a set from name/entries pairs in the given order.
func NewCategories(cats ...Category) Categories {
	var c Categories
	for _, cat := range cats {
		c.Set(cat.Name, cat.Entries)
	}
	return c
}

// Category is a name and its entries, used where order matters.
type Category struct {
	Name    string
	Entries []BookmarkEntry
}

// Names returns category names in natural key order.
func (c Categories) Names() []string {
	return append([]string{}, c.order...)
}

func (c Categories) Len() int { return len(c.order) }

func (c Categories) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Get returns the entries stored under name. The slice is shared; callers
// that mutate it must copy first.
func (c Categories) Get(name string) ([]BookmarkEntry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Set stores entries under name. A new name is appended to the order, an
// existing one keeps its position.
func (c *Categories) Set(name string, entries []BookmarkEntry) {
	if c.entries == nil {
		c.entries = make(map[string][]BookmarkEntry)
	}
	if _, ok := c.entries[name]; !ok {
		c.order = append(c.order, name)
	}
	if entries == nil {
		entries = []BookmarkEntry{}
	}
	c.entries[name] = entries
}

// Delete removes name. It reports whether the name was present.
func (c *Categories) Delete(name string) bool {
	if _, ok := c.entries[name]; !ok {
		return false
	}
	delete(c.entries, name)
	order := make([]string, 0, len(c.order)-1)
	for _, n := range c.order {
		if n != name {
			order = append(order, n)
		}
	}
	c.order = order
	return true
}

// Clone deep-copies the set, entries included.
func (c Categories) Clone() Categories {
	var out Categories
	for _, name := range c.order {
		out.Set(name, append([]BookmarkEntry{}, c.entries[name]...))
	}
	return out
}

// MarshalJSON writes the set as a JSON object in natural key order.
func (c Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(name)
		if err != nil {
			return nil, err
		}
		val, err := marshalNoEscape(c.entries[name])
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of name -> [entries], keeping key order.
// A repeated key keeps its first position and its last value.
func (c *Categories) UnmarshalJSON(data []byte) error {
	*c = Categories{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var entries []BookmarkEntry
		if err := json.Unmarshal(f.value, &entries); err != nil {
			return fmt.Errorf("category %q: %w", f.key, err)
		}
		c.Set(f.key, entries)
	}
	return nil
}

var errNotObject = errors.New("expected a JSON object")

type rawField struct {
	key   string
	value json.RawMessage
}

// decodeObject splits a JSON object into its members, in document order.
func decodeObject(data []byte) ([]rawField, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var fields []rawField
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		fields = append(fields, rawField{key: key, value: raw})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}
	return fields, nil
}

// marshalNoEscape encodes v without HTML-escaping '&', '<' and '>', which are
// common in bookmark URLs.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
