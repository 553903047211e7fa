package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
)

// Top-level keys with meaning to uvm.
const (
	KeyName         = "name"
	KeyDependencies = "dependencies"
	KeyManager      = "uvm"
)

// member is one top-level key of the manifest object with its raw value.
type member struct {
	key string
	raw json.RawMessage
}

// Document is a parsed manifest. The zero value is not usable; obtain one
// from Parse, Load or New.
type Document struct {
	members []member
	name    string
	deps    []string
}

// New returns a document holding only a name and an empty dependency list.
func New(name string) *Document {
	rawName, _ := json.Marshal(name)
	return &Document{
		members: []member{
			{key: KeyName, raw: rawName},
			{key: KeyDependencies},
		},
		name: name,
		deps: []string{},
	}
}

// Parse decodes manifest text. Member order and raw values are retained for
// Marshal.
func Parse(data []byte) (*Document, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, result.Summary())
	}

	members, err := decodeMembers(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	doc := &Document{members: members, deps: []string{}}
	for _, m := range members {
		switch m.key {
		case KeyName:
			if err := json.Unmarshal(m.raw, &doc.name); err != nil {
				return nil, fmt.Errorf("%w: name: %v", ErrMalformed, err)
			}
		case KeyDependencies:
			if err := json.Unmarshal(m.raw, &doc.deps); err != nil {
				return nil, fmt.Errorf("%w: dependencies: %v", ErrMalformed, err)
			}
		}
	}
	if doc.deps == nil {
		doc.deps = []string{}
	}
	return doc, nil
}

// decodeMembers walks the top-level object and returns its members in order.
func decodeMembers(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("top-level value is not an object")
	}

	var members []member
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = true

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding %q: %w", key, err)
		}
		members = append(members, member{key: key, raw: raw})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after manifest object")
	}
	return members, nil
}

// Name returns the project name.
func (d *Document) Name() string {
	return d.name
}

// Contains reports whether name is listed, by exact match.
func (d *Document) Contains(name string) bool {
	return slices.Contains(d.deps, name)
}

// List returns a copy of the dependency names in stored order.
func (d *Document) List() []string {
	return slices.Clone(d.deps)
}

// All yields the dependency names in stored order. The sequence may be
// ranged over more than once.
func (d *Document) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, dep := range d.deps {
			if !yield(dep) {
				return
			}
		}
	}
}

// Len returns the number of dependencies.
func (d *Document) Len() int {
	return len(d.deps)
}

// Add appends name to the dependencies. It returns ErrAlreadyPresent, and
// leaves the document untouched, if name is already listed.
func (d *Document) Add(name string) error {
	if d.Contains(name) {
		return fmt.Errorf("%w: %s", ErrAlreadyPresent, name)
	}
	d.deps = append(d.deps, name)
	return nil
}

// Remove deletes name from the dependencies. It returns ErrNotListed, and
// leaves the document untouched, if name is not listed.
func (d *Document) Remove(name string) error {
	i := slices.Index(d.deps, name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotListed, name)
	}
	d.deps = slices.Delete(d.deps, i, i+1)
	return nil
}

// Marshal renders the document as two-space indented JSON with a trailing
// newline. Members other than dependencies are written with their original
// raw values, in their original order.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, m := range d.members {
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", m.key, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")

		if m.key == KeyDependencies {
			deps, err := d.marshalDeps()
			if err != nil {
				return nil, err
			}
			buf.Write(deps)
		} else {
			buf.Write(m.raw)
		}

		if i < len(d.members)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func (d *Document) marshalDeps() ([]byte, error) {
	if len(d.deps) == 0 {
		return []byte("[]"), nil
	}
	data, err := json.MarshalIndent(d.deps, "  ", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding dependencies: %w", err)
	}
	return data, nil
}

// raw returns the raw value of a top-level key.
func (d *Document) raw(key string) (json.RawMessage, bool) {
	for _, m := range d.members {
		if m.key == key {
			return m.raw, true
		}
	}
	return nil, false
}
