package locale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// codeKey is the attribute name holding a descriptor's locale code.
const codeKey = "code"

// Descriptor is a locale record: a required code plus arbitrary attributes
// such as name, iso, dir, file or files.
type Descriptor struct {
	// Attrs never contains the "code" key.
	Attrs map[string]any
	Code  string
}

// NewDescriptor creates a descriptor with a copy of attrs.
// A "code" key in attrs is ignored.
func NewDescriptor(code string, attrs map[string]any) Descriptor {
	d := Descriptor{Code: code, Attrs: make(map[string]any, len(attrs))}
	for k, v := range attrs {
		if k == codeKey {
			continue
		}
		d.Attrs[k] = v
	}
	return d
}

// Get returns the attribute value stored under key.
func (d Descriptor) Get(key string) (any, bool) {
	if key == codeKey {
		return d.Code, d.Code != ""
	}
	v, ok := d.Attrs[key]
	return v, ok
}

// StringAttr returns the attribute stored under key if it is a string.
func (d Descriptor) StringAttr(key string) string {
	v, _ := d.Get(key)
	s, _ := v.(string)
	return s
}

// Clone returns a descriptor with its own attribute map.
func (d Descriptor) Clone() Descriptor {
	return Descriptor{Code: d.Code, Attrs: maps.Clone(d.Attrs)}
}

// Map returns the flat representation of the descriptor, code included.
func (d Descriptor) Map() map[string]any {
	m := make(map[string]any, len(d.Attrs)+1)
	maps.Copy(m, d.Attrs)
	m[codeKey] = d.Code
	return m
}

func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.fromMap(raw)
}

func (d Descriptor) MarshalYAML() (any, error) {
	return d.Map(), nil
}

func (d *Descriptor) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return d.fromMap(raw)
}

func (d *Descriptor) fromMap(raw map[string]any) error {
	code, ok := raw[codeKey].(string)
	if !ok || code == "" {
		return ErrMissingCode
	}
	*d = NewDescriptor(code, raw)
	return nil
}

// Entry is a single item of a layer's locales list: a bare code or a descriptor.
type Entry struct {
	desc *Descriptor
	code string
}

// Code creates an entry holding a bare locale code.
func Code(code string) Entry {
	return Entry{code: code}
}

// FromDescriptor creates an entry holding a descriptor.
func FromDescriptor(d Descriptor) Entry {
	c := d.Clone()
	return Entry{code: d.Code, desc: &c}
}

// Codes is a shorthand for building a list of bare code entries.
func Codes(codes ...string) []Entry {
	entries := make([]Entry, 0, len(codes))
	for _, c := range codes {
		entries = append(entries, Code(c))
	}
	return entries
}

// Shape reports whether the entry is a bare code or a descriptor.
func (e Entry) Shape() Shape {
	if e.desc != nil {
		return ShapeDescriptors
	}
	return ShapeCodes
}

// Code returns the locale code regardless of the entry shape.
func (e Entry) Code() string {
	return e.code
}

// Descriptor returns the descriptor held by the entry.
// The second result is false for bare codes.
func (e Entry) Descriptor() (Descriptor, bool) {
	if e.desc == nil {
		return Descriptor{}, false
	}
	return e.desc.Clone(), true
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if e.desc != nil {
		return e.desc.MarshalJSON()
	}
	return json.Marshal(e.code)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidEntry)
	}
	var code string
	if err := json.Unmarshal(data, &code); err == nil {
		*e = Code(code)
		return nil
	}
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEntry, err)
	}
	*e = FromDescriptor(d)
	return nil
}

func (e Entry) MarshalYAML() (any, error) {
	if e.desc != nil {
		return e.desc.Map(), nil
	}
	return e.code, nil
}

func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var code string
		if err := value.Decode(&code); err != nil {
			return err
		}
		*e = Code(code)
		return nil
	case yaml.MappingNode:
		var d Descriptor
		if err := value.Decode(&d); err != nil {
			return err
		}
		*e = FromDescriptor(d)
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidEntry, value.Line)
	}
}

// CheckEntries reports the first entry without a locale code. Decoders leave
// null list items as zero entries, which only this check catches.
func CheckEntries(entries []Entry) error {
	for i, e := range entries {
		if e.Code() == "" {
			return fmt.Errorf("%w: item %d has no code", ErrInvalidEntry, i)
		}
	}
	return nil
}
