package locale

import (
	"encoding/json"
	"slices"
)

// Shape identifies how locales are expressed: bare codes or descriptors.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeCodes
	ShapeDescriptors
)

func (s Shape) String() string {
	switch s {
	case ShapeCodes:
		return "codes"
	case ShapeDescriptors:
		return "descriptors"
	default:
		return "none"
	}
}

// ShapeOf returns the shape of the first entry, or ShapeNone for an empty list.
func ShapeOf(entries []Entry) Shape {
	if len(entries) == 0 {
		return ShapeNone
	}
	return entries[0].Shape()
}

// List is a homogeneous locale list: either all codes or all descriptors.
// The zero value is an empty list with ShapeNone.
type List struct {
	codes       []string
	descriptors []Descriptor
	shape       Shape
}

// NewCodeList creates a code-shaped list.
func NewCodeList(codes ...string) List {
	return List{shape: ShapeCodes, codes: slices.Clone(codes)}
}

// NewDescriptorList creates a descriptor-shaped list.
func NewDescriptorList(descriptors ...Descriptor) List {
	l := List{shape: ShapeDescriptors, descriptors: make([]Descriptor, 0, len(descriptors))}
	for _, d := range descriptors {
		l.descriptors = append(l.descriptors, d.Clone())
	}
	return l
}

// Shape returns the shape shared by every element of the list.
func (l List) Shape() Shape {
	return l.shape
}

// Len returns the number of locales in the list.
func (l List) Len() int {
	if l.shape == ShapeDescriptors {
		return len(l.descriptors)
	}
	return len(l.codes)
}

// IsEmpty reports whether the list holds no locales.
func (l List) IsEmpty() bool {
	return l.Len() == 0
}

// Codes returns the locale codes in list order, whatever the shape.
func (l List) Codes() []string {
	if l.shape != ShapeDescriptors {
		return slices.Clone(l.codes)
	}
	codes := make([]string, 0, len(l.descriptors))
	for _, d := range l.descriptors {
		codes = append(codes, d.Code)
	}
	return codes
}

// Descriptors returns a copy of the descriptors of a descriptor-shaped list.
// The second result is false for any other shape.
func (l List) Descriptors() ([]Descriptor, bool) {
	if l.shape != ShapeDescriptors {
		return nil, false
	}
	out := make([]Descriptor, 0, len(l.descriptors))
	for _, d := range l.descriptors {
		out = append(out, d.Clone())
	}
	return out, true
}

// Entries converts the list back into layer entries.
func (l List) Entries() []Entry {
	if l.shape != ShapeDescriptors {
		return Codes(l.codes...)
	}
	entries := make([]Entry, 0, len(l.descriptors))
	for _, d := range l.descriptors {
		entries = append(entries, FromDescriptor(d))
	}
	return entries
}

// Equal reports whether both lists have the same shape and equal elements.
// Descriptor attributes are compared by their JSON encoding.
func (l List) Equal(other List) bool {
	if l.Len() != other.Len() {
		return false
	}
	if l.IsEmpty() {
		return true
	}
	if l.shape != other.shape {
		return false
	}
	a, errA := json.Marshal(l)
	b, errB := json.Marshal(other)
	return errA == nil && errB == nil && string(a) == string(b)
}

func (l List) MarshalJSON() ([]byte, error) {
	if l.shape == ShapeDescriptors {
		return json.Marshal(l.descriptors)
	}
	if l.codes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.codes)
}

func (l List) MarshalYAML() (any, error) {
	if l.shape == ShapeDescriptors {
		return l.descriptors, nil
	}
	if l.codes == nil {
		return []string{}, nil
	}
	return l.codes, nil
}
