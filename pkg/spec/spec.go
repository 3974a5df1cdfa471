package spec

import (
	"github.com/matzehuels/ffimg/pkg/errors"
)

// Spec is the ordered list of categories describing a file format.
type Spec []Category

// Category groups fields under a name. The name is informational only;
// category boundaries never affect layout.
type Category struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Fields []Field `json:"fields" yaml:"fields" toml:"fields"`
}

// Field is one named, sized unit exactly as declared in the spec file.
type Field struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Size string `json:"size" yaml:"size" toml:"size"`
}

// ParsedField is a Field whose size has been resolved to an exact byte count.
type ParsedField struct {
	Name     string // Field name as declared
	Bytes    uint64 // Exact byte count, always > 0
	Display  string // Canonical size label, e.g. "16 bytes" or "2 KiB"
	Category string // Name of the owning category
	Index    int    // Position in the flattened declaration order
}

// FieldCount returns the total number of fields across all categories.
func (s Spec) FieldCount() int {
	n := 0
	for _, c := range s {
		n += len(c.Fields)
	}
	return n
}

// Parse resolves every field size once, in declaration order.
// Categories are flattened; the returned slice preserves declaration order.
func (s Spec) Parse() ([]ParsedField, error) {
	out := make([]ParsedField, 0, s.FieldCount())
	for ci, c := range s {
		for fi, f := range c.Fields {
			n, err := ParseSize(f.Size)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeSpecFormat, err,
					"category %d (%q) field %d (%q): invalid size %q", ci, c.Name, fi, f.Name, f.Size)
			}
			out = append(out, ParsedField{
				Name:     f.Name,
				Bytes:    n,
				Display:  FormatSize(n),
				Category: c.Name,
				Index:    len(out),
			})
		}
	}
	return out, nil
}

// Sizes returns the byte counts of fields in order.
func Sizes(fields []ParsedField) []uint64 {
	sizes := make([]uint64, len(fields))
	for i, f := range fields {
		sizes[i] = f.Bytes
	}
	return sizes
}

// MaxBytes returns the largest byte count among fields, or 0 if there are none.
func MaxBytes(fields []ParsedField) uint64 {
	var m uint64
	for _, f := range fields {
		m = max(m, f.Bytes)
	}
	return m
}
