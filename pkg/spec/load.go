package spec

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ffimg/pkg/errors"
)

// Format identifies a spec file encoding.
type Format string

// Supported spec encodings.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the spec encoding from a file extension.
// Unknown extensions are treated as YAML, the native spec format.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// rawCategory and rawField mirror Category and Field with pointers so that
// missing keys can be told apart from empty values.
type rawCategory struct {
	Name   *string     `json:"name" yaml:"name" toml:"name"`
	Fields *[]rawField `json:"fields" yaml:"fields" toml:"fields"`
}

type rawField struct {
	Name *string `json:"name" yaml:"name" toml:"name"`
	Size *string `json:"size" yaml:"size" toml:"size"`
}

// tomlDocument is the TOML layout: a top-level array of tables.
type tomlDocument struct {
	Category []rawCategory `toml:"category"`
}

// Load reads and decodes the spec file at path.
func Load(path string) (Spec, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, FormatFromPath(path))
}

// ReadFile returns the raw contents of the spec file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read spec file %s", path)
	}
	return data, nil
}

// Decode parses spec data in the given format and checks that every
// category has fields and every field has a name and a size.
func Decode(data []byte, format Format) (Spec, error) {
	var raw []rawCategory
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&raw)
	case FormatTOML:
		var doc tomlDocument
		_, err = toml.Decode(string(data), &doc)
		raw = doc.Category
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported spec format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSpecFormat, err, "decode %s spec", format)
	}

	return fromRaw(raw)
}

func fromRaw(raw []rawCategory) (Spec, error) {
	s := make(Spec, 0, len(raw))
	for ci, rc := range raw {
		c := Category{}
		if rc.Name != nil {
			c.Name = *rc.Name
		}
		if rc.Fields == nil {
			return nil, errors.New(errors.ErrCodeSpecFormat, "category %d (%q): missing \"fields\"", ci, c.Name)
		}

		c.Fields = make([]Field, 0, len(*rc.Fields))
		for fi, rf := range *rc.Fields {
			if rf.Name == nil {
				return nil, errors.New(errors.ErrCodeSpecFormat, "category %d (%q) field %d: missing \"name\"", ci, c.Name, fi)
			}
			if rf.Size == nil {
				return nil, errors.New(errors.ErrCodeSpecFormat, "category %d (%q) field %d (%q): missing \"size\"", ci, c.Name, fi, *rf.Name)
			}
			c.Fields = append(c.Fields, Field{Name: *rf.Name, Size: *rf.Size})
		}
		s = append(s, c)
	}
	return s, nil
}
