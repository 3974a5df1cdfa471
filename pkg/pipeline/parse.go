package pipeline

import (
	"github.com/matzehuels/ffimg/pkg/errors"
	"github.com/matzehuels/ffimg/pkg/spec"
)

// Parse decodes spec data and resolves every field size.
// A spec without any field is rejected with EMPTY_SPEC.
func Parse(data []byte, format spec.Format) ([]spec.ParsedField, error) {
	s, err := spec.Decode(data, format)
	if err != nil {
		return nil, err
	}
	fields, err := s.Parse()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySpec, "spec declares no fields")
	}
	return fields, nil
}
