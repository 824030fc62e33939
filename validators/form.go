// Package validators checks user input and configuration before anything is sent.
package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CorrelAid/compress_uploader/models"
)

var (
	ErrEmptyForm    = errors.New("form has no fields and no files")
	ErrFileTooLarge = errors.New("file size exceeds the maximum limit")
)

type fieldRule struct {
	Name string `rule:"required,printascii"`
}

// ValidateFormPayload checks a payload before submission. A maxSize of zero
// disables the size check.
func ValidateFormPayload(payload models.FormPayload, maxSize int64) error {
	if payload.Empty() {
		return ErrEmptyForm
	}

	for _, f := range payload.Fields {
		if err := ValidateStruct(fieldRule{Name: f.Name}); err != nil {
			return fmt.Errorf("invalid field name %q: %w", f.Name, err)
		}
	}

	for _, f := range payload.Files {
		if err := ValidateStruct(fieldRule{Name: f.FieldName}); err != nil {
			return fmt.Errorf("invalid file field name %q: %w", f.FieldName, err)
		}
		if f.Open == nil {
			return fmt.Errorf("file %s: no content", f.FileName)
		}
		if maxSize > 0 && f.Size > maxSize {
			return fmt.Errorf("%s (%d bytes): %w", f.FileName, f.Size, ErrFileTooLarge)
		}
	}

	return nil
}

// ParseFieldSpec splits a "name=value" command line argument.
func ParseFieldSpec(spec string) (models.Field, error) {
	name, value, ok := strings.Cut(spec, "=")
	if !ok {
		return models.Field{}, fmt.Errorf("field %q: expected name=value", spec)
	}

	name = strings.TrimSpace(name)
	if err := ValidateStruct(fieldRule{Name: name}); err != nil {
		return models.Field{}, fmt.Errorf("field %q: invalid name", spec)
	}

	return models.Field{Name: name, Value: value}, nil
}

// ParseFileSpec splits a "[field=]path" command line argument. Without a
// field name the file goes into the default field.
func ParseFileSpec(spec, defaultField string) (field, path string, err error) {
	field, path, ok := strings.Cut(spec, "=")
	if !ok {
		field, path = defaultField, spec
	}

	field = strings.TrimSpace(field)
	if path == "" {
		return "", "", fmt.Errorf("file %q: empty path", spec)
	}
	if err := ValidateStruct(fieldRule{Name: field}); err != nil {
		return "", "", fmt.Errorf("file %q: invalid field name", spec)
	}

	return field, path, nil
}
