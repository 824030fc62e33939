package models

import (
	"io"
)

// Field is a single text field of a submitted form.
type Field struct {
	Name  string
	Value string
}

// FileField is a file entry of a submitted form. Open is called once per
// submission to stream the content into the request body.
type FileField struct {
	FieldName   string
	FileName    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// FormPayload is everything collected from the form at submit time.
type FormPayload struct {
	Fields []Field
	Files  []FileField
}

// Empty reports whether the payload carries neither fields nor files.
func (p FormPayload) Empty() bool {
	return len(p.Fields) == 0 && len(p.Files) == 0
}
