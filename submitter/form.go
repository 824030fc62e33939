package submitter

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/CorrelAid/compress_uploader/models"
)

// DefaultFileField is the form field the compression endpoint reads the upload from.
const DefaultFileField = "file"

// FileForm is a form whose files live on the local disk. The files are
// stat'ed on every Payload call so a missing file surfaces at submit time.
type FileForm struct {
	Fields []models.Field
	Files  []FileRef
}

// FileRef points a form field at a file path.
type FileRef struct {
	Field string
	Path  string
}

func (f *FileForm) Payload() (models.FormPayload, error) {
	payload := models.FormPayload{
		Fields: append([]models.Field(nil), f.Fields...),
		Files:  make([]models.FileField, 0, len(f.Files)),
	}

	for _, ref := range f.Files {
		info, err := os.Stat(ref.Path)
		if err != nil {
			return models.FormPayload{}, err
		}
		if info.IsDir() {
			return models.FormPayload{}, fmt.Errorf("%s is a directory", ref.Path)
		}

		field := ref.Field
		if field == "" {
			field = DefaultFileField
		}

		path := ref.Path
		payload.Files = append(payload.Files, models.FileField{
			FieldName:   field,
			FileName:    filepath.Base(path),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Size:        info.Size(),
			Open: func() (io.ReadCloser, error) {
				return os.Open(path)
			},
		})
	}

	return payload, nil
}

// FormFunc adapts a function to the Form interface.
type FormFunc func() (models.FormPayload, error)

func (fn FormFunc) Payload() (models.FormPayload, error) {
	return fn()
}
