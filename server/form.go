package server

import (
	"io"
	"mime/multipart"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/CorrelAid/compress_uploader/models"
)

// requestForm exposes the multipart form of an incoming request as a
// submitter.Form. Parsing happens lazily, at submit time.
type requestForm struct {
	c *gin.Context
}

func (f requestForm) Payload() (models.FormPayload, error) {
	form, err := f.c.MultipartForm()
	if err != nil {
		return models.FormPayload{}, err
	}

	var payload models.FormPayload

	for _, name := range sortedKeys(form.Value) {
		for _, v := range form.Value[name] {
			payload.Fields = append(payload.Fields, models.Field{Name: name, Value: v})
		}
	}

	for _, name := range sortedKeys(form.File) {
		for _, fh := range form.File[name] {
			payload.Files = append(payload.Files, fileField(name, fh))
		}
	}

	return payload, nil
}

func fileField(name string, fh *multipart.FileHeader) models.FileField {
	return models.FileField{
		FieldName:   name,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
