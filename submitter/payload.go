package submitter

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/CorrelAid/compress_uploader/models"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodePayload writes the payload as multipart/form-data and returns the
// body together with its Content-Type header.
func encodePayload(p models.FormPayload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, f := range p.Fields {
		if err := writer.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %q: %w", f.Name, err)
		}
	}

	for _, f := range p.Files {
		if err := writeFile(writer, f); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

func writeFile(writer *multipart.Writer, f models.FileField) error {
	if f.Open == nil {
		return fmt.Errorf("file field %q has no content", f.FieldName)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.FileName, err)
	}
	defer src.Close()

	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(f.FieldName), quoteEscaper.Replace(f.FileName)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create part for %s: %w", f.FileName, err)
	}

	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.FileName, err)
	}

	return nil
}
