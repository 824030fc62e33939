package submitter

import (
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/CorrelAid/compress_uploader/models"
)

var (
	errEmptyBody = errors.New("empty response body")
	errNullBody  = errors.New("response body is null")
)

// bodyError keeps the region text short; the decoder's diagnostic stays
// reachable through Unwrap.
type bodyError struct {
	cause error
}

func (e *bodyError) Error() string {
	return "invalid response body"
}

func (e *bodyError) Unwrap() error {
	return e.cause
}

func decodeResponse(r io.Reader) (models.ResponseMessage, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return models.ResponseMessage{}, fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) == 0 {
		return models.ResponseMessage{}, errEmptyBody
	}

	var msg *models.ResponseMessage
	if err := sonic.Unmarshal(body, &msg); err != nil {
		return models.ResponseMessage{}, &bodyError{cause: err}
	}
	if msg == nil {
		return models.ResponseMessage{}, &bodyError{cause: errNullBody}
	}

	return *msg, nil
}
