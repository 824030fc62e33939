package submitter

import (
	"time"

	"github.com/CorrelAid/compress_uploader/display"
)

type Outcome int

const (
	Success Outcome = iota
	// ApplicationError means the server answered with a failure status.
	ApplicationError
	// TransportFailure means the exchange could not be completed or parsed.
	TransportFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case ApplicationError:
		return "application_error"
	case TransportFailure:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Result is what a single submission produced. StatusCode is 0 when no
// response was received.
type Result struct {
	Outcome    Outcome
	StatusCode int
	Message    string
	File       string
	Error      string
	Err        error
	Duration   time.Duration
}

// OK reports whether the server accepted the submission.
func (r Result) OK() bool {
	return r.Outcome == Success
}

// Elements is the region content for r.
func (r Result) Elements() []display.Element {
	if r.Outcome != Success {
		return []display.Element{{Kind: display.Paragraph, Text: r.Error, Error: true}}
	}

	elems := []display.Element{{Kind: display.Paragraph, Text: r.Message}}
	if r.File != "" {
		elems = append(elems, display.Element{
			Kind:     display.Link,
			Text:     display.DownloadLabel,
			Href:     r.File,
			Download: true,
		})
	}
	return elems
}

func transportResult(err *TransportError) Result {
	return Result{
		Outcome: TransportFailure,
		Error:   "Error: " + err.Error(),
		Err:     err,
	}
}
