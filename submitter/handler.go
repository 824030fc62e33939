// Package submitter sends a form to the compression endpoint and renders the
// outcome into a display region.
//
// A Handler is built once with its collaborators injected:
//
//	h, err := submitter.New(form, region, http.DefaultClient,
//		submitter.WithEndpoint("http://localhost:8080/compress"))
//	if err != nil {
//		return err
//	}
//	res := h.Submit(ctx, submitter.NewSubmitEvent())
//
// Submit never returns an error. Server-reported failures and transport
// failures both end up as inline text in the region and in the Result.
package submitter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/CorrelAid/compress_uploader/display"
	"github.com/CorrelAid/compress_uploader/models"
)

// DefaultEndpoint is the path the form is posted to.
const DefaultEndpoint = "/compress"

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Form yields the payload of the form at the time of submission.
type Form interface {
	Payload() (models.FormPayload, error)
}

// Region is where outcomes are rendered.
type Region interface {
	Replace(elems ...display.Element)
}

type Handler struct {
	form     Form
	region   Region
	client   Doer
	endpoint string
	logger   zerolog.Logger
	observe  func(Result)
	absLinks bool
}

type Option func(*Handler)

func WithEndpoint(endpoint string) Option {
	return func(h *Handler) {
		h.endpoint = endpoint
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

// WithAbsoluteLinks resolves the returned file locator against the endpoint,
// for pages that are not served from the endpoint's origin.
func WithAbsoluteLinks() Option {
	return func(h *Handler) {
		h.absLinks = true
	}
}

// WithObserver registers fn to be called with every Result after rendering.
func WithObserver(fn func(Result)) Option {
	return func(h *Handler) {
		h.observe = fn
	}
}

// New binds a handler to form and region. A nil client means http.DefaultClient.
func New(form Form, region Region, client Doer, opts ...Option) (*Handler, error) {
	if form == nil {
		return nil, ErrNoForm
	}
	if region == nil {
		return nil, ErrNoRegion
	}
	if client == nil {
		client = http.DefaultClient
	}

	h := &Handler{
		form:     form,
		region:   region,
		client:   client,
		endpoint: DefaultEndpoint,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// Endpoint returns the URL submissions are posted to.
func (h *Handler) Endpoint() string {
	return h.endpoint
}

// Submit handles one submit event: it suppresses the default action, posts the
// form once, renders the outcome and returns it. Overlapping calls are not
// serialised; the region keeps whichever outcome is rendered last.
func (h *Handler) Submit(ctx context.Context, ev *SubmitEvent) Result {
	if ev != nil {
		ev.PreventDefault()
	}

	start := time.Now()
	res := h.exchange(ctx)
	res.Duration = time.Since(start)

	h.region.Replace(res.Elements()...)

	evt := h.logger.Debug()
	if res.Outcome != Success {
		evt = h.logger.Warn()
	}
	evt.Str("endpoint", h.endpoint).
		Str("outcome", res.Outcome.String()).
		Int("status", res.StatusCode).
		Dur("latency", res.Duration).
		Msg("form submitted")

	if h.observe != nil {
		h.observe(res)
	}

	return res
}

func (h *Handler) exchange(ctx context.Context) Result {
	payload, err := h.form.Payload()
	if err != nil {
		return transportResult(transportErr("collect form", err))
	}

	body, contentType, err := encodePayload(payload)
	if err != nil {
		return transportResult(transportErr("encode form", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, body)
	if err != nil {
		return transportResult(transportErr("create request", err))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return transportResult(transportErr("send request", err))
	}
	defer resp.Body.Close()

	// the body is decoded before the status is looked at: a failure status
	// without a JSON body is a transport error, not an application error
	msg, err := decodeResponse(resp.Body)
	if err != nil {
		h.logger.Debug().AnErr("cause", errors.Unwrap(err)).Int("status", resp.StatusCode).Msg("undecodable response")
		res := transportResult(transportErr("read response", err))
		res.StatusCode = resp.StatusCode
		return res
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{
			Outcome:    ApplicationError,
			StatusCode: resp.StatusCode,
			Error:      msg.Error,
		}
	}

	file := msg.File
	if h.absLinks && file != "" {
		if link, err := ResolveLink(h.endpoint, file); err == nil {
			file = link
		}
	}

	return Result{
		Outcome:    Success,
		StatusCode: resp.StatusCode,
		Message:    msg.Message,
		File:       file,
	}
}
