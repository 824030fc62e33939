package submitter

import "sync/atomic"

// SubmitEvent stands in for the user's submit action. Submit marks it as
// handled so the caller knows not to fall back to a native form post.
type SubmitEvent struct {
	prevented atomic.Bool
}

func NewSubmitEvent() *SubmitEvent {
	return &SubmitEvent{}
}

func (e *SubmitEvent) PreventDefault() {
	e.prevented.Store(true)
}

func (e *SubmitEvent) DefaultPrevented() bool {
	return e.prevented.Load()
}
