package validators

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// TagName is the struct tag the validators read.
const TagName = "rule"

var (
	inst *validator.Validate
	once sync.Once
)

// Engine returns the shared validator.
func Engine() *validator.Validate {
	once.Do(func() {
		inst = validator.New(validator.WithRequiredStructEnabled())
		inst.SetTagName(TagName)
	})

	return inst
}

// ValidateStruct validates s against its `rule` tags.
func ValidateStruct(s any) error {
	return Engine().Struct(s)
}
