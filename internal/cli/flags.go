package cli

import (
	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/validate"
)

// flagChecks collects validation errors of command flags.
type flagChecks struct {
	errs []error
}

func (f *flagChecks) enum(name, value string, allowed []interface{}) {
	if value == "" {
		return
	}
	if e := validate.Enum(name, "flag", value, allowed); e != nil {
		f.errs = append(f.errs, e)
	}
}

func (f *flagChecks) minimum(name string, value, min int64) {
	if e := validate.MinimumInt(name, "flag", value, min, false); e != nil {
		f.errs = append(f.errs, e)
	}
}

func (f *flagChecks) err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return openapierrors.CompositeValidationError(f.errs...)
}

func enumValues[T ~string](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
