package response

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrorsFrom converts an ozzo-validation error into envelope field
// errors, one entry per offending field. Nested collection errors keep
// their index path (e.g. "service_offerings.0.service_name").
func FieldErrorsFrom(err error) []FieldError {
	var out []FieldError
	flattenValidationErrors("", err, &out)

	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func flattenValidationErrors(prefix string, err error, out *[]FieldError) {
	errs, ok := err.(validation.Errors)
	if !ok {
		if err != nil {
			*out = append(*out, FieldError{Field: prefix, Message: err.Error()})
		}
		return
	}

	for field, fieldErr := range errs {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		flattenValidationErrors(path, fieldErr, out)
	}
}
