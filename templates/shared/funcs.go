package shared

import "tarimvitrin.com/app/pkg/view"

// FlashClass maps a flash kind to its CSS classes.
func FlashClass(f *view.Flash) string {
	if f == nil {
		return ""
	}
	switch f.Kind {
	case view.FlashSuccess:
		return "flash flash-success"
	case view.FlashError:
		return "flash flash-error"
	default:
		return "flash flash-info"
	}
}

// FieldError returns the message for a form field, if any.
func FieldError(errs map[string]string, field string) string {
	if errs == nil {
		return ""
	}
	return errs[field]
}
