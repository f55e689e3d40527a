package render

import "fmt"

// GenerationError wraps any failure raised while resolving or emitting a
// widget. The original cause is preserved for errors.Is/errors.As; a single
// GenerationError aborts the render pass.
type GenerationError struct {
	Widget string
	Field  string
	Err    error
}

func (e *GenerationError) Error() string {
	switch {
	case e.Widget != "" && e.Field != "":
		return fmt.Sprintf("render: generating %s widget for field %q: %v", e.Widget, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("render: generating widget for field %q: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("render: form generation failed: %v", e.Err)
	}
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// WrapGeneration wraps err in a GenerationError unless it already is one.
func WrapGeneration(widget, field string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*GenerationError); ok {
		return err
	}
	return &GenerationError{Widget: widget, Field: field, Err: err}
}
