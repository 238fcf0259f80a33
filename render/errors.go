package render

// RenderError reports a failure while rendering a value into a Buffer. The
// built-in value types never produce one; it exists for renderables backed
// by fallible sources, such as Func callbacks and component adapters. Bytes
// committed to the buffer before the failure remain there.
type RenderError struct {
	Op  string // what was being rendered
	Err error  // underlying cause
}

// NewRenderError wraps err as a rendering failure of op.
func NewRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return "render " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error { return e.Err }
