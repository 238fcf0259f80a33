// Package sailfish executes compiled templates: it owns the buffer
// lifecycle around the render pass that the render package's value core
// writes into.
//
// Generated template code implements Template; callers hand it to
// RenderString and get the finished output back:
//
//	out, err := sailfish.RenderString(&HelloPage{Name: "ferris"})
package sailfish

import (
	"github.com/apps4uco/sailfish/render"
)

// Template is implemented by compiled template code. RenderTo appends the
// template's whole output to buf in source order and reports the first
// rendering failure; bytes written before a failure stay in the buffer.
type Template interface {
	RenderTo(buf *render.Buffer) error
}

// RenderString executes t on a pooled buffer and returns its output. On
// failure the partial output is discarded with the buffer and only the
// error is returned.
func RenderString(t Template) (string, error) {
	buf := render.AcquireBuffer()
	defer render.ReleaseBuffer(buf)
	if err := t.RenderTo(buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
