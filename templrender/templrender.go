// Package templrender bridges a-h/templ components into the sailfish render
// pass, so compiled templates can interpolate whole components next to
// plain values.
package templrender

import (
	"context"

	"github.com/a-h/templ"

	"github.com/apps4uco/sailfish/render"
)

// Component adapts a templ.Component into a render.Renderer. Component
// rendering is I/O-shaped and can fail, which makes this the canonical
// fallible renderable: failures surface as *render.RenderError wrapping the
// component's own error, with partial output left in the buffer.
type Component struct {
	ctx context.Context
	c   templ.Component
}

// New wraps c for rendering under ctx. The context is captured because the
// render pass itself is synchronous and context-free; a nil ctx falls back
// to context.Background.
func New(ctx context.Context, c templ.Component) Component {
	if ctx == nil {
		ctx = context.Background()
	}
	return Component{ctx: ctx, c: c}
}

// Render writes the component's output straight into b, which satisfies
// io.Writer.
func (c Component) Render(b *render.Buffer) error {
	if err := c.c.Render(c.ctx, b); err != nil {
		return render.NewRenderError("templ component", err)
	}
	return nil
}

// RenderEscaped takes the default scratch-buffer path: components emit
// markup, so escaping cannot be fused with production.
func (c Component) RenderEscaped(b *render.Buffer) error {
	return render.RenderEscapedDefault(b, c)
}
