package sailfish

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apps4uco/sailfish/render"
)

type greetingTemplate struct {
	Name string
}

func (g *greetingTemplate) RenderTo(buf *render.Buffer) error {
	buf.WriteString("<h1>Hello, ")
	if err := render.String(g.Name).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("!</h1>")
	return nil
}

type failingTemplate struct {
	err error
}

func (f *failingTemplate) RenderTo(buf *render.Buffer) error {
	buf.WriteString("partial output")
	return f.err
}

func TestRenderString(t *testing.T) {
	out, err := RenderString(&greetingTemplate{Name: "sail<fish>"})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello, sail&lt;fish&gt;!</h1>", out)
}

func TestRenderStringError(t *testing.T) {
	cause := errors.New("data source gone")

	out, err := RenderString(&failingTemplate{err: cause})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, out)
}

func TestRenderStringReuse(t *testing.T) {
	tmpl := &greetingTemplate{Name: "a & b"}

	first, err := RenderString(tmpl)
	require.NoError(t, err)

	// A second pass on a pooled buffer must not see leftover bytes.
	second, err := RenderString(tmpl)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "<h1>Hello, a &amp; b!</h1>", second)
}
