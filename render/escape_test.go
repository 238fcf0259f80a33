package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// entityOracle applies the escaping policy through stdlib string replacement,
// independently of the run-copy implementation under test.
var entityOracle = strings.NewReplacer(
	`"`, "&quot;",
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func TestEscapeString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a&b", "a&amp;b"},
		{"<", "&lt;"},
		{`<a href="x">&</a>`, "&lt;a href=&quot;x&quot;&gt;&amp;&lt;/a&gt;"},
		{"&&&&", "&amp;&amp;&amp;&amp;"},
		{"ergänzen", "ergänzen"},
		{"日本語<タグ>", "日本語&lt;タグ&gt;"},
		{"newline\nand\ttab stay", "newline\nand\ttab stay"},
	}
	for _, tc := range cases {
		b := NewBuffer()
		EscapeString(b, tc.in)
		assert.Equal(t, tc.want, b.String(), "EscapeString(%q)", tc.in)
		assert.Equal(t, entityOracle.Replace(tc.in), b.String(), "oracle disagrees for %q", tc.in)
	}
}

func TestEscapeStringAppends(t *testing.T) {
	b := NewBuffer()
	b.WriteString("before|")
	EscapeString(b, "<x>")
	assert.Equal(t, "before|&lt;x&gt;", b.String(), "escaping must append, not replace")
}

func TestEscapeBytesMatchesEscapeString(t *testing.T) {
	in := `mixed "content" & <multi-byte> ランタイム`
	viaString := NewBuffer()
	EscapeString(viaString, in)

	viaBytes := NewBuffer()
	escapeBytes(viaBytes, []byte(in))

	assert.Equal(t, viaString.String(), viaBytes.String())
}

// TestEscapedOutputIsInert parses escaped output as HTML and checks that no
// markup survives: everything must come back as text nodes spelling the
// original input.
func TestEscapedOutputIsInert(t *testing.T) {
	inputs := []string{
		`<script>alert("pwned")</script>`,
		`<img src=x onerror="alert(1)">`,
		`">injected<b attr="`,
		`&lt;already escaped&gt;`,
		`plain & simple`,
	}
	for _, in := range inputs {
		b := NewBuffer()
		require.NoError(t, String(in).RenderEscaped(b))

		doc, err := html.Parse(strings.NewReader("<html><head></head><body>" + b.String() + "</body></html>"))
		require.NoError(t, err)

		var text strings.Builder
		var extraElements []string
		var walk func(*html.Node)
		walk = func(n *html.Node) {
			switch n.Type {
			case html.ElementNode:
				if n.Data != "html" && n.Data != "head" && n.Data != "body" {
					extraElements = append(extraElements, n.Data)
				}
			case html.TextNode:
				text.WriteString(n.Data)
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(doc)

		assert.Empty(t, extraElements, "escaped %q must not parse into elements", in)
		assert.Equal(t, in, text.String(), "escaped %q must decode back to the input", in)
	}
}
