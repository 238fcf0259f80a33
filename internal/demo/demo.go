// Package demo carries a profile-page template written in the exact shape
// the template compiler emits: static chunks interleaved with per-value
// render calls, wrapped by the size-hint protocol. The CLI renders and
// benchmarks it; integration tests pin its output.
package demo

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/apps4uco/sailfish/render"
)

// Char decodes a one-character YAML string into a rune.
type Char rune

func (c *Char) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return fmt.Errorf("char %q must be exactly one character", s)
	}
	*c = Char(runes[0])
	return nil
}

// Page is the data one profile-page render consumes. Badge is trusted
// markup and is interpolated unescaped; everything else is escaped.
type Page struct {
	Title    string  `yaml:"title"`
	Tagline  string  `yaml:"tagline"`
	Badge    string  `yaml:"badge"`
	HomePath string  `yaml:"home_path"`
	Admin    bool    `yaml:"admin"`
	Grade    Char    `yaml:"grade"`
	Visits   uint64  `yaml:"visits"`
	Rank     int8    `yaml:"rank"`
	Balance  int64   `yaml:"balance"`
	Uptime   float64 `yaml:"uptime"`
	ID       uint32  `yaml:"id"`
}

var pageHint render.SizeHint

// RenderTo writes the page to buf in source order.
func (p *Page) RenderTo(buf *render.Buffer) error {
	buf.Reserve(pageHint.Get())

	buf.WriteString("<!doctype html>\n<html>\n<head><title>")
	if err := render.String(p.Title).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</title></head>\n<body>\n<h1>")
	if err := render.String(p.Title).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</h1>\n<p class=\"tagline\">")
	if err := render.String(p.Tagline).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</p>\n<div class=\"badge\">")
	if err := render.String(p.Badge).Render(buf); err != nil {
		return err
	}
	buf.WriteString("</div>\n<dl>\n<dt>home</dt><dd>")
	if err := render.Path(p.HomePath).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</dd>\n<dt>admin</dt><dd>")
	if err := render.Bool(p.Admin).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</dd>\n<dt>grade</dt><dd>")
	if err := render.Rune(p.Grade).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</dd>\n<dt>visits</dt><dd>")
	if err := render.Uint64(p.Visits).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</dd>\n<dt>rank</dt><dd>")
	if err := render.Int8(p.Rank).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</dd>\n<dt>balance</dt><dd>")
	if err := render.Int64(p.Balance).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</dd>\n<dt>uptime</dt><dd>")
	if err := render.Float64(p.Uptime).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</dd>\n<dt>id</dt><dd>")
	if err := render.Uint32(p.ID).RenderEscaped(buf); err != nil {
		return err
	}
	buf.WriteString("</dd>\n</dl>\n</body>\n</html>\n")

	pageHint.Update(buf.Len())
	return nil
}

// DefaultPage returns the built-in demo data. The values are chosen to
// make the interesting paths visible in output: reserved characters,
// an invalid UTF-8 byte in the path, and extreme integer values.
func DefaultPage() *Page {
	return &Page{
		Title:    "Sailfish R&D <Lab>",
		Tagline:  `renders "fast" & <safe>`,
		Badge:    "<strong>ok</strong>",
		HomePath: "/home/sail\xfffish",
		Admin:    true,
		Grade:    'A',
		Visits:   18446744073709551615,
		Rank:     -128,
		Balance:  -9223372036854775808,
		Uptime:   2.0,
		ID:       0,
	}
}

// LoadPage reads page data from a YAML file. Unknown keys are rejected so
// typos in data files surface as errors instead of silently rendering
// zero values.
func LoadPage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page data: %w", err)
	}

	var page Page
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&page); err != nil {
		return nil, fmt.Errorf("parse page data %s: %w", path, err)
	}

	return &page, nil
}
