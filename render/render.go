package render

import (
	"io"
	"strings"
)

// Renderer is implemented by every value that can write its textual form
// into a Buffer. Compiled template code wraps each interpolated expression
// in the matching concrete type below, so dispatch resolves statically; the
// interface stays open for user-defined renderables.
//
// The correctness law every implementation must keep, override paths
// included: RenderEscaped appends exactly what EscapeString would produce
// from the bytes Render appends for the same value.
type Renderer interface {
	// Render appends the raw textual form of the value. Built-in types
	// always succeed; the error is the extension point for fallible
	// sources.
	Render(b *Buffer) error

	// RenderEscaped appends the textual form with the four reserved HTML
	// metacharacters replaced by their entities.
	RenderEscaped(b *Buffer) error
}

// RenderEscapedDefault renders v into a pooled scratch buffer, then escapes
// the result into b. Types whose raw form cannot be escaped on the fly get
// the correctness law for free at the cost of the extra copy; every built-in
// type overrides it. A failing Render short-circuits: nothing is copied and
// the error propagates unchanged.
func RenderEscapedDefault(b *Buffer, v Renderer) error {
	tmp := AcquireBuffer()
	defer ReleaseBuffer(tmp)
	if err := v.Render(tmp); err != nil {
		return err
	}
	escapeBytes(b, tmp.Bytes())
	return nil
}

// String renders a text span verbatim, escaping on the escaped path.
type String string

func (s String) Render(b *Buffer) error {
	b.WriteString(string(s))
	return nil
}

func (s String) RenderEscaped(b *Buffer) error {
	EscapeString(b, string(s))
	return nil
}

// Rune renders a single character.
type Rune rune

func (r Rune) Render(b *Buffer) error {
	b.WriteRune(rune(r))
	return nil
}

func (r Rune) RenderEscaped(b *Buffer) error {
	switch r {
	case '"':
		b.WriteString(entQuot)
	case '&':
		b.WriteString(entAmp)
	case '<':
		b.WriteString(entLt)
	case '>':
		b.WriteString(entGt)
	default:
		b.WriteRune(rune(r))
	}
	return nil
}

// Path renders a filesystem path as best-effort text: runs of invalid UTF-8
// are replaced with U+FFFD, everything else is kept as is. Valid paths are
// rendered without copying.
type Path string

func (p Path) Render(b *Buffer) error {
	b.WriteString(strings.ToValidUTF8(string(p), "�"))
	return nil
}

func (p Path) RenderEscaped(b *Buffer) error {
	EscapeString(b, strings.ToValidUTF8(string(p), "�"))
	return nil
}

// Bool renders as the literal true or false.
type Bool bool

func (v Bool) Render(b *Buffer) error {
	if v {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
	return nil
}

func (v Bool) RenderEscaped(b *Buffer) error { return v.Render(b) }

// Integer and float renderables. Their textual alphabet holds no reserved
// character, so the escaped path is the raw path. Signed widths funnel
// through one int64 writer and unsigned through one uint64 writer, each
// paired with its width's compile-time maximum length so the buffer is
// reserved exactly once per value.

type Int int

func (v Int) Render(b *Buffer) error {
	appendInt(b, int64(v), maxLenInt64)
	return nil
}

func (v Int) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Int8 int8

func (v Int8) Render(b *Buffer) error {
	appendInt(b, int64(v), maxLenInt8)
	return nil
}

func (v Int8) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Int16 int16

func (v Int16) Render(b *Buffer) error {
	appendInt(b, int64(v), maxLenInt16)
	return nil
}

func (v Int16) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Int32 int32

func (v Int32) Render(b *Buffer) error {
	appendInt(b, int64(v), maxLenInt32)
	return nil
}

func (v Int32) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Int64 int64

func (v Int64) Render(b *Buffer) error {
	appendInt(b, int64(v), maxLenInt64)
	return nil
}

func (v Int64) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Uint uint

func (v Uint) Render(b *Buffer) error {
	appendUint(b, uint64(v), maxLenUint64)
	return nil
}

func (v Uint) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Uint8 uint8

func (v Uint8) Render(b *Buffer) error {
	appendUint(b, uint64(v), maxLenUint8)
	return nil
}

func (v Uint8) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Uint16 uint16

func (v Uint16) Render(b *Buffer) error {
	appendUint(b, uint64(v), maxLenUint16)
	return nil
}

func (v Uint16) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Uint32 uint32

func (v Uint32) Render(b *Buffer) error {
	appendUint(b, uint64(v), maxLenUint32)
	return nil
}

func (v Uint32) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Uint64 uint64

func (v Uint64) Render(b *Buffer) error {
	appendUint(b, uint64(v), maxLenUint64)
	return nil
}

func (v Uint64) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Uintptr uintptr

func (v Uintptr) Render(b *Buffer) error {
	appendUint(b, uint64(v), maxLenUint64)
	return nil
}

func (v Uintptr) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Float32 float32

func (v Float32) Render(b *Buffer) error {
	appendFloat(b, float64(v), 32)
	return nil
}

func (v Float32) RenderEscaped(b *Buffer) error { return v.Render(b) }

type Float64 float64

func (v Float64) Render(b *Buffer) error {
	appendFloat(b, float64(v), 64)
	return nil
}

func (v Float64) RenderEscaped(b *Buffer) error { return v.Render(b) }

// Func adapts a streaming write callback into a renderable. It is the one
// built-in whose Render can fail: the callback's error comes back wrapped
// in *RenderError, with whatever the callback already wrote left in place.
type Func func(w io.Writer) error

func (f Func) Render(b *Buffer) error {
	if err := f(b); err != nil {
		return NewRenderError("func", err)
	}
	return nil
}

func (f Func) RenderEscaped(b *Buffer) error {
	return RenderEscapedDefault(b, f)
}
