// Package render is the value-to-text core executed by compiled templates:
// it turns strings, runes, paths, booleans, integers and floats into their
// textual form, appended straight into a shared growable Buffer, either raw
// or with the fixed four-character HTML escaping policy applied.
//
// This is the hot inner loop of a render pass, one call per interpolated
// expression, so every built-in path is allocation-free. Integers format
// through a reserved capacity window with a two-digits-per-division table,
// floats format in place via the stdlib shortest round-trip algorithm, and
// escaping copies clean runs in bulk.
//
// Generated code wraps each expression in the concrete renderable type and
// calls Render or RenderEscaped depending on the interpolation form:
//
//	buf.WriteString("<h1>")
//	render.String(title).RenderEscaped(buf)
//	buf.WriteString("</h1><p>visits: ")
//	render.Int64(visits).Render(buf)
//	buf.WriteString("</p>")
package render
