package render

// Entity forms of the four reserved characters. Exactly these four are ever
// rewritten; every other byte, including multi-byte UTF-8 sequences, passes
// through untouched and in order.
const (
	entQuot = "&quot;"
	entAmp  = "&amp;"
	entLt   = "&lt;"
	entGt   = "&gt;"
)

// EscapeString appends s to b with the four reserved HTML metacharacters
// replaced by their named entities. Clean runs between metacharacters are
// copied in bulk. The reserved characters are all ASCII, so scanning bytes
// is exact on UTF-8 input.
func EscapeString(b *Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		var ent string
		switch s[i] {
		case '"':
			ent = entQuot
		case '&':
			ent = entAmp
		case '<':
			ent = entLt
		case '>':
			ent = entGt
		default:
			continue
		}
		b.buf = append(b.buf, s[start:i]...)
		b.buf = append(b.buf, ent...)
		start = i + 1
	}
	b.buf = append(b.buf, s[start:]...)
}

// escapeBytes is EscapeString for raw buffer contents. The default escaped
// path feeds a scratch buffer through it without converting to string.
func escapeBytes(b *Buffer, p []byte) {
	start := 0
	for i := 0; i < len(p); i++ {
		var ent string
		switch p[i] {
		case '"':
			ent = entQuot
		case '&':
			ent = entAmp
		case '<':
			ent = entLt
		case '>':
			ent = entGt
		default:
			continue
		}
		b.buf = append(b.buf, p[start:i]...)
		b.buf = append(b.buf, ent...)
		start = i + 1
	}
	b.buf = append(b.buf, p[start:]...)
}
