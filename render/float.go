package render

import (
	"math"
	"strconv"
)

// maxLenFloat covers the longest shortest-form float64
// (-2.2250738585072014e-308, 24 bytes) plus the ".0" suffix.
const maxLenFloat = 32

// appendFloat writes the shortest decimal form of v that parses back to the
// identical value, delegating to strconv's shortest mode. Finite values whose
// shortest form carries neither a decimal point nor an exponent get a ".0"
// suffix so float output is never mistaken for an integer. Non-finite values
// keep strconv's NaN/+Inf/-Inf spelling.
func appendFloat(b *Buffer, v float64, bitSize int) {
	b.Reserve(maxLenFloat)
	dst := b.spare(maxLenFloat)
	out := strconv.AppendFloat(dst[:0], v, 'g', -1, bitSize)
	if !math.IsNaN(v) && !math.IsInf(v, 0) && !hasFloatMarker(out) {
		out = append(out, '.', '0')
	}
	b.advance(len(out))
}

func hasFloatMarker(s []byte) bool {
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}
