package render

import "math/bits"

// Maximum decimal text length per integer width, sign included. Pointer-sized
// types use the 64-bit bound so the same constants hold on every platform.
const (
	maxLenInt8   = 4  // -128
	maxLenInt16  = 6  // -32768
	maxLenInt32  = 11 // -2147483648
	maxLenInt64  = 20 // -9223372036854775808
	maxLenUint8  = 3  // 255
	maxLenUint16 = 5  // 65535
	maxLenUint32 = 10 // 4294967295
	maxLenUint64 = 20 // 18446744073709551615
)

// digitPairs holds the two-digit decimal expansions 00..99 back to back, so
// the formatter emits two digits per division.
const digitPairs = "" +
	"0001020304050607080910111213141516171819" +
	"2021222324252627282930313233343536373839" +
	"4041424344454647484950515253545556575859" +
	"6061626364656667686970717273747576777879" +
	"8081828384858687888990919293949596979899"

var pow10 = [20]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000, 100000000000000000,
	1000000000000000000, 10000000000000000000,
}

// uintLen returns the decimal digit count of v without division: a log10
// estimate from the bit length, corrected by one table compare.
func uintLen(v uint64) int {
	if v == 0 {
		return 1
	}
	n := (bits.Len64(v) * 1233) >> 12
	if v >= pow10[n] {
		n++
	}
	return n
}

// putUint writes the minimal decimal form of v at the start of dst and
// returns the byte count. dst must hold at least uintLen(v) bytes; callers
// size it with the maxLen constants. Digits are written back to front, two
// per step, so the loop divides by 100 instead of 10.
func putUint(dst []byte, v uint64) int {
	n := uintLen(v)
	i := n
	for v >= 100 {
		q := v / 100
		j := (v - q*100) * 2
		i -= 2
		dst[i] = digitPairs[j]
		dst[i+1] = digitPairs[j+1]
		v = q
	}
	if v < 10 {
		i--
		dst[i] = '0' + byte(v)
	} else {
		j := v * 2
		i -= 2
		dst[i] = digitPairs[j]
		dst[i+1] = digitPairs[j+1]
	}
	return n
}

// putInt is putUint with a sign. The minimum value of a signed type has no
// positive counterpart, so the magnitude is recovered by unsigned negation.
func putInt(dst []byte, v int64) int {
	u := uint64(v)
	if v < 0 {
		dst[0] = '-'
		u = -u
		return 1 + putUint(dst[1:], u)
	}
	return putUint(dst, u)
}

// appendInt reserves the width's worst case once, writes into the spare
// window and commits the bytes actually used. No growth checks run inside
// the digit loop and nothing is allocated.
func appendInt(b *Buffer, v int64, maxLen int) {
	b.Reserve(maxLen)
	b.advance(putInt(b.spare(maxLen), v))
}

// appendUint is appendInt for unsigned values.
func appendUint(b *Buffer, v uint64, maxLen int) {
	b.Reserve(maxLen)
	b.advance(putUint(b.spare(maxLen), v))
}
