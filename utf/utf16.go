package utf

// Replacement is emitted in place of unconvertible input.
const Replacement = 0xfffd

// MaxCodePoint is the highest valid Unicode code point.
const MaxCodePoint = 0x10ffff

const (
	surrHighStart = 0xd800
	surrLowStart  = 0xdc00
	surrEnd       = 0xe000
)

// IsHighSurrogate reports whether the code unit is a UTF-16 high surrogate.
func IsHighSurrogate(ch uint16) bool {
	return ch >= surrHighStart && ch < surrLowStart
}

// IsLowSurrogate reports whether the code unit is a UTF-16 low surrogate.
func IsLowSurrogate(ch uint16) bool {
	return ch >= surrLowStart && ch < surrEnd
}

// Get decodes one code point from the front of src. It returns the code
// point and the number of code units consumed (1 or 2). A lone low
// surrogate, a high surrogate at the end of input, or a high surrogate not
// followed by a low one all return n == 0.
func Get(src []uint16) (ch uint32, n int) {
	if len(src) == 0 {
		return 0, 0
	}
	if IsHighSurrogate(src[0]) {
		if len(src) <= 1 || !IsLowSurrogate(src[1]) {
			return 0, 0
		}
		ch = 0x10000 + (uint32(src[0]&0x3ff) << 10) + uint32(src[1]&0x3ff)
		return ch, 2
	}
	if IsLowSurrogate(src[0]) {
		return 0, 0
	}
	return uint32(src[0]), 1
}

// Put encodes one code point at the front of dst, which must have room for
// RuneLen16(ch) units, and returns the number of units written.
func Put(dst []uint16, ch uint32) int {
	if ch < 0x10000 {
		dst[0] = uint16(ch)
		return 1
	}
	ch -= 0x10000
	dst[0] = uint16(surrHighStart | (ch >> 10))
	dst[1] = uint16(surrLowStart | (ch & 0x3ff))
	return 2
}

// RuneLen16 returns the number of UTF-16 code units needed for ch.
func RuneLen16(ch uint32) int {
	if ch < 0x10000 {
		return 1
	}
	return 2
}
