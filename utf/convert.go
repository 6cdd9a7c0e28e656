package utf

import "github.com/unitext/nls-engine/status"

// Number of continuation bytes implied by each lead byte value above 0x7f.
// Leads 0x80-0xc1 and 0xf5-0xff are invalid and marked zero.
var utf8Length = [128]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x80-0x8f
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x90-0x9f
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xa0-0xaf
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xb0-0xbf
	0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xc0-0xcf
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xd0-0xdf
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xe0-0xef
	3, 3, 3, 3, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xf0-0xff
}

var utf8Mask = [4]byte{0x7f, 0x1f, 0x0f, 0x07}

const invalidChar = ^uint32(0)

// decodeUTF8Char decodes the sequence started by lead, with src holding the
// bytes that follow it. It returns the code point (invalidChar for a
// malformed or overlong sequence) and the number of continuation bytes
// consumed. Both conversion passes share it, which is what keeps the
// size-only walk in lockstep with the writing walk.
func decodeUTF8Char(lead byte, src []byte) (uint32, int) {
	n := int(utf8Length[lead-0x80])
	res := uint32(lead & utf8Mask[n])
	if n == 0 {
		return invalidChar, 0
	}
	if n > len(src) {
		// truncated sequence at end of input
		return invalidChar, len(src)
	}
	adv := 0
	for i := 1; i <= n; i++ {
		c := src[i-1] ^ 0x80
		if c >= 0x40 {
			return invalidChar, adv
		}
		res = res<<6 | uint32(c)
		adv++
		switch {
		case n == 1 && res < 0x80:
			return invalidChar, adv // overlong 2-byte form
		case n == 2 && i == 1:
			if res < 0x20 || (res >= surrHighStart>>6 && res < surrEnd>>6) {
				return invalidChar, adv // overlong or encoded surrogate
			}
		case n == 3 && i == 1 && res < 0x10:
			return invalidChar, adv // overlong 4-byte form
		case n == 3 && i == 2 && res >= (MaxCodePoint+1)>>6:
			return invalidChar, adv // above U+10FFFF
		}
	}
	return res, adv
}

// UTF8ToUTF16 converts src into UTF-16 code units. With a nil dst it runs in
// size-only mode and returns the exact number of units a writing call would
// produce. Invalid sequences become U+FFFD and raise the advisory
// some-not-mapped status; running out of destination space returns the
// recoverable buffer-too-small status with the number of units written.
func UTF8ToUTF16(dst []uint16, src []byte) (int, error) {
	var ret error

	if dst == nil {
		n := 0
		for i := 0; i < len(src); n++ {
			ch := src[i]
			i++
			if ch < 0x80 {
				continue
			}
			res, adv := decodeUTF8Char(ch, src[i:])
			i += adv
			if res > MaxCodePoint {
				ret = status.SomeNotMapped(status.OpConvert)
			} else if res > 0xffff {
				n++
			}
		}
		return n, ret
	}

	out := 0
	i := 0
loop:
	for i < len(src) && out < len(dst) {
		ch := src[i]
		i++
		if ch < 0x80 { // fast path for 7-bit ASCII
			dst[out] = uint16(ch)
			out++
			continue
		}
		res, adv := decodeUTF8Char(ch, src[i:])
		i += adv
		switch {
		case res <= 0xffff:
			dst[out] = uint16(res)
			out++
		case res <= MaxCodePoint:
			res -= 0x10000
			dst[out] = uint16(surrHighStart | res>>10)
			out++
			if out == len(dst) {
				break loop
			}
			dst[out] = uint16(surrLowStart | res&0x3ff)
			out++
		default:
			dst[out] = Replacement
			out++
			ret = status.SomeNotMapped(status.OpConvert)
		}
	}
	if i < len(src) {
		ret = status.BufferTooSmall(status.OpConvert, 0)
	}
	return out, ret
}

// UTF16ToUTF8 converts UTF-16 code units into UTF-8 bytes, with the same
// nil-dst size-only mode and status contract as UTF8ToUTF16. Lone surrogates
// become U+FFFD with the advisory status; this codec never fails on them.
func UTF16ToUTF8(dst []byte, src []uint16) (int, error) {
	var ret error

	if dst == nil {
		n := 0
		for i := 0; i < len(src); i++ {
			ch := src[i]
			switch {
			case ch < 0x80:
				n++
			case ch < 0x800:
				n += 2
			default:
				val, adv := Get(src[i:])
				if adv == 0 {
					val = Replacement
					ret = status.SomeNotMapped(status.OpConvert)
				}
				if val < 0x10000 {
					n += 3
				} else {
					n += 4
					i++
				}
			}
		}
		return n, ret
	}

	out := 0
	i := 0
	for ; i < len(src); i++ {
		ch := src[i]
		if ch < 0x80 {
			if out+1 > len(dst) {
				break
			}
			dst[out] = byte(ch)
			out++
			continue
		}
		if ch < 0x800 {
			if out+2 > len(dst) {
				break
			}
			dst[out] = 0xc0 | byte(ch>>6)
			dst[out+1] = 0x80 | byte(ch&0x3f)
			out += 2
			continue
		}
		val, adv := Get(src[i:])
		if adv == 0 {
			val = Replacement
			ret = status.SomeNotMapped(status.OpConvert)
		}
		if val < 0x10000 {
			if out+3 > len(dst) {
				break
			}
			dst[out] = 0xe0 | byte(val>>12)
			dst[out+1] = 0x80 | byte(val>>6&0x3f)
			dst[out+2] = 0x80 | byte(val&0x3f)
			out += 3
		} else {
			if out+4 > len(dst) {
				break
			}
			dst[out] = 0xf0 | byte(val>>18)
			dst[out+1] = 0x80 | byte(val>>12&0x3f)
			dst[out+2] = 0x80 | byte(val>>6&0x3f)
			dst[out+3] = 0x80 | byte(val&0x3f)
			out += 4
			i++
		}
	}
	if i < len(src) {
		ret = status.BufferTooSmall(status.OpConvert, 0)
	}
	return out, ret
}
