package codepage

import (
	"github.com/unitext/nls-engine/casemap"
	"github.com/unitext/nls-engine/status"
	"github.com/unitext/nls-engine/utf"
)

// ToUnicode converts narrow bytes into UTF-16 code units. With a nil dst it
// runs in size-only mode and returns the exact number of units a writing
// call would produce. A lead byte ending the input falls back to its
// single-byte mapping rather than being dropped. Running out of destination
// space returns the recoverable buffer-too-small status with the number of
// units written.
func (t *Table) ToUnicode(dst []uint16, src []byte) (int, error) {
	if t.CodePage == UTF8 {
		return utf.UTF8ToUTF16(dst, src)
	}

	if t.dbcsOffsets == nil {
		if dst == nil {
			return len(src), nil
		}
		n := len(src)
		var ret error
		if n > len(dst) {
			n = len(dst)
			ret = status.BufferTooSmall(status.OpConvert, len(src))
		}
		for i := 0; i < n; i++ {
			dst[i] = t.narrowToWide[src[i]]
		}
		return n, ret
	}

	if dst == nil {
		n := 0
		for i := 0; i < len(src); n++ {
			if t.dbcsOffsets[src[i]] != 0 && i+1 < len(src) {
				i += 2
			} else {
				i++
			}
		}
		return n, nil
	}

	n := 0
	i := 0
	for i < len(src) && n < len(dst) {
		b := src[i]
		if off := t.dbcsOffsets[b]; off != 0 && i+1 < len(src) {
			dst[n] = t.dbcsOffsets[int(off)+int(src[i+1])]
			i += 2
		} else {
			dst[n] = t.narrowToWide[b]
			i++
		}
		n++
	}
	if i < len(src) {
		return n, status.BufferTooSmall(status.OpConvert, 0)
	}
	return n, nil
}

// DecodeChar converts the single character at the start of src and reports
// how many bytes it consumed. A lead byte at the very end of src decodes
// its double-byte row against a zero trail byte.
func (t *Table) DecodeChar(src []byte) (ch uint16, size int) {
	if len(src) == 0 {
		return 0, 0
	}
	b := src[0]
	if t.dbcsOffsets != nil {
		if off := t.dbcsOffsets[b]; off != 0 {
			var trail byte
			size = 1
			if len(src) > 1 {
				trail = src[1]
				size = 2
			}
			return t.dbcsOffsets[int(off)+int(trail)], size
		}
	}
	if t.narrowToWide == nil {
		return uint16(b), 1
	}
	return t.narrowToWide[b], 1
}

// ToUnicodeSize returns the exact number of code units ToUnicode would
// produce for src.
func (t *Table) ToUnicodeSize(src []byte) (int, error) {
	return t.ToUnicode(nil, src)
}

// FromUnicodeSize returns the exact number of bytes FromUnicode would
// produce for src.
func (t *Table) FromUnicodeSize(src []uint16) (int, error) {
	return t.FromUnicode(nil, src)
}

// FromUnicode converts UTF-16 code units into narrow bytes, with the same
// nil-dst size-only mode as ToUnicode. A two-byte sequence that does not
// fit in the remaining destination space is not started: conversion stops
// before consuming that code unit and reports buffer-too-small. When every
// unit was consumed but at least one was substituted with the default
// character, the advisory some-not-mapped status is returned alongside the
// written length.
func (t *Table) FromUnicode(dst []byte, src []uint16) (int, error) {
	return t.fromUnicode(dst, src, nil)
}

// FromUnicodeUpcase is FromUnicode with the upper-case mapping applied to
// each code unit before encoding.
func (t *Table) FromUnicodeUpcase(dst []byte, src []uint16, upper casemap.Table) (int, error) {
	return t.fromUnicode(dst, src, upper)
}

func (t *Table) fromUnicode(dst []byte, src []uint16, upper casemap.Table) (int, error) {
	if t.CodePage == UTF8 {
		if upper == nil {
			return utf.UTF16ToUTF8(dst, src)
		}
		mapped := make([]uint16, len(src))
		for i, ch := range src {
			mapped[i] = upper.Map(ch)
		}
		return utf.UTF16ToUTF8(dst, mapped)
	}

	var ret error

	if dst == nil {
		n := 0
		for _, ch := range src {
			if upper != nil {
				ch = upper.Map(ch)
			}
			res := t.wideChar(ch)
			if res&0xff00 != 0 {
				n += 2
			} else {
				n++
			}
			if res == t.DefaultChar && ch != t.defaultWide {
				ret = status.SomeNotMapped(status.OpConvert)
			}
		}
		return n, ret
	}

	n := 0
	i := 0
	for ; i < len(src); i++ {
		ch := src[i]
		if upper != nil {
			ch = upper.Map(ch)
		}
		res := t.wideChar(ch)
		if res&0xff00 != 0 {
			if n+2 > len(dst) {
				break
			}
			dst[n] = byte(res >> 8)
			dst[n+1] = byte(res)
			n += 2
		} else {
			if n+1 > len(dst) {
				break
			}
			dst[n] = byte(res)
			n++
		}
		if res == t.DefaultChar && ch != t.defaultWide {
			ret = status.SomeNotMapped(status.OpConvert)
		}
	}
	if i < len(src) {
		ret = status.BufferTooSmall(status.OpConvert, 0)
	}
	return n, ret
}
