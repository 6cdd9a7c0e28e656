package norm

import (
	"github.com/unitext/nls-engine/status"
	"github.com/unitext/nls-engine/utf"
)

// Normalize writes the normalized form of src into dst and returns the
// number of code units produced. A nil dst returns a length estimate from
// the form's length factor; the estimate is not exact, callers regrow and
// retry on the recoverable buffer-too-small status. Malformed UTF-16 and
// always-invalid code points are fatal.
func Normalize(f *Form, dst, src []uint16) (int, error) {
	if dst == nil {
		n := len(src) * f.LenFactor
		if n > 64 {
			n = len(src) + len(src)/8
			if n < 64 {
				n = 64
			}
		}
		return n, nil
	}
	if len(src) == 0 {
		return 0, nil
	}

	if !f.composing {
		return f.decompose(dst, src)
	}

	// Composing forms decompose into scratch first, growing on retry, then
	// compose in place.
	bufLen := 4 * len(src)
	var buf *[]uint16
	var n int
	for {
		buf = getScratch(bufLen)
		var err error
		n, err = f.decompose(*buf, src)
		if err == nil {
			break
		}
		putScratch(buf)
		if !status.IsBufferTooSmall(err) {
			return 0, err
		}
		bufLen = n
	}
	defer putScratch(buf)

	n = f.compose((*buf)[:n])
	copied := copy(dst, (*buf)[:n])
	if copied < n {
		return copied, status.BufferTooSmall(status.OpNormalize, n)
	}
	return n, nil
}

// decompose fully decomposes src into dst with canonical reordering. When
// dst is too short it keeps walking to compute the total requirement and
// reports it through the buffer-too-small status.
func (f *Form) decompose(dst, src []uint16) (int, error) {
	pos := 0
	for i := 0; i < len(src); {
		ch, n := utf.Get(src[i:])
		if n == 0 {
			return pos, status.NoTranslation(status.OpNormalize)
		}
		i += n

		switch {
		case isHangulSyllable(ch):
			pos += decomposeHangul(ch, dst, pos)
		case isJamo(ch):
			if pos < len(dst) {
				dst[pos] = uint16(ch)
			}
			pos++
		default:
			if f.charProps(ch) == propInvalid {
				return pos, status.NoTranslation(status.OpNormalize)
			}
			pos += f.expand(ch, dst, pos)
		}
	}
	if pos > len(dst) {
		return pos, status.BufferTooSmall(status.OpNormalize, pos)
	}
	f.reorder(dst[:pos])
	return pos, nil
}

// decomposeHangul splits a syllable into its jamo by index arithmetic.
func decomposeHangul(ch uint32, dst []uint16, pos int) int {
	s := ch - hangulSBase
	units := 2
	if s%hangulTCount != 0 {
		units = 3
	}
	if pos+units <= len(dst) {
		dst[pos] = uint16(hangulLBase + s/hangulNCount)
		dst[pos+1] = uint16(hangulVBase + s%hangulNCount/hangulTCount)
		if units == 3 {
			dst[pos+2] = uint16(hangulTBase + s%hangulTCount)
		}
	}
	return units
}

// expand recursively applies the decomposition map, emitting ch itself
// when no mapping exists.
func (f *Form) expand(ch uint32, dst []uint16, pos int) int {
	if seq, ok := f.lookupDecomp(ch); ok {
		n := 0
		for _, cp := range seq {
			n += f.expand(cp, dst, pos+n)
		}
		return n
	}
	units := utf.RuneLen16(ch)
	if pos+units <= len(dst) {
		utf.Put(dst[pos:], ch)
	}
	return units
}

// reorder sorts runs of combining marks into canonical class order.
// Marks are single code units; surrogate halves always carry class zero,
// so a swap never splits a pair.
func (f *Form) reorder(buf []uint16) {
	for i := 1; i < len(buf); i++ {
		cc := f.combiningClass(uint32(buf[i]))
		if cc == 0 || utf.IsHighSurrogate(buf[i]) || utf.IsLowSurrogate(buf[i]) {
			continue
		}
		for j := i; j > 0; j-- {
			prev := f.combiningClass(uint32(buf[j-1]))
			if prev == 0 || prev <= cc {
				break
			}
			buf[j-1], buf[j] = buf[j], buf[j-1]
		}
	}
}

// compose re-combines a fully decomposed buffer in place and returns the
// new length. A mark combines with the last starter only when no
// intervening mark of equal or higher class blocks it; Hangul syllables
// recombine arithmetically.
func (f *Form) compose(buf []uint16) int {
	length := len(buf)
	lastStarter := length // none seen yet
	var startCh uint32
	var prevClass uint8

	for i := 0; i < length; {
		ch, n := utf.Get(buf[i:length])
		if n == 0 {
			// lone surrogate, cannot take part in any pair
			i++
			lastStarter = length
			prevClass = 0
			continue
		}
		cc := f.combiningClass(ch)

		var comp uint32
		if lastStarter != length && !(prevClass != 0 && prevClass >= cc) {
			if comp = f.composePair(startCh, ch); comp == 0 {
				comp = composeHangul(startCh, ch)
			}
		}
		if comp == 0 {
			if cc == 0 {
				lastStarter = i
				startCh = ch
			}
			prevClass = cc
			i += n
			continue
		}

		// Drop ch, rewrite the starter, shift as needed.
		copy(buf[i:], buf[i+n:length])
		length -= n
		compLen := utf.RuneLen16(comp)
		startLen := utf.RuneLen16(startCh)
		if compLen != startLen {
			// A composition is never longer than its starter, so this is
			// always a left shift.
			copy(buf[lastStarter+compLen:], buf[lastStarter+startLen:length])
			length += compLen - startLen
			i += compLen - startLen
		}
		utf.Put(buf[lastStarter:], comp)
		startCh = comp
	}
	return length
}

// Result is the quick-check classification.
type Result int

const (
	No Result = iota
	Yes
	Maybe
)

// QuickCheck classifies src against the form using per-code-point
// properties only, without normalizing. Maybe means the properties cannot
// decide and a full normalize-and-compare is needed.
func (f *Form) QuickCheck(src []uint16) (Result, error) {
	result := Yes
	var lastClass uint8

	for i := 0; i < len(src); {
		ch, n := utf.Get(src[i:])
		if n == 0 {
			return No, status.NoTranslation(status.OpNormalize)
		}
		i += n

		if isHangulSyllable(ch) {
			if !f.composing {
				return No, nil
			}
			lastClass = 0
			continue
		}
		if isJamo(ch) {
			if f.composing &&
				((ch >= hangulVBase && ch < hangulVBase+hangulVCount) ||
					(ch > hangulTBase && ch < hangulTBase+hangulTCount)) {
				result = Maybe // may recombine with what precedes
			}
			lastClass = 0
			continue
		}

		p := f.charProps(ch)
		switch {
		case p == propInvalid:
			if ch == 0 && i == len(src) {
				continue // final terminator is tolerated
			}
			return No, status.NoTranslation(status.OpNormalize)
		case p == propUnassigned, p == 0:
			lastClass = 0
		case p == propQCNo:
			return No, nil
		default:
			cc := f.combiningClass(ch)
			if cc != 0 && lastClass > cc {
				return No, nil // canonical order violated
			}
			lastClass = cc
			if p&propMaybeFlag == propMaybeFlag {
				result = Maybe
			}
		}
	}
	return result, nil
}

// IsNormalized resolves the quick check, falling back to normalizing into
// a four-times buffer and comparing when the properties alone cannot
// decide. Four times the input is a safe upper bound for decomposition
// growth across the supported forms.
func (f *Form) IsNormalized(src []uint16) (bool, error) {
	result, err := f.QuickCheck(src)
	if err != nil {
		return false, err
	}
	if result != Maybe {
		return result == Yes, nil
	}

	buf := getScratch(4 * len(src))
	defer putScratch(buf)
	n, err := Normalize(f, *buf, src)
	if err != nil {
		return false, err
	}
	if n != len(src) {
		return false, nil
	}
	for i := range src {
		if (*buf)[i] != src[i] {
			return false, nil
		}
	}
	return true, nil
}
