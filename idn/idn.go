package idn

import (
	"github.com/unitext/nls-engine/norm"
	"github.com/unitext/nls-engine/status"
	"github.com/unitext/nls-engine/utf"
)

// Flags accepted by the conversion functions.
const (
	// AllowUnassigned permits code points that are unassigned in the
	// normalization table instead of rejecting the label.
	AllowUnassigned = 0x1
	// UseSTD3ASCIIRules restricts ASCII labels to letters, digits and
	// interior hyphens.
	UseSTD3ASCIIRules = 0x2
)

// Bootstring parameters from RFC 3492.
const (
	punyBase     = 36
	punyTMin     = 1
	punyTMax     = 26
	punySkew     = 38
	punyDamp     = 700
	punyInitBias = 72
	punyInitN    = 0x80
)

const (
	maxNorm  = 256 // UTF-16 units per nameprepped or encoded string
	maxLabel = 64  // code points per decoded label
)

func validFlags(flags uint32) error {
	if flags&^(AllowUnassigned|UseSTD3ASCIIRules) != 0 {
		return status.InvalidParameter(status.OpIdn, "unknown flags %#x", flags)
	}
	return nil
}

// checkInvalidChars rejects code points that Nameprep forbids in a label:
// joiners without a preceding virama, forbidden and invalid table entries,
// and unassigned characters unless AllowUnassigned is set. Under STD3 rules
// it also rejects the comparison operators that IDNA maps specially and
// labels with an edge hyphen.
func checkInvalidChars(f *norm.Form, flags uint32, buffer []uint32) bool {
	for i, ch := range buffer {
		switch ch {
		case 0x200c, 0x200d: // zero-width (non-)joiner needs a virama before it
			if i == 0 || f.CombiningClass(buffer[i-1]) != 9 {
				return true
			}
		case 0x2260, 0x226e, 0x226f:
			if flags&UseSTD3ASCIIRules != 0 {
				return true
			}
		}
		switch {
		case f.IsForbidden(ch):
			return true
		case f.IsInvalidChar(ch):
			return true
		case f.IsUnassigned(ch):
			if flags&AllowUnassigned == 0 {
				return true
			}
		}
	}
	if flags&UseSTD3ASCIIRules != 0 && len(buffer) > 0 &&
		(buffer[0] == '-' || buffer[len(buffer)-1] == '-') {
		return true
	}
	return false
}

func isASCIIAlnum(ch uint32) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

// nameprep normalizes src into buf using the IDNA form and validates each
// dot-separated label. It returns the number of units written to buf.
func nameprep(f *norm.Form, flags uint32, buf, src []uint16) (int, error) {
	if err := validFlags(flags); err != nil {
		return 0, err
	}
	if len(src) == 0 {
		return 0, status.InvalidIdn(status.OpIdn, "empty input")
	}

	// Fast path: printable ASCII needs no normalization, only the label
	// length checks below.
	ascii := 0
	for ascii < len(src) && src[ascii] >= 0x20 && src[ascii] < 0x7f {
		ascii++
	}
	buflen := 0
	if ascii == len(src) || (ascii == len(src)-1 && src[ascii] == 0) {
		if len(src) > len(buf) {
			return 0, status.InvalidIdn(status.OpIdn, "input exceeds %d units", len(buf))
		}
		copy(buf, src)
		buflen = len(src)
	} else {
		n, err := norm.Normalize(f, buf, src)
		if err != nil {
			if status.IsNoTranslation(err) {
				return 0, status.InvalidIdn(status.OpIdn, "not normalizable")
			}
			return 0, err
		}
		buflen = n
	}

	i, start := 0, 0
	for i < buflen {
		ch, n := utf.Get(buf[i:buflen])
		if n == 0 || ch == 0 {
			break
		}
		if ch == '.' {
			if start == i {
				return 0, status.InvalidIdn(status.OpIdn, "empty label")
			}
			if i-start > 63 {
				return 0, status.InvalidIdn(status.OpIdn, "label too long")
			}
			if flags&UseSTD3ASCIIRules != 0 && (buf[start] == '-' || buf[i-1] == '-') {
				return 0, status.InvalidIdn(status.OpIdn, "edge hyphen")
			}
			start = i + 1
			i++
			continue
		}
		if flags&UseSTD3ASCIIRules != 0 {
			if !isASCIIAlnum(ch) && ch != '-' {
				return 0, status.InvalidIdn(status.OpIdn, "non-STD3 character %#x", ch)
			}
		} else if flags&AllowUnassigned == 0 && f.IsUnassigned(ch) {
			return 0, status.InvalidIdn(status.OpIdn, "unassigned character %#x", ch)
		}
		i += n
	}
	if i == 0 || i-start > 63 {
		return 0, status.InvalidIdn(status.OpIdn, "label too long")
	}
	if flags&UseSTD3ASCIIRules != 0 && start < i && (buf[start] == '-' || buf[i-1] == '-') {
		return 0, status.InvalidIdn(status.OpIdn, "edge hyphen")
	}
	return buflen, nil
}

// ToNameprepUnicode normalizes and validates an IDN per the Nameprep
// profile. With a nil dst it reports the required length.
func ToNameprepUnicode(s norm.Supplier, flags uint32, dst, src []uint16) (int, error) {
	f, err := norm.Load(s, norm.IDNA)
	if err != nil {
		return 0, err
	}
	var buf [maxNorm]uint16
	n, err := nameprep(f, flags, buf[:], src)
	if err != nil {
		return 0, err
	}
	if dst == nil {
		return n, nil
	}
	if n > len(dst) {
		return n, status.BufferTooSmall(status.OpIdn, n)
	}
	copy(dst, buf[:n])
	return n, nil
}

func punyDigit(d int) uint16 {
	if d <= 25 {
		return uint16('a' + d)
	}
	return uint16('0' + d - 26)
}

// ToASCII converts an IDN to its Punycode ACE form, label by label.
// Pure-ASCII labels pass through unchanged; labels that already look
// ACE-encoded (a hyphen pair at positions 2-3) are rejected.
func ToASCII(s norm.Supplier, flags uint32, dst, src []uint16) (int, error) {
	f, err := norm.Load(s, norm.IDNA)
	if err != nil {
		return 0, err
	}
	var normstr [maxNorm]uint16
	normlen, err := nameprep(f, flags, normstr[:], src)
	if err != nil {
		return 0, err
	}

	var res [maxNorm]uint16
	var buffer [maxLabel]uint32
	out := 0
	for start := 0; start < normlen; {
		n := punyInitN
		bias := punyInitBias
		delta := 0
		basic := 0
		buflen := 0

		i := start
		for i < normlen {
			ch, l := utf.Get(normstr[i:normlen])
			if l == 0 || ch == 0 || ch == '.' {
				break
			}
			if ch < 0x80 {
				basic++
			}
			if buflen >= len(buffer) {
				return 0, status.InvalidIdn(status.OpIdn, "label too long")
			}
			buffer[buflen] = ch
			buflen++
			i += l
		}
		end := i

		if basic == end-start {
			// All-ASCII label: copy it with its separator.
			cnt := end - start
			if end < normlen {
				cnt++
			}
			if out+cnt > len(res) {
				return 0, status.InvalidIdn(status.OpIdn, "result too long")
			}
			copy(res[out:], normstr[start:start+cnt])
			out += cnt
			start = end + 1
			continue
		}

		if buflen >= 4 && buffer[2] == '-' && buffer[3] == '-' {
			return 0, status.InvalidIdn(status.OpIdn, "hyphen pair in label")
		}
		if checkInvalidChars(f, flags, buffer[:buflen]) {
			return 0, status.InvalidIdn(status.OpIdn, "invalid character in label")
		}

		if out+5+basic > len(res) {
			return 0, status.InvalidIdn(status.OpIdn, "result too long")
		}
		labelStart := out
		res[out] = 'x'
		res[out+1] = 'n'
		res[out+2] = '-'
		res[out+3] = '-'
		out += 4
		if basic > 0 {
			for j := start; j < end; j++ {
				if normstr[j] < 0x80 {
					res[out] = normstr[j]
					out++
				}
			}
			res[out] = '-'
			out++
		}

		for h := basic; h < buflen; {
			m := 0x10ffff
			for _, c := range buffer[:buflen] {
				if int(c) >= n && m > int(c) {
					m = int(c)
				}
			}
			delta += (m - n) * (h + 1)
			n = m
			for _, c := range buffer[:buflen] {
				if int(c) < n {
					delta++
					continue
				}
				if int(c) != n {
					continue
				}
				q := delta
				for k := punyBase; ; k += punyBase {
					t := k - bias
					if k <= bias {
						t = punyTMin
					} else if k >= bias+punyTMax {
						t = punyTMax
					}
					if out+1 > len(res) {
						return 0, status.InvalidIdn(status.OpIdn, "result too long")
					}
					if q < t {
						res[out] = punyDigit(q)
						out++
						break
					}
					res[out] = punyDigit(t + (q-t)%(punyBase-t))
					out++
					q = (q - t) / (punyBase - t)
				}
				if h == basic {
					delta /= punyDamp
				} else {
					delta /= 2
				}
				delta += delta / (h + 1)
				k := 0
				for ; delta > ((punyBase-punyTMin)*punyTMax)/2; k += punyBase {
					delta /= punyBase - punyTMin
				}
				bias = k + ((punyBase-punyTMin+1)*delta)/(delta+punySkew)
				delta = 0
				h++
			}
			delta++
			n++
		}

		if out-labelStart > 63 {
			return 0, status.InvalidIdn(status.OpIdn, "encoded label too long")
		}
		if end < normlen {
			if out+1 > len(res) {
				return 0, status.InvalidIdn(status.OpIdn, "result too long")
			}
			res[out] = normstr[end]
			out++
		}
		start = end + 1
	}

	if dst == nil {
		return out, nil
	}
	if out > len(dst) {
		return out, status.BufferTooSmall(status.OpIdn, out)
	}
	copy(dst, res[:out])
	return out, nil
}

// ToUnicode decodes the Punycode ACE form of an IDN back to Unicode.
// The input must be ASCII; labels without the ACE prefix pass through
// unchanged.
func ToUnicode(s norm.Supplier, flags uint32, dst, src []uint16) (int, error) {
	if err := validFlags(flags); err != nil {
		return 0, err
	}
	f, err := norm.Load(s, norm.IDNA)
	if err != nil {
		return 0, err
	}
	if len(src) == 0 {
		return 0, status.InvalidIdn(status.OpIdn, "empty input")
	}

	var res [maxNorm]uint16
	var buffer [maxLabel]uint32
	out := 0
	for start := 0; start < len(src); {
		// Scan the label, remembering the position of the last hyphen.
		delim := 0
		var ch uint16
		i := start
		for ; i < len(src); i++ {
			ch = src[i]
			if ch > 0x7f || (i != len(src)-1 && ch == 0) {
				return 0, status.InvalidIdn(status.OpIdn, "non-ASCII input")
			}
			if ch == 0 || ch == '.' {
				break
			}
			if ch == '-' {
				delim = i
			}
			if flags&UseSTD3ASCIIRules != 0 && !isASCIIAlnum(uint32(ch)) && ch != '-' {
				return 0, status.InvalidIdn(status.OpIdn, "non-STD3 character %#x", ch)
			}
		}
		end := i

		// Only a trailing label may be empty.
		if start == end && ch != 0 {
			return 0, status.InvalidIdn(status.OpIdn, "empty label")
		}

		ace := end-start >= 4 &&
			(src[start] == 'x' || src[start] == 'X') &&
			(src[start+1] == 'n' || src[start+1] == 'N') &&
			src[start+2] == '-' && src[start+3] == '-'
		if !ace {
			if end-start > 63 {
				return 0, status.InvalidIdn(status.OpIdn, "label too long")
			}
			if flags&UseSTD3ASCIIRules != 0 && start < end &&
				(src[start] == '-' || src[end-1] == '-') {
				return 0, status.InvalidIdn(status.OpIdn, "edge hyphen")
			}
			cnt := end - start
			if end < len(src) {
				cnt++
			}
			if out+cnt > len(res) {
				return 0, status.InvalidIdn(status.OpIdn, "result too long")
			}
			copy(res[out:], src[start:start+cnt])
			out += cnt
			start = end + 1
			continue
		}

		// The basic part runs from after the prefix to the last hyphen; a
		// label of "xn--" followed directly by digits has no basic part.
		if delim == start+3 {
			delim++
		}
		buflen := 0
		i = start + 4
		for ; i < delim && buflen < len(buffer); i++ {
			buffer[buflen] = uint32(src[i])
			buflen++
		}
		if buflen > 0 {
			i++
		}

		n := punyInitN
		bias := punyInitBias
		pos := 0
		for i < end {
			old := pos
			w := 1
			for k := punyBase; ; k += punyBase {
				if i >= end {
					return 0, status.InvalidIdn(status.OpIdn, "truncated label")
				}
				ch := src[i]
				i++
				var digit int
				switch {
				case ch >= 'a' && ch <= 'z':
					digit = int(ch - 'a')
				case ch >= 'A' && ch <= 'Z':
					digit = int(ch - 'A')
				case ch >= '0' && ch <= '9':
					digit = int(ch-'0') + 26
				default:
					return 0, status.InvalidIdn(status.OpIdn, "bad digit %#x", ch)
				}
				pos += digit * w
				t := k - bias
				if k <= bias {
					t = punyTMin
				} else if k >= bias+punyTMax {
					t = punyTMax
				}
				if digit < t {
					break
				}
				w *= punyBase - t
			}
			delta := pos - old
			if old == 0 {
				delta /= punyDamp
			} else {
				delta /= 2
			}
			delta += delta / (buflen + 1)
			k := 0
			for ; delta > ((punyBase-punyTMin)*punyTMax)/2; k += punyBase {
				delta /= punyBase - punyTMin
			}
			bias = k + ((punyBase-punyTMin+1)*delta)/(delta+punySkew)

			n += pos / (buflen + 1)
			pos %= buflen + 1
			if buflen >= len(buffer)-1 {
				return 0, status.InvalidIdn(status.OpIdn, "label too long")
			}
			copy(buffer[pos+1:buflen+1], buffer[pos:buflen])
			buffer[pos] = uint32(n)
			buflen++
			pos++
		}

		if checkInvalidChars(f, flags, buffer[:buflen]) {
			return 0, status.InvalidIdn(status.OpIdn, "invalid character in label")
		}

		labelStart := out
		for _, c := range buffer[:buflen] {
			l := utf.RuneLen16(c)
			if out+l > len(res) {
				return 0, status.InvalidIdn(status.OpIdn, "result too long")
			}
			utf.Put(res[out:], c)
			out += l
		}
		if out-labelStart > 63 {
			return 0, status.InvalidIdn(status.OpIdn, "decoded label too long")
		}
		if end < len(src) {
			if out+1 > len(res) {
				return 0, status.InvalidIdn(status.OpIdn, "result too long")
			}
			res[out] = src[end]
			out++
		}
		start = end + 1
	}

	if dst == nil {
		return out, nil
	}
	if out > len(dst) {
		return out, status.BufferTooSmall(status.OpIdn, out)
	}
	copy(dst, res[:out])
	return out, nil
}
