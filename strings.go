package nlsengine

import (
	"github.com/unitext/nls-engine/casemap"
	"github.com/unitext/nls-engine/status"
)

// Hash algorithm selectors for HashString.
const (
	HashDefault = 0
	HashX65599  = 1
)

func upcase(ts *TableSet, ch uint16) uint16 {
	if ts != nil {
		return ts.Upper.Map(ch)
	}
	return casemap.ToUpperASCII(ch)
}

// UpcaseChar maps a character to upper case through the active case table,
// or ASCII-only before initialization.
func UpcaseChar(ch uint16) uint16 {
	return upcase(Active(), ch)
}

// DowncaseChar maps a character to lower case. Characters outside the
// Latin-1 range are returned unchanged.
func DowncaseChar(ch uint16) uint16 {
	if ch >= 0x100 {
		return ch
	}
	if ts := Active(); ts != nil {
		return ts.Lower.Map(ch)
	}
	return casemap.ToLowerASCII(ch)
}

// CompareStrings compares two UTF-16 strings ordinally. With ignoreCase
// both sides are folded through the active upper-case table; shared
// prefixes are broken by length. The result is negative, zero or positive.
func CompareStrings(s1, s2 []uint16, ignoreCase bool) int {
	n := len(s1)
	if len(s2) < n {
		n = len(s2)
	}
	if ignoreCase {
		ts := Active()
		for i := 0; i < n; i++ {
			if d := int(upcase(ts, s1[i])) - int(upcase(ts, s2[i])); d != 0 {
				return d
			}
		}
	} else {
		for i := 0; i < n; i++ {
			if d := int(s1[i]) - int(s2[i]); d != 0 {
				return d
			}
		}
	}
	return len(s1) - len(s2)
}

// HasPrefix reports whether s starts with prefix.
func HasPrefix(prefix, s []uint16, ignoreCase bool) bool {
	if len(prefix) > len(s) {
		return false
	}
	if ignoreCase {
		ts := Active()
		for i := range prefix {
			if upcase(ts, prefix[i]) != upcase(ts, s[i]) {
				return false
			}
		}
		return true
	}
	for i := range prefix {
		if prefix[i] != s[i] {
			return false
		}
	}
	return true
}

// HashString hashes a UTF-16 string with the x65599 algorithm, folding
// case through the active table when requested. Only the default and
// x65599 selectors are accepted.
func HashString(s []uint16, ignoreCase bool, alg uint32) (uint32, error) {
	switch alg {
	case HashDefault, HashX65599:
	default:
		return 0, status.InvalidParameter(status.OpCompare, "hash algorithm %d", alg)
	}
	var h uint32
	if !ignoreCase {
		for _, ch := range s {
			h = h*65599 + uint32(ch)
		}
		return h, nil
	}
	ts := Active()
	for _, ch := range s {
		h = h*65599 + uint32(upcase(ts, ch))
	}
	return h, nil
}
