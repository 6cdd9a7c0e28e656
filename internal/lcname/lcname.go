// Package lcname holds the locale-name comparator shared by the registry
// and the locale table builder, which must sort its name index with the
// exact ordering the registry binary-searches with.
package lcname

// Compare orders two locale names. Comparison is ASCII-case-insensitive
// only and treats '_' and '-' as equivalent. Full Unicode case folding is
// deliberately not used: this comparison runs before any case table may be
// available.
func Compare(n1, n2 []uint16) int {
	for i := 0; ; i++ {
		var ch1, ch2 uint16
		if i < len(n1) {
			ch1 = foldChar(n1[i])
		}
		if i < len(n2) {
			ch2 = foldChar(n2[i])
		}
		if ch1 == 0 || ch1 != ch2 {
			return int(ch1) - int(ch2)
		}
	}
}

// CompareString is Compare with a native-string left operand.
func CompareString(name string, against []uint16) int {
	buf := Encode(name)
	return Compare(buf, against)
}

// Encode converts an ASCII locale name into code units. Locale names are
// ASCII by construction; anything else simply compares unequal.
func Encode(name string) []uint16 {
	units := make([]uint16, 0, len(name))
	for _, r := range name {
		units = append(units, uint16(r))
	}
	return units
}

func foldChar(ch uint16) uint16 {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch == '_' {
		ch = '-'
	}
	return ch
}
