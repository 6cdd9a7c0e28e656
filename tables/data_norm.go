package tables

// Normalization form ids, matching the ids callers pass to the norm engine.
const (
	formC    = 1
	formD    = 2
	formKC   = 5
	formKD   = 6
	formIdna = 13
)

func knownForm(form uint32) bool {
	switch form {
	case formC, formD, formKC, formKD, formIdna:
		return true
	}
	return false
}

var normLenFactor = map[uint32]uint16{
	formC:    3,
	formD:    3,
	formKC:   6,
	formKD:   6,
	formIdna: 6,
}

// Combining classes for the covered repertoire.
var classRanges = []struct {
	lo, hi rune
	ccc    uint8
}{
	{0x0300, 0x0314, 230},
	{0x0315, 0x0315, 232},
	{0x0316, 0x0319, 220},
	{0x031a, 0x031a, 232},
	{0x031b, 0x031b, 216},
	{0x031c, 0x0320, 220},
	{0x0321, 0x0322, 202},
	{0x0323, 0x0326, 220},
	{0x0327, 0x0328, 202},
	{0x0329, 0x0333, 220},
	{0x0334, 0x0338, 1},
	{0x0339, 0x033c, 220},
	{0x033d, 0x0344, 230},
	{0x0345, 0x0345, 240},
	{0x094d, 0x094d, 9}, // Devanagari virama
	{0x3099, 0x309a, 8}, // kana voicing marks
}

type decompEntry struct {
	cp  rune
	seq []rune
}

// Canonical (form-independent) decompositions. Two-element entries double
// as the composition pair source; one-element entries are singletons and
// never recompose.
var canonicalDecomps = []decompEntry{
	{0x00c0, []rune{0x0041, 0x0300}}, {0x00c1, []rune{0x0041, 0x0301}},
	{0x00c2, []rune{0x0041, 0x0302}}, {0x00c3, []rune{0x0041, 0x0303}},
	{0x00c4, []rune{0x0041, 0x0308}}, {0x00c5, []rune{0x0041, 0x030a}},
	{0x00c7, []rune{0x0043, 0x0327}},
	{0x00c8, []rune{0x0045, 0x0300}}, {0x00c9, []rune{0x0045, 0x0301}},
	{0x00ca, []rune{0x0045, 0x0302}}, {0x00cb, []rune{0x0045, 0x0308}},
	{0x00cc, []rune{0x0049, 0x0300}}, {0x00cd, []rune{0x0049, 0x0301}},
	{0x00ce, []rune{0x0049, 0x0302}}, {0x00cf, []rune{0x0049, 0x0308}},
	{0x00d1, []rune{0x004e, 0x0303}},
	{0x00d2, []rune{0x004f, 0x0300}}, {0x00d3, []rune{0x004f, 0x0301}},
	{0x00d4, []rune{0x004f, 0x0302}}, {0x00d5, []rune{0x004f, 0x0303}},
	{0x00d6, []rune{0x004f, 0x0308}},
	{0x00d9, []rune{0x0055, 0x0300}}, {0x00da, []rune{0x0055, 0x0301}},
	{0x00db, []rune{0x0055, 0x0302}}, {0x00dc, []rune{0x0055, 0x0308}},
	{0x00dd, []rune{0x0059, 0x0301}},
	{0x00e0, []rune{0x0061, 0x0300}}, {0x00e1, []rune{0x0061, 0x0301}},
	{0x00e2, []rune{0x0061, 0x0302}}, {0x00e3, []rune{0x0061, 0x0303}},
	{0x00e4, []rune{0x0061, 0x0308}}, {0x00e5, []rune{0x0061, 0x030a}},
	{0x00e7, []rune{0x0063, 0x0327}},
	{0x00e8, []rune{0x0065, 0x0300}}, {0x00e9, []rune{0x0065, 0x0301}},
	{0x00ea, []rune{0x0065, 0x0302}}, {0x00eb, []rune{0x0065, 0x0308}},
	{0x00ec, []rune{0x0069, 0x0300}}, {0x00ed, []rune{0x0069, 0x0301}},
	{0x00ee, []rune{0x0069, 0x0302}}, {0x00ef, []rune{0x0069, 0x0308}},
	{0x00f1, []rune{0x006e, 0x0303}},
	{0x00f2, []rune{0x006f, 0x0300}}, {0x00f3, []rune{0x006f, 0x0301}},
	{0x00f4, []rune{0x006f, 0x0302}}, {0x00f5, []rune{0x006f, 0x0303}},
	{0x00f6, []rune{0x006f, 0x0308}},
	{0x00f9, []rune{0x0075, 0x0300}}, {0x00fa, []rune{0x0075, 0x0301}},
	{0x00fb, []rune{0x0075, 0x0302}}, {0x00fc, []rune{0x0075, 0x0308}},
	{0x00fd, []rune{0x0079, 0x0301}}, {0x00ff, []rune{0x0079, 0x0308}},
	{0x0100, []rune{0x0041, 0x0304}}, {0x0101, []rune{0x0061, 0x0304}},
	{0x0102, []rune{0x0041, 0x0306}}, {0x0103, []rune{0x0061, 0x0306}},
	{0x0104, []rune{0x0041, 0x0328}}, {0x0105, []rune{0x0061, 0x0328}},
	{0x0106, []rune{0x0043, 0x0301}}, {0x0107, []rune{0x0063, 0x0301}},
	{0x010c, []rune{0x0043, 0x030c}}, {0x010d, []rune{0x0063, 0x030c}},
	{0x010e, []rune{0x0044, 0x030c}}, {0x010f, []rune{0x0064, 0x030c}},
	{0x0112, []rune{0x0045, 0x0304}}, {0x0113, []rune{0x0065, 0x0304}},
	{0x0118, []rune{0x0045, 0x0328}}, {0x0119, []rune{0x0065, 0x0328}},
	{0x011a, []rune{0x0045, 0x030c}}, {0x011b, []rune{0x0065, 0x030c}},
	{0x011e, []rune{0x0047, 0x0306}}, {0x011f, []rune{0x0067, 0x0306}},
	{0x0122, []rune{0x0047, 0x0327}}, {0x0123, []rune{0x0067, 0x0327}},
	{0x012a, []rune{0x0049, 0x0304}}, {0x012b, []rune{0x0069, 0x0304}},
	{0x0130, []rune{0x0049, 0x0307}},
	{0x0139, []rune{0x004c, 0x0301}}, {0x013a, []rune{0x006c, 0x0301}},
	{0x0143, []rune{0x004e, 0x0301}}, {0x0144, []rune{0x006e, 0x0301}},
	{0x0147, []rune{0x004e, 0x030c}}, {0x0148, []rune{0x006e, 0x030c}},
	{0x014c, []rune{0x004f, 0x0304}}, {0x014d, []rune{0x006f, 0x0304}},
	{0x0150, []rune{0x004f, 0x030b}}, {0x0151, []rune{0x006f, 0x030b}},
	{0x0154, []rune{0x0052, 0x0301}}, {0x0155, []rune{0x0072, 0x0301}},
	{0x0158, []rune{0x0052, 0x030c}}, {0x0159, []rune{0x0072, 0x030c}},
	{0x015a, []rune{0x0053, 0x0301}}, {0x015b, []rune{0x0073, 0x0301}},
	{0x015e, []rune{0x0053, 0x0327}}, {0x015f, []rune{0x0073, 0x0327}},
	{0x0160, []rune{0x0053, 0x030c}}, {0x0161, []rune{0x0073, 0x030c}},
	{0x0162, []rune{0x0054, 0x0327}}, {0x0163, []rune{0x0074, 0x0327}},
	{0x016a, []rune{0x0055, 0x0304}}, {0x016b, []rune{0x0075, 0x0304}},
	{0x016e, []rune{0x0055, 0x030a}}, {0x016f, []rune{0x0075, 0x030a}},
	{0x0170, []rune{0x0055, 0x030b}}, {0x0171, []rune{0x0075, 0x030b}},
	{0x0179, []rune{0x005a, 0x0301}}, {0x017a, []rune{0x007a, 0x0301}},
	{0x017b, []rune{0x005a, 0x0307}}, {0x017c, []rune{0x007a, 0x0307}},
	{0x017d, []rune{0x005a, 0x030c}}, {0x017e, []rune{0x007a, 0x030c}},
	{0x0386, []rune{0x0391, 0x0301}}, {0x0388, []rune{0x0395, 0x0301}},
	{0x0389, []rune{0x0397, 0x0301}}, {0x038a, []rune{0x0399, 0x0301}},
	{0x038c, []rune{0x039f, 0x0301}}, {0x038e, []rune{0x03a5, 0x0301}},
	{0x038f, []rune{0x03a9, 0x0301}},
	{0x03ac, []rune{0x03b1, 0x0301}}, {0x03ad, []rune{0x03b5, 0x0301}},
	{0x03ae, []rune{0x03b7, 0x0301}}, {0x03af, []rune{0x03b9, 0x0301}},
	{0x03cc, []rune{0x03bf, 0x0301}}, {0x03cd, []rune{0x03c5, 0x0301}},
	{0x03ce, []rune{0x03c9, 0x0301}},
	{0x0401, []rune{0x0415, 0x0308}}, {0x0451, []rune{0x0435, 0x0308}},
	{0x0419, []rune{0x0418, 0x0306}}, {0x0439, []rune{0x0438, 0x0306}},
	{0x1e08, []rune{0x00c7, 0x0301}}, {0x1e09, []rune{0x00e7, 0x0301}},
	{0x1e60, []rune{0x0053, 0x0307}}, {0x1e61, []rune{0x0073, 0x0307}},
	{0x304c, []rune{0x304b, 0x3099}}, {0x304e, []rune{0x304d, 0x3099}},
	{0x3050, []rune{0x304f, 0x3099}}, {0x3052, []rune{0x3051, 0x3099}},
	{0x3054, []rune{0x3053, 0x3099}},
	{0x3070, []rune{0x306f, 0x3099}}, {0x3071, []rune{0x306f, 0x309a}},
	{0x30ac, []rune{0x30ab, 0x3099}},
	{0x30d0, []rune{0x30cf, 0x3099}}, {0x30d1, []rune{0x30cf, 0x309a}},
	{0x30f4, []rune{0x30a6, 0x3099}},
	// Singletons; excluded from composition by construction.
	{0x2126, []rune{0x03a9}}, // ohm sign
	{0x212a, []rune{0x004b}}, // kelvin sign
	{0x212b, []rune{0x00c5}}, // angstrom sign
}

// Compatibility decompositions, applied by forms KC, KD and the IDN form.
// Fullwidth forms are appended programmatically.
var compatDecomps = []decompEntry{
	{0x00a0, []rune{0x0020}},
	{0x00b2, []rune{0x0032}},
	{0x00b3, []rune{0x0033}},
	{0x00b9, []rune{0x0031}},
	{0x0132, []rune{0x0049, 0x004a}},
	{0x0133, []rune{0x0069, 0x006a}},
	{0x2122, []rune{0x0054, 0x004d}},
	{0xfb01, []rune{0x0066, 0x0069}},
	{0xfb02, []rune{0x0066, 0x006c}},
	{0xff61, []rune{0x3002}},
	{0xff62, []rune{0x300c}},
	{0xff63, []rune{0x300d}},
	{0xff64, []rune{0x3001}},
	{0xff65, []rune{0x30fb}},
}

func allCompatDecomps() []decompEntry {
	out := make([]decompEntry, 0, len(compatDecomps)+62)
	out = append(out, compatDecomps...)
	for i := rune(0); i < 10; i++ {
		out = append(out, decompEntry{0xff10 + i, []rune{'0' + i}})
	}
	for i := rune(0); i < 26; i++ {
		out = append(out, decompEntry{0xff21 + i, []rune{'A' + i}})
		out = append(out, decompEntry{0xff41 + i, []rune{'a' + i}})
	}
	return out
}

// Case foldings applied only by the IDN form, derived from the case master
// data so the two stay in step. Entries whose code point already has a
// canonical or compatibility decomposition are skipped; recursion through
// that decomposition folds the base letter instead.
var foldExtra = []decompEntry{
	{0x00df, []rune{0x0073, 0x0073}}, // sharp s
	{0x03c2, []rune{0x03c3}},         // final sigma
}

// Unassigned code points (property 0x7f). A curated subset of the holes in
// the covered blocks; everything unlisted counts as assigned.
var unassignedRanges = [][2]rune{
	{0x0378, 0x0379},
	{0x0380, 0x0383},
	{0x038b, 0x038b},
	{0x038d, 0x038d},
	{0x03a2, 0x03a2},
	{0x0530, 0x0530},
	{0x058b, 0x058c},
	{0x05c8, 0x05cf},
}

// Always-invalid code points (property 0xff): NUL, surrogates,
// noncharacters, and the Hangul ranges the engine handles arithmetically.
var invalidRanges = [][2]rune{
	{0x0000, 0x0000},
	{0x1100, 0x11ff},
	{0xac00, 0xd7ff},
	{0xd800, 0xdfff},
	{0xfdd0, 0xfdef},
	{0xfffe, 0xffff},
	{0x1fffe, 0x1ffff},
	{0x2fffe, 0x2ffff},
	{0x10fffe, 0x10ffff},
}
