package tables

// Code page numbers served by the built-in supplier.
const (
	CP437  = 437   // OEM United States
	CP932  = 932   // Japanese Shift-JIS (partial coverage)
	CP1252 = 1252  // ANSI Latin 1
	CPUTF8 = 65001 // sentinel, no table data
)

var codePages = map[uint32]CodePageData{
	CP1252: cp1252(),
	CP437:  cp437(),
	CP932:  cp932(),
	CPUTF8: {CodePage: CPUTF8},
}

// cp1252High maps bytes 0x80-0x9f; 0xa0-0xff are identity in cp1252.
var cp1252High = [32]uint16{
	0x20ac, 0x0081, 0x201a, 0x0192, 0x201e, 0x2026, 0x2020, 0x2021,
	0x02c6, 0x2030, 0x0160, 0x2039, 0x0152, 0x008d, 0x017d, 0x008f,
	0x0090, 0x2018, 0x2019, 0x201c, 0x201d, 0x2022, 0x2013, 0x2014,
	0x02dc, 0x2122, 0x0161, 0x203a, 0x0153, 0x009d, 0x017e, 0x0178,
}

func cp1252() CodePageData {
	d := CodePageData{
		CodePage:       CP1252,
		MaxCharSize:    1,
		DefaultChar:    '?',
		UniDefaultChar: 0x003f,
	}
	for b := 0; b < 256; b++ {
		d.NarrowToWide[b] = uint16(b)
	}
	for i, wide := range cp1252High {
		d.NarrowToWide[0x80+i] = wide
	}
	return d
}

// cp437High maps bytes 0x80-0xff.
var cp437High = [128]uint16{
	0x00c7, 0x00fc, 0x00e9, 0x00e2, 0x00e4, 0x00e0, 0x00e5, 0x00e7,
	0x00ea, 0x00eb, 0x00e8, 0x00ef, 0x00ee, 0x00ec, 0x00c4, 0x00c5,
	0x00c9, 0x00e6, 0x00c6, 0x00f4, 0x00f6, 0x00f2, 0x00fb, 0x00f9,
	0x00ff, 0x00d6, 0x00dc, 0x00a2, 0x00a3, 0x00a5, 0x20a7, 0x0192,
	0x00e1, 0x00ed, 0x00f3, 0x00fa, 0x00f1, 0x00d1, 0x00aa, 0x00ba,
	0x00bf, 0x2310, 0x00ac, 0x00bd, 0x00bc, 0x00a1, 0x00ab, 0x00bb,
	0x2591, 0x2592, 0x2593, 0x2502, 0x2524, 0x2561, 0x2562, 0x2556,
	0x2555, 0x2563, 0x2551, 0x2557, 0x255d, 0x255c, 0x255b, 0x2510,
	0x2514, 0x2534, 0x252c, 0x251c, 0x2500, 0x253c, 0x255e, 0x255f,
	0x255a, 0x2554, 0x2569, 0x2566, 0x2560, 0x2550, 0x256c, 0x2567,
	0x2568, 0x2564, 0x2565, 0x2559, 0x2558, 0x2552, 0x2553, 0x256b,
	0x256a, 0x2518, 0x250c, 0x2588, 0x2584, 0x258c, 0x2590, 0x2580,
	0x03b1, 0x00df, 0x0393, 0x03c0, 0x03a3, 0x03c3, 0x00b5, 0x03c4,
	0x03a6, 0x0398, 0x03a9, 0x03b4, 0x221e, 0x03c6, 0x03b5, 0x2229,
	0x2261, 0x00b1, 0x2265, 0x2264, 0x2320, 0x2321, 0x00f7, 0x2248,
	0x00b0, 0x2219, 0x00b7, 0x221a, 0x207f, 0x00b2, 0x25a0, 0x00a0,
}

func cp437() CodePageData {
	d := CodePageData{
		CodePage:       CP437,
		MaxCharSize:    1,
		DefaultChar:    '?',
		UniDefaultChar: 0x003f,
	}
	for b := 0; b < 128; b++ {
		d.NarrowToWide[b] = uint16(b)
	}
	copy(d.NarrowToWide[0x80:], cp437High[:])
	return d
}

// cp932 carries a deliberately partial double-byte repertoire: the JIS X
// 0201 single-byte side plus the lead-byte rows for punctuation, fullwidth
// alphanumerics, hiragana and katakana.
func cp932() CodePageData {
	const filler = 0x30fb // katakana middle dot doubles as the wide-side default

	d := CodePageData{
		CodePage:       CP932,
		MaxCharSize:    2,
		DefaultChar:    '?',
		UniDefaultChar: filler,
		LeadByteRanges: []byte{0x81, 0x9f, 0xe0, 0xfc},
		Rows:           map[byte]*[256]uint16{},
		ExtraWide:      map[uint16]uint16{filler: 0x8145},
	}

	for b := 0; b < 0x80; b++ {
		d.NarrowToWide[b] = uint16(b)
	}
	for b := 0x80; b < 256; b++ {
		d.NarrowToWide[b] = filler
	}
	// Halfwidth katakana.
	for b := 0xa1; b <= 0xdf; b++ {
		d.NarrowToWide[b] = uint16(0xff61 + b - 0xa1)
	}

	row81 := &[256]uint16{}
	for _, m := range [][2]uint16{
		{0x40, 0x3000}, {0x41, 0x3001}, {0x42, 0x3002}, {0x43, 0xff0c},
		{0x44, 0xff0e}, {0x45, filler}, {0x46, 0xff1a}, {0x47, 0xff1b},
		{0x48, 0xff1f}, {0x49, 0xff01}, {0x4a, 0x309b}, {0x4b, 0x309c},
		{0x5b, 0x30fc}, {0x5c, 0x2015}, {0x60, 0x301c}, {0x69, 0xff08},
		{0x6a, 0xff09}, {0x75, 0x300c}, {0x76, 0x300d}, {0x7b, 0xff0b},
		{0x7c, 0xff0d}, {0x81, 0xff1d},
	} {
		row81[m[0]] = m[1]
	}
	d.Rows[0x81] = row81

	row82 := &[256]uint16{}
	for i := 0; i < 10; i++ { // fullwidth digits
		row82[0x4f+i] = uint16(0xff10 + i)
	}
	for i := 0; i < 26; i++ { // fullwidth A-Z, a-z
		row82[0x60+i] = uint16(0xff21 + i)
		row82[0x81+i] = uint16(0xff41 + i)
	}
	for i := 0; i <= 0x52; i++ { // hiragana small-a through n
		row82[0x9f+i] = uint16(0x3041 + i)
	}
	d.Rows[0x82] = row82

	row83 := &[256]uint16{}
	for i := 0; i < 0x3f; i++ { // katakana small-a through mi, trail skips 0x7f
		row83[0x40+i] = uint16(0x30a1 + i)
	}
	for i := 0; i < 0x17; i++ { // katakana mu through small-ke
		row83[0x80+i] = uint16(0x30e0 + i)
	}
	d.Rows[0x83] = row83

	// Unmapped trail slots hold the wide-side default, as real tables do.
	for _, row := range d.Rows {
		for i, wide := range row {
			if wide == 0 {
				row[i] = filler
			}
		}
	}
	return d
}
