package tables

// caseRange relates runs of upper/lower pairs: count characters pairing
// upperStart+i*stride with lowerStart+i*stride.
type caseRange struct {
	upperStart uint16
	lowerStart uint16
	count      int
	stride     int
}

var caseRanges = []caseRange{
	{0x0041, 0x0061, 26, 1}, // ASCII
	{0x00c0, 0x00e0, 23, 1}, // Latin-1 A-grave..O-diaeresis
	{0x00d8, 0x00f8, 7, 1},  // Latin-1 O-stroke..Thorn
	{0x0100, 0x0101, 24, 2}, // Latin Extended-A, even/odd pairs to 0x12e/0x12f
	{0x0132, 0x0133, 3, 2},
	{0x0139, 0x013a, 8, 2},
	{0x014a, 0x014b, 23, 2},
	{0x0179, 0x017a, 3, 2},
	{0x0391, 0x03b1, 17, 1}, // Greek Alpha..Rho
	{0x03a3, 0x03c3, 9, 1},  // Greek Sigma..Upsilon-dialytika
	{0x0410, 0x0430, 32, 1}, // Cyrillic A..Ya
	{0x0400, 0x0450, 16, 1}, // Cyrillic Ie-grave..Dzhe
	{0xff21, 0xff41, 26, 1}, // fullwidth
}

// Pairs that do not fit a range.
var casePairs = []struct {
	upper, lower uint16
}{
	{0x0178, 0x00ff}, // Y-diaeresis
	{0x0386, 0x03ac}, // Greek Alpha-tonos
	{0x0388, 0x03ad},
	{0x0389, 0x03ae},
	{0x038a, 0x03af},
	{0x038c, 0x03cc},
	{0x038e, 0x03cd},
	{0x038f, 0x03ce},
}

// One-way mappings: characters whose round trip lands on a different
// character, so only one table carries them.
var caseUpperOnly = map[uint16]uint16{
	0x03c2: 0x03a3, // final sigma upcases to Sigma
	0x00b5: 0x039c, // micro sign upcases to Mu
	0x0131: 0x0049, // dotless i
}

var caseLowerOnly = map[uint16]uint16{
	0x0130: 0x0069, // I with dot above
}

// caseMappings expands the master data into the two mapping sets the trie
// builder consumes: upper[ch] = uppercase of ch, lower[ch] = lowercase.
func caseMappings() (upper, lower map[uint16]uint16) {
	upper = make(map[uint16]uint16)
	lower = make(map[uint16]uint16)

	add := func(u, l uint16) {
		upper[l] = u
		lower[u] = l
	}

	for _, r := range caseRanges {
		for i := 0; i < r.count; i++ {
			add(r.upperStart+uint16(i*r.stride), r.lowerStart+uint16(i*r.stride))
		}
	}
	for _, p := range casePairs {
		add(p.upper, p.lower)
	}
	for from, to := range caseUpperOnly {
		upper[from] = to
	}
	for from, to := range caseLowerOnly {
		lower[from] = to
	}
	return upper, lower
}
