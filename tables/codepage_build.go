package tables

// CodePageData is the master description of one code page, expanded by
// BuildCodePageBlob into the binary form the codepage package parses.
type CodePageData struct {
	// NarrowToWide maps every byte value to a code unit. For double-byte
	// pages, lead bytes map to the value used when the lead byte ends the
	// input (the single-byte fallback).
	NarrowToWide [256]uint16
	// Rows maps each lead byte to its 256-entry trail table. Empty for
	// single-byte pages.
	Rows map[byte]*[256]uint16
	// ExtraWide maps code units that are not the image of NarrowToWide or a
	// row entry but still encode (multi-source mappings).
	ExtraWide map[uint16]uint16

	CodePage       uint16
	MaxCharSize    uint16
	DefaultChar    uint16 // narrow-side substitute, as a code unit
	UniDefaultChar uint16 // wide-side substitute
	LeadByteRanges []byte // flattened lo,hi pairs, at most 6 bytes used
}

const cpHeaderWords = 13 // hdr size, page, max size, 4 defaults, 6 words of lead bytes

// BuildCodePageBlob serializes a code page description. Layout after the
// 13-word header: [mb section size][narrow->wide x256][glyph flag=0]
// [dbcs count][dbcs offsets+rows, if any][wide->narrow table]. The
// wide->narrow table is byte-packed for single-byte pages and word-per-unit
// for double-byte pages, which is what the parser's addressing mode switch
// keys off.
func BuildCodePageBlob(data CodePageData) []byte {
	var words []uint16

	// Header. Word 0 is the header size in words.
	words = append(words, cpHeaderWords, data.CodePage, data.MaxCharSize,
		data.DefaultChar, data.UniDefaultChar, data.DefaultChar, data.UniDefaultChar)
	var lead [12]byte
	copy(lead[:], data.LeadByteRanges)
	for i := 0; i < 12; i += 2 {
		words = append(words, uint16(lead[i])|uint16(lead[i+1])<<8)
	}

	// Multibyte-side section. Its first word holds the word count from the
	// narrow->wide table through the end of the DBCS block, so the parser
	// can locate the wide->narrow table that follows.
	sizePos := len(words)
	words = append(words, 0)
	words = append(words, data.NarrowToWide[:]...)
	words = append(words, 0) // no glyph table

	if len(data.Rows) == 0 {
		words = append(words, 0) // dbcs range count
	} else {
		words = append(words, 1)
		// Offsets are relative to the start of the offsets array; row i
		// lives right after the 256 offsets.
		var offsets [256]uint16
		var rowLeads []byte
		for leadByte := 0; leadByte < 256; leadByte++ {
			if data.Rows[byte(leadByte)] != nil {
				offsets[leadByte] = uint16(256 + 256*len(rowLeads))
				rowLeads = append(rowLeads, byte(leadByte))
			}
		}
		words = append(words, offsets[:]...)
		for _, leadByte := range rowLeads {
			words = append(words, data.Rows[leadByte][:]...)
		}
	}
	words[sizePos] = uint16(len(words) - sizePos - 1)

	// Wide->narrow table.
	if len(data.Rows) == 0 {
		packed := buildWideToNarrowSBCS(data)
		words = append(words, packed...)
	} else {
		words = append(words, buildWideToNarrowDBCS(data)...)
	}
	return wordsToBytes(words)
}

func buildWideToNarrowSBCS(data CodePageData) []uint16 {
	var table [0x10000]byte
	for i := range table {
		table[i] = byte(data.DefaultChar)
	}
	for b := 0; b < 256; b++ {
		table[data.NarrowToWide[b]] = byte(b)
	}
	for wide, narrow := range data.ExtraWide {
		table[wide] = byte(narrow)
	}
	// Two narrow chars per word, low byte first.
	packed := make([]uint16, 0x8000)
	for i := range packed {
		packed[i] = uint16(table[2*i]) | uint16(table[2*i+1])<<8
	}
	return packed
}

func buildWideToNarrowDBCS(data CodePageData) []uint16 {
	table := make([]uint16, 0x10000)
	for i := range table {
		table[i] = data.DefaultChar
	}
	isLead := func(b byte) bool {
		for i := 0; i+1 < len(data.LeadByteRanges); i += 2 {
			if b >= data.LeadByteRanges[i] && b <= data.LeadByteRanges[i+1] {
				return true
			}
		}
		return false
	}
	for b := 0; b < 256; b++ {
		if !isLead(byte(b)) {
			table[data.NarrowToWide[b]] = uint16(b)
		}
	}
	for leadByte, row := range data.Rows {
		for trail, wide := range row {
			if wide == 0 || wide == data.UniDefaultChar {
				continue // filler entry, not a real mapping
			}
			table[wide] = uint16(leadByte)<<8 | uint16(trail)
		}
	}
	for wide, narrow := range data.ExtraWide {
		table[wide] = narrow
	}
	return table
}
