package codepage

import (
	"github.com/unitext/nls-engine/internal/binary"
	"github.com/unitext/nls-engine/status"
)

// Well-known page ids.
const (
	UTF8 = 65001
)

// Table is a parsed code page. It is immutable after Parse and safe for
// concurrent use.
type Table struct {
	CodePage            uint32
	MaxCharSize         int
	DefaultChar         uint16
	UniDefaultChar      uint16
	TransDefaultChar    uint16
	TransUniDefaultChar uint16

	leadBytes    [12]byte
	narrowToWide []uint16 // 256 entries
	dbcsOffsets  []uint16 // nil for single-byte pages; per-lead offsets then rows
	wideSB       []uint16 // 0x8000 byte-packed words
	wideDB       []uint16 // 0x10000 words

	// Wide value whose narrow image legitimately equals the default
	// character, so substitution detection can tell it apart.
	defaultWide uint16
}

const headerWords = 13

var utf8Table = &Table{
	CodePage:            UTF8,
	MaxCharSize:         4,
	DefaultChar:         '?',
	UniDefaultChar:      0xfffd,
	TransDefaultChar:    '?',
	TransUniDefaultChar: '?',
}

// Parse builds a Table from a word blob. The UTF-8 page id returns the
// fixed UTF-8 descriptor without consulting the rest of the blob.
func Parse(words []uint16) (*Table, error) {
	if len(words) < 2 {
		return nil, status.InvalidTable(status.OpParse, "code page blob too short: %d words", len(words))
	}
	if words[1] == UTF8 {
		return utf8Table, nil
	}
	hdr := int(words[0])
	if hdr < headerWords || hdr >= len(words) {
		return nil, status.InvalidTable(status.OpParse, "code page header size %d", hdr)
	}

	t := &Table{
		CodePage:            uint32(words[1]),
		MaxCharSize:         int(words[2]),
		DefaultChar:         words[3],
		UniDefaultChar:      words[4],
		TransDefaultChar:    words[5],
		TransUniDefaultChar: words[6],
	}
	for i := 0; i < 6; i++ {
		t.leadBytes[2*i] = byte(words[7+i])
		t.leadBytes[2*i+1] = byte(words[7+i] >> 8)
	}

	// The word at the header boundary holds the size of the multibyte-side
	// section; the wide-to-narrow table starts right after it.
	mbSize := int(words[hdr])
	wideOff := hdr + 1 + mbSize
	if wideOff > len(words) {
		return nil, status.InvalidTable(status.OpParse, "code page multibyte section size %d exceeds blob", mbSize)
	}

	pos := hdr + 1
	if pos+256 > wideOff {
		return nil, status.InvalidTable(status.OpParse, "code page narrow table truncated")
	}
	t.narrowToWide = words[pos : pos+256]
	pos += 256
	if pos >= wideOff {
		return nil, status.InvalidTable(status.OpParse, "code page glyph flag missing")
	}
	if words[pos] != 0 {
		pos += 256 // glyph table, unused here
	}
	pos++
	if pos >= wideOff {
		return nil, status.InvalidTable(status.OpParse, "code page range count missing")
	}
	dbcs := words[pos] != 0
	pos++
	if dbcs {
		if pos+256 > wideOff {
			return nil, status.InvalidTable(status.OpParse, "code page dbcs offsets truncated")
		}
		t.dbcsOffsets = words[pos:wideOff]
	}

	if dbcs {
		if len(words)-wideOff < 0x10000 {
			return nil, status.InvalidTable(status.OpParse, "code page wide table truncated")
		}
		t.wideDB = words[wideOff : wideOff+0x10000]
	} else {
		if len(words)-wideOff < 0x8000 {
			return nil, status.InvalidTable(status.OpParse, "code page wide table truncated")
		}
		t.wideSB = words[wideOff : wideOff+0x8000]
	}

	if int(t.DefaultChar) < 256 {
		t.defaultWide = t.narrowToWide[t.DefaultChar]
	}
	return t, nil
}

// ParseBlob is Parse over the raw little-endian byte form.
func ParseBlob(blob []byte) (*Table, error) {
	words, err := binary.Words(blob)
	if err != nil {
		return nil, status.Wrap(status.OpParse, status.CodeInvalidTable, err)
	}
	return Parse(words)
}

// IsDouble reports whether the page uses double-byte sequences.
func (t *Table) IsDouble() bool {
	return t.dbcsOffsets != nil
}

// IsLeadByte reports whether b starts a two-byte sequence on this page.
func (t *Table) IsLeadByte(b byte) bool {
	return t.dbcsOffsets != nil && t.dbcsOffsets[b] != 0
}

// wideChar resolves one code unit to its narrow form. Two-byte results have
// the lead byte in the high half.
func (t *Table) wideChar(ch uint16) uint16 {
	if t.wideDB != nil {
		return t.wideDB[ch]
	}
	w := t.wideSB[ch>>1]
	if ch&1 != 0 {
		return w >> 8
	}
	return w & 0xff
}
