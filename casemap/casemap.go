// Package casemap implements case conversion over packed offset tables.
//
// A table is a flat array holding a three-level trie: 256 top-level indices,
// then 16-entry second-level blocks, then 16-entry leaf blocks of signed
// offsets that are added to the input code unit. Lookup is three dependent
// indexed reads with no possible bounds failure, because a well-formed table
// covers the whole 16-bit space by construction. The flat layout is the
// point; it is never expanded into a tree.
package casemap

import (
	"github.com/unitext/nls-engine/internal/binary"
	"github.com/unitext/nls-engine/status"
)

// Table is a packed case-mapping trie. Two instances exist per case blob,
// one mapping to upper case and one to lower.
type Table []uint16

// Map converts one code unit through the table. The leaf value is a signed
// offset stored as uint16; the wrapping addition applies it.
func (t Table) Map(ch uint16) uint16 {
	return ch + t[t[t[ch>>8]+(ch>>4&0x0f)]+(ch&0x0f)]
}

// ToUpperASCII is the cold-start fallback used before any table is loaded,
// and for comparisons restricted to ASCII semantics.
func ToUpperASCII(ch uint16) uint16 {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	return ch
}

// ToLowerASCII is the lower-case counterpart of ToUpperASCII.
func ToLowerASCII(ch uint16) uint16 {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	return ch
}

// Header layout of a case blob: word 0 is the format version, word 1 the
// word length of the upper-case table, which the lower-case table follows
// immediately.
const headerWords = 2

// CaseBlobVersion identifies the only supported case blob format.
const CaseBlobVersion = 1

// Parse splits a case blob into its upper- and lower-case tables.
func Parse(words []uint16) (upper, lower Table, err error) {
	if len(words) < headerWords+1 {
		return nil, nil, status.InvalidTable(status.OpParse, "case blob too short: %d words", len(words))
	}
	if words[0] != CaseBlobVersion {
		return nil, nil, status.InvalidTable(status.OpParse, "case blob version %d", words[0])
	}
	upperLen := int(words[1])
	if headerWords+upperLen >= len(words) {
		return nil, nil, status.InvalidTable(status.OpParse, "case blob upper table length %d exceeds blob", upperLen)
	}
	return Table(words[headerWords : headerWords+upperLen]), Table(words[headerWords+upperLen:]), nil
}

// ParseBlob is Parse over the raw little-endian byte form.
func ParseBlob(blob []byte) (upper, lower Table, err error) {
	words, werr := binary.Words(blob)
	if werr != nil {
		return nil, nil, status.Wrap(status.OpParse, status.CodeInvalidTable, werr)
	}
	return Parse(words)
}
