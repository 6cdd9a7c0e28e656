package tables

import (
	"sort"

	"github.com/unitext/nls-engine/internal/binary"
	"github.com/unitext/nls-engine/internal/lcname"
	"github.com/unitext/nls-engine/status"
)

// LocaleData is the master description of one locale.
type LocaleData struct {
	Name        string // e.g. "en-US"
	ID          uint32 // LCID
	Neutral     bool   // language without region
	DefaultLang uint32 // specific LCID a neutral locale resolves to
	AnsiCP      uint16
	OemCP       uint16
}

// Locale blob layout constants, shared with the locale package's parser.
const (
	LocaleBlobVersion = 1

	localeHeaderWords    = 7 // version, count, 4 offsets, record size
	localeLcidEntryWords = 3 // id lo, id hi, record index
	localeNameEntryWords = 2 // name offset, record index
	localeRecordWords    = 8 // id lo, id hi, not-neutral, default lang lo/hi, ansi cp, oem cp, name offset
)

// BuildLocaleBlob serializes the locale metadata table: a header, the
// id-sorted index, the name-sorted index, the fixed-size records, and the
// length-prefixed string pool. Both indices refer to records by position.
func BuildLocaleBlob(locales []LocaleData) ([]byte, error) {
	n := len(locales)
	if n == 0 {
		return nil, status.InvalidParameter(status.OpParse, "no locales")
	}

	// String pool, one length-prefixed name per record.
	var strings []uint16
	nameOffset := make([]uint16, n)
	for i, loc := range locales {
		units := lcname.Encode(loc.Name)
		if len(units) == 0 || len(units) > 84 {
			return nil, status.InvalidParameter(status.OpParse, "locale name %q", loc.Name)
		}
		nameOffset[i] = uint16(len(strings))
		strings = append(strings, uint16(len(units)))
		strings = append(strings, units...)
	}

	byID := make([]int, n)
	byName := make([]int, n)
	for i := range locales {
		byID[i] = i
		byName[i] = i
	}
	sort.Slice(byID, func(a, b int) bool {
		return locales[byID[a]].ID < locales[byID[b]].ID
	})
	sort.Slice(byName, func(a, b int) bool {
		na := lcname.Encode(locales[byName[a]].Name)
		nb := lcname.Encode(locales[byName[b]].Name)
		return lcname.Compare(na, nb) < 0
	})

	w := binary.NewWriter()
	w.U16(LocaleBlobVersion)
	w.U16(uint16(n))
	lcidsPatch := w.Len()
	w.U16(0) // lcid index offset
	namesPatch := w.Len()
	w.U16(0) // name index offset
	recordsPatch := w.Len()
	w.U16(0) // records offset
	stringsPatch := w.Len()
	w.U16(0) // strings offset
	w.U16(localeRecordWords)

	w.Patch(lcidsPatch, uint16(w.Len()))
	for _, rec := range byID {
		w.U32(locales[rec].ID)
		w.U16(uint16(rec))
	}

	w.Patch(namesPatch, uint16(w.Len()))
	for _, rec := range byName {
		w.U16(nameOffset[rec])
		w.U16(uint16(rec))
	}

	w.Patch(recordsPatch, uint16(w.Len()))
	for i, loc := range locales {
		notNeutral := uint16(1)
		defaultLang := loc.ID
		if loc.Neutral {
			notNeutral = 0
			defaultLang = loc.DefaultLang
		}
		w.U32(loc.ID)
		w.U16(notNeutral)
		w.U32(defaultLang)
		w.U16(loc.AnsiCP)
		w.U16(loc.OemCP)
		w.U16(nameOffset[i])
	}

	w.Patch(stringsPatch, uint16(w.Len()))
	w.U16s(strings)

	return wordsToBytes(w.Words()), nil
}
