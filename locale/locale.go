package locale

import (
	"github.com/unitext/nls-engine/internal/binary"
	"github.com/unitext/nls-engine/internal/lcname"
	"github.com/unitext/nls-engine/status"
)

// Entry is one resolved locale record.
type Entry struct {
	Name         string
	ID           uint32
	Neutral      bool
	DefaultLang  uint32 // specific locale a neutral entry resolves to
	AnsiCodePage uint16
	OemCodePage  uint16
}

// Registry is a parsed locale metadata table. It keeps the blob's flat
// layout and binary-searches it in place; immutable after Parse.
type Registry struct {
	count      int
	recordSize int
	lcidIndex  []uint16 // count entries of 3 words: id lo, id hi, record
	nameIndex  []uint16 // count entries of 2 words: name offset, record
	records    []uint16 // count fixed-size records
	strings    []uint16 // length-prefixed names
}

const (
	blobVersion    = 1
	headerWords    = 7
	lcidEntryWords = 3
	nameEntryWords = 2
)

// Parse validates the table header and section bounds and wraps the blob.
func Parse(words []uint16) (*Registry, error) {
	if len(words) < headerWords {
		return nil, status.InvalidTable(status.OpParse, "locale blob too short: %d words", len(words))
	}
	if words[0] != blobVersion {
		return nil, status.InvalidTable(status.OpParse, "locale blob version %d", words[0])
	}
	r := &Registry{
		count:      int(words[1]),
		recordSize: int(words[6]),
	}
	lcidOff, nameOff, recOff, strOff := int(words[2]), int(words[3]), int(words[4]), int(words[5])
	if r.count == 0 || r.recordSize < 8 {
		return nil, status.InvalidTable(status.OpParse, "locale blob header: %d records of %d words", r.count, r.recordSize)
	}
	if lcidOff+r.count*lcidEntryWords > nameOff ||
		nameOff+r.count*nameEntryWords > recOff ||
		recOff+r.count*r.recordSize > strOff ||
		strOff > len(words) {
		return nil, status.InvalidTable(status.OpParse, "locale blob sections out of bounds")
	}
	r.lcidIndex = words[lcidOff : lcidOff+r.count*lcidEntryWords]
	r.nameIndex = words[nameOff : nameOff+r.count*nameEntryWords]
	r.records = words[recOff : recOff+r.count*r.recordSize]
	r.strings = words[strOff:]

	// Every name offset must land on a string that fits the pool.
	for i := 0; i < r.count; i++ {
		if _, err := r.nameAt(int(r.nameIndex[i*nameEntryWords])); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ParseBlob is Parse over the raw little-endian byte form.
func ParseBlob(blob []byte) (*Registry, error) {
	words, err := binary.Words(blob)
	if err != nil {
		return nil, status.Wrap(status.OpParse, status.CodeInvalidTable, err)
	}
	return Parse(words)
}

// Count returns the number of locale records.
func (r *Registry) Count() int {
	return r.count
}

// At returns the record at index i in table order.
func (r *Registry) At(i int) Entry {
	return r.entryAt(i)
}

func (r *Registry) nameAt(off int) ([]uint16, error) {
	if off >= len(r.strings) {
		return nil, status.InvalidTable(status.OpParse, "locale name offset %d out of pool", off)
	}
	n := int(r.strings[off])
	if off+1+n > len(r.strings) {
		return nil, status.InvalidTable(status.OpParse, "locale name at %d overruns pool", off)
	}
	return r.strings[off+1 : off+1+n], nil
}

func (r *Registry) entryAt(rec int) Entry {
	w := r.records[rec*r.recordSize:]
	name, _ := r.nameAt(int(w[7])) // offsets validated at Parse
	units := make([]rune, len(name))
	for i, u := range name {
		units[i] = rune(u)
	}
	return Entry{
		Name:         string(units),
		ID:           uint32(w[0]) | uint32(w[1])<<16,
		Neutral:      w[2] == 0,
		DefaultLang:  uint32(w[3]) | uint32(w[4])<<16,
		AnsiCodePage: w[5],
		OemCodePage:  w[6],
	}
}

// FindByName binary-searches the name index. The comparison is ASCII
// case-insensitive with '_' equivalent to '-'.
func (r *Registry) FindByName(name string) (Entry, error) {
	want := lcname.Encode(name)
	lo, hi := 0, r.count
	for lo < hi {
		mid := (lo + hi) / 2
		entry, _ := r.nameAt(int(r.nameIndex[mid*nameEntryWords]))
		c := lcname.Compare(want, entry)
		switch {
		case c < 0:
			hi = mid
		case c > 0:
			lo = mid + 1
		default:
			return r.entryAt(int(r.nameIndex[mid*nameEntryWords+1])), nil
		}
	}
	return Entry{}, status.NotFound(status.OpLocale, "locale name %q", name)
}

// FindByID binary-searches the id index. Sentinel ids must be resolved
// before calling; they are never present in the table.
func (r *Registry) FindByID(id uint32) (Entry, error) {
	lo, hi := 0, r.count
	for lo < hi {
		mid := (lo + hi) / 2
		w := r.lcidIndex[mid*lcidEntryWords:]
		entryID := uint32(w[0]) | uint32(w[1])<<16
		switch {
		case id < entryID:
			hi = mid
		case id > entryID:
			lo = mid + 1
		default:
			return r.entryAt(int(w[2])), nil
		}
	}
	return Entry{}, status.NotFound(status.OpLocale, "locale id %#x", id)
}
