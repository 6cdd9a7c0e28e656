package norm

import (
	"github.com/unitext/nls-engine/internal/binary"
	"github.com/unitext/nls-engine/status"
)

// Normalization form ids.
const (
	NFC  = 1
	NFD  = 2
	NFKC = 5
	NFKD = 6
	// IDNA is the compatibility-composition form with case folding used by
	// the idn package.
	IDNA = 13

	maxForm = 15
)

// Blob header layout; must match the builder in the tables package.
const (
	blobMagic   = 0x4d4e
	blobVersion = 1

	headerWords    = 10
	propRecWords   = 5
	decompRecWords = 4
	compRecWords   = 6
)

// Per-code-point property values. The low six bits index the combining
// class table; 0x3f there marks the special values.
const (
	propMarkFlag   = 0x80
	propMaybeFlag  = 0xc0
	propQCNo       = 0xbf
	propUnassigned = 0x7f
	propInvalid    = 0xff
)

// Hangul syllable arithmetic.
const (
	hangulSBase = 0xac00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11a7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

// Form is one parsed normalization table. Immutable after Parse.
type Form struct {
	ID        uint32
	LenFactor int

	composing bool
	classes   []uint16
	props     []uint16 // (start u32, end u32, props) records
	decompMap []uint16 // (cp u32, pool pos, len) records
	pool      []uint16 // u32 code points
	comp      []uint16 // (starter u32, combiner u32, composed u32) records
}

// Parse validates a normalization blob against the requested form and
// wraps its sections. Corrupt or mismatched blobs are rejected so they are
// never published to the cache.
func Parse(words []uint16, form uint32) (*Form, error) {
	if len(words) < headerWords {
		return nil, status.InvalidTable(status.OpParse, "norm blob too short: %d words", len(words))
	}
	if words[0] != blobMagic || words[1] != blobVersion {
		return nil, status.InvalidTable(status.OpParse, "norm blob magic %#x version %d", words[0], words[1])
	}
	if uint32(words[2]) != form {
		return nil, status.InvalidTable(status.OpParse, "norm blob holds form %d, requested %d", words[2], form)
	}
	if words[3] == 0 {
		return nil, status.InvalidTable(status.OpParse, "norm blob zero length factor")
	}

	off := make([]int, 6)
	last := headerWords
	for i := range off {
		off[i] = int(words[4+i])
		if off[i] < last || off[i] > len(words) {
			return nil, status.InvalidTable(status.OpParse, "norm blob section offset %d out of order", off[i])
		}
		last = off[i]
	}
	if off[5] != len(words) {
		return nil, status.InvalidTable(status.OpParse, "norm blob end offset %d, blob %d words", off[5], len(words))
	}
	if (off[2]-off[1])%propRecWords != 0 ||
		(off[3]-off[2])%decompRecWords != 0 ||
		(off[4]-off[3])%2 != 0 ||
		(off[5]-off[4])%compRecWords != 0 {
		return nil, status.InvalidTable(status.OpParse, "norm blob section sizes misaligned")
	}

	f := &Form{
		ID:        form,
		LenFactor: int(words[3]),
		composing: form == NFC || form == NFKC || form == IDNA,
		classes:   words[off[0]:off[1]],
		props:     words[off[1]:off[2]],
		decompMap: words[off[2]:off[3]],
		pool:      words[off[3]:off[4]],
		comp:      words[off[4]:off[5]],
	}
	if len(f.classes) == 0 || f.classes[0] != 0 {
		return nil, status.InvalidTable(status.OpParse, "norm blob class table malformed")
	}
	// Every decomposition must point inside the pool.
	for i := 0; i+decompRecWords <= len(f.decompMap); i += decompRecWords {
		pos, n := int(f.decompMap[i+2]), int(f.decompMap[i+3])
		if n == 0 || 2*(pos+n) > len(f.pool) {
			return nil, status.InvalidTable(status.OpParse, "norm blob decomposition at %d overruns pool", i)
		}
	}
	return f, nil
}

// ParseBlob is Parse over the raw little-endian byte form.
func ParseBlob(blob []byte, form uint32) (*Form, error) {
	words, err := binary.Words(blob)
	if err != nil {
		return nil, status.Wrap(status.OpParse, status.CodeInvalidTable, err)
	}
	return Parse(words, form)
}

// Composing reports whether the form re-composes after decomposition.
func (f *Form) Composing() bool {
	return f.composing
}

func u32At(words []uint16, i int) uint32 {
	return uint32(words[i]) | uint32(words[i+1])<<16
}

// charProps returns the property byte for a code point; unlisted code
// points are plain starters.
func (f *Form) charProps(ch uint32) uint8 {
	lo, hi := 0, len(f.props)/propRecWords
	for lo < hi {
		mid := (lo + hi) / 2
		rec := f.props[mid*propRecWords:]
		switch {
		case ch < u32At(rec, 0):
			hi = mid
		case ch > u32At(rec, 2):
			lo = mid + 1
		default:
			return uint8(rec[4])
		}
	}
	return 0
}

// combiningClass returns the canonical combining class of a code point.
// The special property values all map to class zero.
func (f *Form) combiningClass(ch uint32) uint8 {
	idx := f.charProps(ch) & 0x3f
	if idx == 0x3f || int(idx) >= len(f.classes) {
		return 0
	}
	return uint8(f.classes[idx])
}

// CombiningClass returns the canonical combining class of a code point.
func (f *Form) CombiningClass(ch uint32) uint8 {
	return f.combiningClass(ch)
}

// IsForbidden reports whether ch can never appear in text normalized to
// this form.
func (f *Form) IsForbidden(ch uint32) bool {
	return f.charProps(ch) == propQCNo
}

// IsUnassigned reports whether ch is marked unassigned.
func (f *Form) IsUnassigned(ch uint32) bool {
	return f.charProps(ch) == propUnassigned
}

// IsInvalidChar reports whether ch is always invalid. The Hangul block is
// valid text even though the tables mark it as handled arithmetically.
func (f *Form) IsInvalidChar(ch uint32) bool {
	if ch >= hangulSBase && ch < hangulSBase+0x2c00 {
		return false
	}
	return f.charProps(ch) == propInvalid
}

// lookupDecomp returns the single-level decomposition of ch, if any.
// Full decomposition applies it recursively.
func (f *Form) lookupDecomp(ch uint32) ([]uint32, bool) {
	lo, hi := 0, len(f.decompMap)/decompRecWords
	for lo < hi {
		mid := (lo + hi) / 2
		rec := f.decompMap[mid*decompRecWords:]
		cp := u32At(rec, 0)
		switch {
		case ch < cp:
			hi = mid
		case ch > cp:
			lo = mid + 1
		default:
			pos, n := int(rec[2]), int(rec[3])
			seq := make([]uint32, n)
			for i := range seq {
				seq[i] = u32At(f.pool, 2*(pos+i))
			}
			return seq, true
		}
	}
	return nil, false
}

// composePair returns the canonical composition of a starter and a
// combining code point, or zero.
func (f *Form) composePair(starter, ch uint32) uint32 {
	lo, hi := 0, len(f.comp)/compRecWords
	for lo < hi {
		mid := (lo + hi) / 2
		rec := f.comp[mid*compRecWords:]
		s, c := u32At(rec, 0), u32At(rec, 2)
		switch {
		case starter < s || (starter == s && ch < c):
			hi = mid
		case starter > s || ch > c:
			lo = mid + 1
		default:
			return u32At(rec, 4)
		}
	}
	return 0
}

// composeHangul combines L+V into an LV syllable and LV+T into LVT, by the
// inverse of the decomposition arithmetic.
func composeHangul(starter, ch uint32) uint32 {
	if starter >= hangulLBase && starter < hangulLBase+hangulLCount &&
		ch >= hangulVBase && ch < hangulVBase+hangulVCount {
		l := starter - hangulLBase
		v := ch - hangulVBase
		return hangulSBase + (l*hangulVCount+v)*hangulTCount
	}
	if starter >= hangulSBase && starter < hangulSBase+hangulSCount &&
		(starter-hangulSBase)%hangulTCount == 0 &&
		ch > hangulTBase && ch < hangulTBase+hangulTCount {
		return starter + (ch - hangulTBase)
	}
	return 0
}

func isHangulSyllable(ch uint32) bool {
	return ch >= hangulSBase && ch < hangulSBase+hangulSCount
}

func isJamo(ch uint32) bool {
	return ch >= 0x1100 && ch <= 0x11ff
}
