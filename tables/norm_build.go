package tables

import (
	"sort"

	"github.com/unitext/nls-engine/internal/binary"
	"github.com/unitext/nls-engine/status"
)

// Normalization blob layout (16-bit words):
//
//	[0]  magic 0x4d4e
//	[1]  version
//	[2]  form id
//	[3]  length factor
//	[4]  classes section offset
//	[5]  properties section offset
//	[6]  decomposition map offset
//	[7]  decomposition pool offset
//	[8]  composition section offset
//	[9]  end offset (total words)
//
// Sections follow in offset order. Classes is a flat array of combining
// class values with index 0 reserved for class zero. Properties is a run
// of (start u32, end u32, props) records sorted by start. The
// decomposition map is (cp u32, pool position, length) records sorted by
// code point; the pool holds the replacement code points as u32 pairs.
// The composition section is (starter u32, combiner u32, composed u32)
// records sorted by starter then combiner.
const (
	normBlobMagic   = 0x4d4e
	normBlobVersion = 1

	normHeaderWords   = 10
	normPropRecWords  = 5
	normDecompRecWords = 4
	normCompRecWords  = 6
)

const (
	propMarkFlag  = 0x80
	propMaybeFlag = 0xc0
	propQCNo      = 0xbf
	propUnassigned = 0x7f
	propInvalid   = 0xff
)

type compPair struct {
	starter, combiner, composed rune
}

func composingForm(form uint32) bool {
	return form == formC || form == formKC || form == formIdna
}

func compatForm(form uint32) bool {
	return form == formKC || form == formKD || form == formIdna
}

// BuildNormBlob assembles the normalization table for one form.
func BuildNormBlob(form uint32) ([]uint16, error) {
	if !knownForm(form) {
		return nil, status.InvalidParameter(status.OpLoad, "unknown normalization form")
	}

	decomp := make(map[rune][]rune, len(canonicalDecomps)*2)
	for _, e := range canonicalDecomps {
		decomp[e.cp] = e.seq
	}
	if compatForm(form) {
		for _, e := range allCompatDecomps() {
			decomp[e.cp] = e.seq
		}
	}
	folded := map[rune]bool{}
	if form == formIdna {
		_, lower := caseMappings()
		for up, lo := range lower {
			cp := rune(up)
			if _, ok := decomp[cp]; ok {
				continue
			}
			decomp[cp] = []rune{rune(lo)}
			folded[cp] = true
		}
		for _, e := range foldExtra {
			if _, ok := decomp[e.cp]; !ok {
				decomp[e.cp] = e.seq
				folded[e.cp] = true
			}
		}
	}

	var pairs []compPair
	if composingForm(form) {
		for _, e := range canonicalDecomps {
			if len(e.seq) != 2 {
				continue
			}
			if form == formIdna && (folded[e.seq[0]] || isFoldedBase(e.seq[0])) {
				continue
			}
			pairs = append(pairs, compPair{e.seq[0], e.seq[1], e.cp})
		}
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].starter != pairs[j].starter {
				return pairs[i].starter < pairs[j].starter
			}
			return pairs[i].combiner < pairs[j].combiner
		})
	}

	classes, classIdx := buildClasses()
	props := buildProps(decomp, pairs, classIdx)

	w := binary.NewWriter()
	w.U16(normBlobMagic)
	w.U16(normBlobVersion)
	w.U16(uint16(form))
	w.U16(normLenFactor[form])
	patches := make([]int, 6)
	for i := range patches {
		patches[i] = w.Len()
		w.U16(0)
	}

	w.Patch(patches[0], uint16(w.Len())) // classes
	for _, c := range classes {
		w.U16(uint16(c))
	}

	w.Patch(patches[1], uint16(w.Len())) // properties
	for _, r := range props {
		w.U32(uint32(r.lo))
		w.U32(uint32(r.hi))
		w.U16(uint16(r.props))
	}

	keys := make([]rune, 0, len(decomp))
	for cp := range decomp {
		keys = append(keys, cp)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var pool []rune
	w.Patch(patches[2], uint16(w.Len())) // decomposition map
	for _, cp := range keys {
		w.U32(uint32(cp))
		w.U16(uint16(len(pool)))
		w.U16(uint16(len(decomp[cp])))
		pool = append(pool, decomp[cp]...)
	}

	w.Patch(patches[3], uint16(w.Len())) // pool
	for _, cp := range pool {
		w.U32(uint32(cp))
	}

	w.Patch(patches[4], uint16(w.Len())) // composition
	for _, p := range pairs {
		w.U32(uint32(p.starter))
		w.U32(uint32(p.combiner))
		w.U32(uint32(p.composed))
	}

	w.Patch(patches[5], uint16(w.Len()))
	return w.Words(), nil
}

// isFoldedBase reports whether cp is an uppercase letter the IDN form
// folds, used to drop its composition pairs so folded output stays
// decomposed at the base letter.
func isFoldedBase(cp rune) bool {
	if cp > 0xffff {
		return false
	}
	_, lower := caseMappings()
	_, ok := lower[uint16(cp)]
	return ok
}

func buildClasses() ([]uint8, map[uint8]int) {
	seen := map[uint8]bool{}
	for _, r := range classRanges {
		seen[r.ccc] = true
	}
	vals := make([]uint8, 0, len(seen))
	for c := range seen {
		vals = append(vals, c)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	classes := append([]uint8{0}, vals...)
	idx := make(map[uint8]int, len(classes))
	for i, c := range classes {
		idx[c] = i
	}
	return classes, idx
}

type propRange struct {
	lo, hi rune
	props  uint8
}

func buildProps(decomp map[rune][]rune, pairs []compPair, classIdx map[uint8]int) []propRange {
	sparse := map[rune]uint8{}

	maybe := map[rune]bool{}
	composed := map[rune]bool{}
	for _, p := range pairs {
		maybe[p.combiner] = true
		composed[p.composed] = true
	}

	for _, r := range classRanges {
		idx := uint8(classIdx[r.ccc])
		for cp := r.lo; cp <= r.hi; cp++ {
			if maybe[cp] {
				sparse[cp] = propMaybeFlag | idx
			} else {
				sparse[cp] = propMarkFlag | idx
			}
		}
	}

	for cp := range decomp {
		if composed[cp] {
			continue
		}
		sparse[cp] = propQCNo
	}

	for _, r := range unassignedRanges {
		for cp := r[0]; cp <= r[1]; cp++ {
			sparse[cp] = propUnassigned
		}
	}
	for _, r := range invalidRanges {
		for cp := r[0]; cp <= r[1]; cp++ {
			sparse[cp] = propInvalid
		}
	}

	cps := make([]rune, 0, len(sparse))
	for cp := range sparse {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })

	var out []propRange
	for _, cp := range cps {
		p := sparse[cp]
		if n := len(out); n > 0 && out[n-1].hi == cp-1 && out[n-1].props == p {
			out[n-1].hi = cp
			continue
		}
		out = append(out, propRange{cp, cp, p})
	}
	return out
}
