package tables

import "github.com/unitext/nls-engine/casemap"

// BuildCaseBlob packs the upper and lower mapping sets into one case blob:
// a two-word header followed by the upper-case trie and then the lower-case
// trie, each in the three-level packed layout casemap.Table expects.
func BuildCaseBlob(upper, lower map[uint16]uint16) []byte {
	upperTrie := buildCaseTrie(upper)
	lowerTrie := buildCaseTrie(lower)

	words := make([]uint16, 0, 2+len(upperTrie)+len(lowerTrie))
	words = append(words, casemap.CaseBlobVersion, uint16(len(upperTrie)))
	words = append(words, upperTrie...)
	words = append(words, lowerTrie...)
	return wordsToBytes(words)
}

// buildCaseTrie lays out one mapping set as a flat trie: 256 top-level
// entries indexing 16-entry mid blocks, which index 16-entry leaf blocks of
// offsets (mapped minus input, wrapping). Identical blocks are shared, which
// is what keeps a full 16-bit-coverage table small.
func buildCaseTrie(mappings map[uint16]uint16) []uint16 {
	// Leaf blocks: one per 16-character group, deduplicated.
	type block [16]uint16
	leafIndex := make(map[block]int)
	var leaves []block
	leafOf := make([]int, 0x1000)
	for group := 0; group < 0x1000; group++ {
		var leaf block
		for low := 0; low < 16; low++ {
			ch := uint16(group<<4 | low)
			if to, ok := mappings[ch]; ok {
				leaf[low] = to - ch
			}
		}
		idx, ok := leafIndex[leaf]
		if !ok {
			idx = len(leaves)
			leaves = append(leaves, leaf)
			leafIndex[leaf] = idx
		}
		leafOf[group] = idx
	}

	// Mid blocks: one per 256-character page, deduplicated.
	midIndex := make(map[block]int)
	var mids []block
	midOf := make([]int, 0x100)
	for page := 0; page < 0x100; page++ {
		var mid block
		for i := 0; i < 16; i++ {
			mid[i] = uint16(leafOf[page<<4|i])
		}
		idx, ok := midIndex[mid]
		if !ok {
			idx = len(mids)
			mids = append(mids, mid)
			midIndex[mid] = idx
		}
		midOf[page] = idx
	}

	// Assemble with absolute word offsets.
	midBase := 0x100
	leafBase := midBase + 16*len(mids)
	table := make([]uint16, leafBase+16*len(leaves))
	for page := 0; page < 0x100; page++ {
		table[page] = uint16(midBase + 16*midOf[page])
	}
	for i, mid := range mids {
		for j, leafIdx := range mid {
			table[midBase+16*i+j] = uint16(leafBase + 16*int(leafIdx))
		}
	}
	for i, leaf := range leaves {
		copy(table[leafBase+16*i:], leaf[:])
	}
	return table
}
