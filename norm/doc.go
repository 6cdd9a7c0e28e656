// Package norm implements Unicode normalization over form-selected binary
// tables: canonical (and compatibility) decomposition, canonical-order
// composition, and quick-check classification.
//
// Tables are loaded once per form into process-wide slots published by
// compare-and-swap; concurrent loaders race, the first successful publish
// wins and the loser releases its redundant copy back to the supplier.
// Published forms are immutable, so the hot paths run without locks.
//
// Hangul syllables are decomposed and recomposed arithmetically from the
// syllable index, never through the tables.
package norm
