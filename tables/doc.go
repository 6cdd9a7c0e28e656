// Package tables supplies the binary table blobs the engine's parsers
// consume: code page descriptions, the packed case-mapping tries, the
// locale metadata table, and the per-form normalization tables.
//
// # Supplier contract
//
// A supplier hands out immutable memory regions by resource category. The
// built-in supplier serializes embedded master data through the Build*
// functions below and caches each blob after the first request; regions are
// never mutated once returned, so callers may hold them for the process
// lifetime. Release exists for suppliers backed by mapped files; for the
// built-in supplier it is a no-op.
//
// # Blob formats
//
// All blobs are arrays of little-endian 16-bit words with word-offset
// headers:
//
//	case blob       [version][upper len][upper trie...][lower trie...]
//	code page blob  [hdr size][page][max size][defaults x4][lead bytes x6]
//	                [mb size][narrow->wide x256][glyph flag]
//	                [dbcs count][offsets+rows...][wide->narrow]
//	locale blob     [version][count][offsets x4][record size]
//	                [lcid index][name index][records][strings]
//	norm blob       [magic][version][form][len factor][section offsets...]
//	                [classes][props ranges][decomp map][decomp pool][comp]
//
// The builders exist so that the exact format the parsers consume is also
// exercised from the producing side in tests; corrupted-blob handling is
// tested by perturbing built output rather than by hand-written byte
// fixtures.
package tables
