// Package codepage adapts binary code page description blobs into lookup
// tables and converts between narrow encodings and UTF-16 code units.
//
// A blob starts with a header (size word, page id, maximum character size,
// default characters, lead byte ranges) followed by the multibyte-side
// section (narrow-to-wide table, optional glyph table, optional double-byte
// rows) and the wide-to-narrow table. The wide-to-narrow table is
// byte-packed for single-byte pages and one word per code unit for
// double-byte pages. The UTF-8 page id bypasses the binary format and gets
// a fixed descriptor; its conversions delegate to the utf package.
//
// Blobs come from a trusted supplier, so parsing validates section bounds
// but not table contents.
package codepage
