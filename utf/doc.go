// Package utf implements the UTF-8 / UTF-16 codec shared by the transcoding,
// normalization and IDN layers.
//
// Strings on the wide side are []uint16 code unit slices, matching the
// fixed-width representation the rest of the engine operates on. Get and Put
// handle surrogate pairs; Get reports malformed input (a lone or inverted
// surrogate) by returning a zero length, which callers translate into the
// fatal no-translation status.
//
// The conversion entry points follow the engine-wide two-phase protocol: a
// nil destination runs the identical walk in size-only mode, so the reported
// length always equals what a subsequent writing call produces. Invalid
// sequences are replaced with U+FFFD and reported through the advisory
// some-not-mapped status rather than failing the conversion.
package utf
