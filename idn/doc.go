// Package idn encodes and decodes Internationalized Domain Names: Nameprep
// normalization and validation, and RFC 3492 Punycode over dot-separated
// labels.
//
// All entry points run the two-phase size protocol (nil destination
// computes the required length) and fail the whole string on the first
// structural violation rather than skipping the offending label. Encoded
// labels are capped at 63 characters; decoded labels at 64 code points.
package idn
