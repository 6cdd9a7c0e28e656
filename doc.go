// Package nlsengine maintains the process-wide active NLS table set and the
// string primitives built on it: ordinal comparison, prefix testing, string
// hashing and single-character case mapping and decoding.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	nlsengine/      Root package with the active table set and string primitives
//	├── codepage/   Code page table parsing and narrow/wide transcoding
//	├── casemap/    Compressed case-mapping tables
//	├── utf/        UTF-8 and UTF-16 codecs with surrogate handling
//	├── norm/       Unicode normalization (NFC/NFD/NFKC/NFKD and the IDNA form)
//	├── idn/        Internationalized domain names: Nameprep and Punycode
//	├── locale/     Locale registry with id and name indices
//	├── tables/     Built-in table supplier and blob builders
//	└── status/     Structured error types shared by all packages
//
// # Quick Start
//
// Publish a table set and convert text:
//
//	if err := nlsengine.Init(tables.Default(), 1252, 437); err != nil {
//		log.Fatal(err)
//	}
//	dst := make([]uint16, nlsengine.AnsiToUnicodeSize(src))
//	n, err := nlsengine.AnsiToUnicode(dst, src)
//
// Conversions issued before Init fall back to 7-bit ASCII so that early
// startup code can still compare, hash and log strings.
package nlsengine
