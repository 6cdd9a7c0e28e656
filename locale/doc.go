// Package locale resolves locale names and numeric identifiers against a
// binary metadata table.
//
// The table carries two parallel sorted indices over the same records, one
// by numeric id and one by name, so both lookup directions are a binary
// search. Name ordering is ASCII-case-insensitive with '_' and '-' treated
// as equivalent; full Unicode folding is deliberately not used because name
// resolution must work before any case table is loaded.
//
// Sentinel identifiers (user default, system default and the custom
// variants) never reach the index search: they are redirected through a
// DefaultProvider first, and two of them are fixed failures by policy.
package locale
