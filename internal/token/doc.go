// Package token splits polar table lines into fields and numbers.
// Invariants:
//   - Split never trims: fields are exact substrings of the line.
//   - SplitNumeric keeps only fields whose first byte is an ASCII digit.
//     Signs, leading blanks and empty fields are dropped, not parsed.
//   - Numbers are read with ParseLeadingFloat, which accepts the longest
//     numeric prefix and ignores whatever follows it.
package token
