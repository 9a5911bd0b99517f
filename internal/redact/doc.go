// Package redact removes marked regions from line-oriented text before it is
// published.
//
// A region is delimited by a pair of literal marker strings: any line
// containing the start marker opens a region, and the region extends through
// the next line containing the end marker, inclusive. Regions do not nest,
// and an unterminated region extends to the end of the input. Both policies
// are deliberate contracts, not accidents of implementation.
package redact
