// Package layout arranges cleaned screenshots into the two-per-row page grid.
//
// Placement is purely positional: image i goes to page i/2, column i%2, in
// input order. Each image is aspect-fit into a fixed cell, scaled down only,
// and centered. The resulting Document is the sole input to the PDF
// assembler.
package layout
