package layout

import "shotpress/internal/screenshot"

// Page geometry, in PDF points (1/72 inch). US Letter with one-inch margins;
// the cell width matches the three-inch images the tool has always produced.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	Margin     = 72.0
	Gutter     = 36.0
	CellWidth  = 216.0
	CellHeight = PageHeight - 2*Margin
)

// Rect is a draw rectangle in page coordinates, origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// Cell places one screenshot on a page.
type Cell struct {
	Image screenshot.Artifact
	Row   int // global row index; one row per page
	Col   int // 0 or 1
	Box   Rect
}

// Page is one output page holding at most two cells.
type Page struct {
	Cells []Cell
}

// Document is the laid-out page model handed to the PDF assembler.
type Document struct {
	PageW float64
	PageH float64
	Pages []Page
}

// Build lays the screenshots out two per page in input order: image i lands
// on page i/2, column i%2. Deterministic; every artifact appears in exactly
// one cell.
func Build(shots []screenshot.Artifact) Document {
	doc := Document{PageW: PageWidth, PageH: PageHeight}
	if len(shots) == 0 {
		return doc
	}

	doc.Pages = make([]Page, (len(shots)+1)/2)
	for i, shot := range shots {
		page := i / 2
		col := i % 2
		cell := Cell{
			Image: shot,
			Row:   page,
			Col:   col,
			Box:   fit(shot.Width, shot.Height, cellOrigin(col)),
		}
		doc.Pages[page].Cells = append(doc.Pages[page].Cells, cell)
	}
	return doc
}

// cellOrigin returns the cell box for the given column.
func cellOrigin(col int) Rect {
	x := Margin + float64(col)*(CellWidth+Gutter)
	return Rect{X: x, Y: Margin, W: CellWidth, H: CellHeight}
}

// fit aspect-fits a w x h pixel image into the cell, scaling down only
// (72 dpi natural size is the ceiling) and centering the result.
func fit(w, h int, cell Rect) Rect {
	iw, ih := float64(w), float64(h)
	if iw <= 0 || ih <= 0 {
		return Rect{X: cell.X, Y: cell.Y}
	}

	scale := 1.0
	if s := cell.W / iw; s < scale {
		scale = s
	}
	if s := cell.H / ih; s < scale {
		scale = s
	}

	dw, dh := iw*scale, ih*scale
	return Rect{
		X: cell.X + (cell.W-dw)/2,
		Y: cell.Y + (cell.H-dh)/2,
		W: dw,
		H: dh,
	}
}
