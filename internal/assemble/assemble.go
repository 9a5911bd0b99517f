package assemble

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"shotpress/internal/fault"
	"shotpress/internal/layout"
)

// Write serializes the laid-out document to a single PDF at outPath.
// Pages carry only images: no text layer, no bookmarks, no encryption.
func Write(doc layout.Document, outPath string) error {
	if len(doc.Pages) == 0 {
		return fault.New(fault.Write, "document has no pages", outPath)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: doc.PageW, Ht: doc.PageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, cell := range page.Cells {
			opts := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.ImageOptions(cell.Image.Cleaned, cell.Box.X, cell.Box.Y, cell.Box.W, cell.Box.H, false, opts, 0, "")
		}
		if err := pdf.Error(); err != nil {
			return fault.Wrap(fault.Write, "assembling PDF page", outPath, err)
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fault.Wrap(fault.Write, "writing PDF", outPath, err)
	}
	return nil
}

// Summary returns the one-line completion message printed after a
// successful run.
func Summary(doc layout.Document, outPath string) string {
	images := 0
	for _, p := range doc.Pages {
		images += len(p.Cells)
	}
	return fmt.Sprintf("wrote %s (%d images on %d pages)", outPath, images, len(doc.Pages))
}
