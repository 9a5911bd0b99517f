package assemble

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shotpress/internal/fault"
	"shotpress/internal/layout"
	"shotpress/internal/screenshot"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	doc := layout.Build([]screenshot.Artifact{
		{Source: "a.png", Cleaned: writePNG(t, dir, "a.png", 120, 90), Width: 120, Height: 90},
		{Source: "b.png", Cleaned: writePNG(t, dir, "b.png", 64, 64), Width: 64, Height: 64},
		{Source: "c.png", Cleaned: writePNG(t, dir, "c.png", 300, 200), Width: 300, Height: 200},
	})

	out := filepath.Join(dir, "out.pdf")
	if err := Write(doc, out); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("PDF file is empty")
	}
	if !strings.HasPrefix(string(data[:8]), "%PDF-") {
		t.Errorf("output does not start with a PDF header: %q", data[:8])
	}
}

func TestWrite_EmptyDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	err := Write(layout.Document{PageW: 612, PageH: 792}, out)
	if err == nil {
		t.Fatal("Write() of empty document should fail")
	}
	if fault.KindOf(err) != fault.Write {
		t.Errorf("error kind = %q, want WriteError", fault.KindOf(err))
	}
}

func TestWrite_MissingImage(t *testing.T) {
	dir := t.TempDir()
	doc := layout.Build([]screenshot.Artifact{
		{Source: "a.png", Cleaned: filepath.Join(dir, "gone.png"), Width: 100, Height: 100},
	})

	err := Write(doc, filepath.Join(dir, "out.pdf"))
	if err == nil {
		t.Fatal("Write() with missing image should fail")
	}
	if fault.KindOf(err) != fault.Write {
		t.Errorf("error kind = %q, want WriteError", fault.KindOf(err))
	}
}

func TestWrite_UnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	doc := layout.Build([]screenshot.Artifact{
		{Source: "a.png", Cleaned: writePNG(t, dir, "a.png", 10, 10), Width: 10, Height: 10},
	})

	err := Write(doc, filepath.Join(dir, "no-such-dir", "out.pdf"))
	if err == nil {
		t.Fatal("Write() to missing directory should fail")
	}
	if fault.KindOf(err) != fault.Write {
		t.Errorf("error kind = %q, want WriteError", fault.KindOf(err))
	}
}

func TestSummary(t *testing.T) {
	dir := t.TempDir()
	doc := layout.Build([]screenshot.Artifact{
		{Source: "a.png", Cleaned: writePNG(t, dir, "a.png", 10, 10), Width: 10, Height: 10},
		{Source: "b.png", Cleaned: writePNG(t, dir, "b.png", 10, 10), Width: 10, Height: 10},
		{Source: "c.png", Cleaned: writePNG(t, dir, "c.png", 10, 10), Width: 10, Height: 10},
	})

	got := Summary(doc, "out.pdf")
	if !strings.Contains(got, "3 images") || !strings.Contains(got, "2 pages") {
		t.Errorf("Summary() = %q, want it to mention 3 images and 2 pages", got)
	}
}
