package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"shotpress/internal/fault"
)

// maskColor fills redacted regions. Matches the dark editor background the
// listings are rendered on, so masked areas read as intentional blanks.
var maskColor = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}

// imageExts are the screenshot extensions recognized in directory scans.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// IsImagePath reports whether path has a recognized screenshot extension.
func IsImagePath(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// Artifact records a cleaned screenshot, its origin, and its pixel size.
type Artifact struct {
	Source  string
	Cleaned string // always a PNG
	Width   int
	Height  int
}

// CleanedPath returns where the cleaned PNG for path goes. With a non-empty
// destDir it lands there, ordinal-prefixed so inputs sharing a base name
// cannot overwrite each other; otherwise it is retained next to the source
// as <name>.clean.png.
func CleanedPath(path, destDir string, seq int) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if destDir != "" {
		return filepath.Join(destDir, fmt.Sprintf("%04d_%s.png", seq, base))
	}
	return filepath.Join(filepath.Dir(path), base+".clean.png")
}

// Process loads one screenshot, masks the given regions, and writes the
// cleaned image as a PNG. Regions outside the image bounds are clipped;
// regions entirely outside are ignored. Images with no regions still get
// re-encoded so every downstream artifact is a PNG. seq is the input's
// position in the run, used to keep temp destinations distinct.
func Process(path, destDir string, seq int, regions []Region) (Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return Artifact{}, fault.Wrap(fault.IO, "reading screenshot", path, err)
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return Artifact{}, fault.Wrap(fault.ImageDecode, "decoding screenshot", path, err)
	}

	// Normalize to NRGBA so masking and PNG encoding work uniformly.
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)

	for _, r := range regions {
		clipped := r.rect().Intersect(img.Bounds())
		if clipped.Empty() {
			continue
		}
		draw.Draw(img, clipped, image.NewUniform(maskColor), image.Point{}, draw.Src)
	}

	out := CleanedPath(path, destDir, seq)
	dst, err := os.Create(out)
	if err != nil {
		return Artifact{}, fault.Wrap(fault.IO, "writing cleaned screenshot", out, err)
	}
	if err := png.Encode(dst, img); err != nil {
		dst.Close()
		return Artifact{}, fault.Wrap(fault.IO, "writing cleaned screenshot", out, err)
	}
	if err := dst.Close(); err != nil {
		return Artifact{}, fault.Wrap(fault.IO, "writing cleaned screenshot", out, err)
	}

	return Artifact{
		Source:  path,
		Cleaned: out,
		Width:   img.Bounds().Dx(),
		Height:  img.Bounds().Dy(),
	}, nil
}
