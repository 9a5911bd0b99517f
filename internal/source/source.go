package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"shotpress/internal/fault"
	"shotpress/internal/redact"
)

// sniffLen is how much of a file is inspected to decide text vs binary.
const sniffLen = 1024

// Artifact records a cleaned code file and where it came from.
type Artifact struct {
	Source  string // original path
	Cleaned string // path of the redacted copy
}

// IsText reports whether the file at path looks like text, using the
// presence of a NUL byte in the first KiB as the binary signal.
func IsText(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fault.Wrap(fault.IO, "reading code file", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fault.Wrap(fault.IO, "reading code file", path, err)
	}
	// Zero-length files count as text.
	return !bytes.ContainsRune(buf[:n], 0), nil
}

// CleanedPath returns where the redacted copy of path goes. With a non-empty
// destDir the copy lands there, ordinal-prefixed so inputs sharing a base
// name cannot overwrite each other; otherwise it is retained next to the
// source as <name>.clean<ext>.
func CleanedPath(path, destDir string, seq int) string {
	if destDir != "" {
		return filepath.Join(destDir, fmt.Sprintf("%04d_%s", seq, filepath.Base(path)))
	}
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + ".clean" + ext
}

// Process reads one code file, strips marked regions, and writes the cleaned
// copy. Binary files are rejected rather than silently mangled. seq is the
// input's position in the run, used to keep temp destinations distinct.
func Process(path, destDir string, seq int, m redact.Markers) (Artifact, error) {
	text, err := IsText(path)
	if err != nil {
		return Artifact{}, err
	}
	if !text {
		return Artifact{}, fault.New(fault.IO, "not a text file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fault.Wrap(fault.IO, "reading code file", path, err)
	}

	cleaned := redact.Text(string(data), m)

	out := CleanedPath(path, destDir, seq)
	if err := os.WriteFile(out, []byte(cleaned), 0o644); err != nil {
		return Artifact{}, fault.Wrap(fault.IO, "writing cleaned code file", out, err)
	}
	return Artifact{Source: path, Cleaned: out}, nil
}
