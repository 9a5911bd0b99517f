package redact

import "strings"

// DefaultStart and DefaultEnd are the marker strings used when the
// configuration does not override them.
const (
	DefaultStart = "hide-start"
	DefaultEnd   = "hide-end"
)

// Markers holds the literal start/end strings that delimit hidden regions.
// A line containing Start opens a region; the next line containing End closes
// it. Matching is plain substring containment, not regex.
type Markers struct {
	Start string
	End   string
}

// Default returns the stock marker pair.
func Default() Markers {
	return Markers{Start: DefaultStart, End: DefaultEnd}
}

// Lines removes every marked region from lines and returns the remainder.
//
// A region runs from a line containing the start marker through the next line
// containing the end marker, inclusive. Regions do not nest: a start marker
// inside an open region is ordinary text. A start marker with no matching end
// marker removes everything through the end of the input. The input slice is
// never modified.
func Lines(lines []string, m Markers) []string {
	out := make([]string, 0, len(lines))
	hiding := false
	for _, line := range lines {
		if hiding {
			if strings.Contains(line, m.End) {
				hiding = false
			}
			continue
		}
		if strings.Contains(line, m.Start) {
			hiding = true
			continue
		}
		out = append(out, line)
	}
	return out
}

// Text applies Lines to newline-separated text, preserving whether the input
// ended with a newline.
func Text(text string, m Markers) string {
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = strings.TrimSuffix(text, "\n")
	}
	lines := strings.Split(text, "\n")
	kept := Lines(lines, m)
	out := strings.Join(kept, "\n")
	if trailing && out != "" {
		out += "\n"
	}
	return out
}
