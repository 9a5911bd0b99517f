package redact

import (
	"reflect"
	"testing"
)

func TestLines(t *testing.T) {
	m := Markers{Start: "# hide-start", End: "# hide-end"}

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			"basic region removed",
			[]string{"a", "# hide-start", "b", "# hide-end", "c"},
			[]string{"a", "c"},
		},
		{
			"no markers is identity",
			[]string{"package main", "", "func main() {}"},
			[]string{"package main", "", "func main() {}"},
		},
		{
			"empty input",
			[]string{},
			[]string{},
		},
		{
			"unterminated region removes to end",
			[]string{"a", "# hide-start", "b", "c"},
			[]string{"a"},
		},
		{
			"multiple independent regions",
			[]string{"a", "# hide-start", "x", "# hide-end", "b", "# hide-start", "y", "# hide-end", "c"},
			[]string{"a", "b", "c"},
		},
		{
			"nested start is plain text",
			[]string{"a", "# hide-start", "# hide-start", "x", "# hide-end", "b"},
			[]string{"a", "b"},
		},
		{
			"marker as substring of a longer line",
			[]string{"keep", "   // # hide-start secret section", "gone", "end here # hide-end trailing", "keep too"},
			[]string{"keep", "keep too"},
		},
		{
			"region at start of input",
			[]string{"# hide-start", "x", "# hide-end", "a"},
			[]string{"a"},
		},
		{
			"whole input is one region",
			[]string{"# hide-start", "x", "# hide-end"},
			[]string{},
		},
		{
			"end marker without open region is kept",
			[]string{"a", "# hide-end", "b"},
			[]string{"a", "# hide-end", "b"},
		},
		{
			"start and end on one line removes only that line",
			[]string{"a", "# hide-start stuff # hide-end", "b"},
			// The line opens a region; the end marker is on the same line
			// but the region closes on the NEXT line containing the end
			// marker, so only this line is consumed as the opener and the
			// region stays open until another end marker or EOF.
			[]string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.input, m)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLines_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "hide-start", "b", "hide-end", "c"}
	orig := make([]string, len(in))
	copy(orig, in)

	Lines(in, Default())

	if !reflect.DeepEqual(in, orig) {
		t.Errorf("input mutated: %v, want %v", in, orig)
	}
}

func TestText(t *testing.T) {
	m := Default()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing newline preserved", "a\nhide-start\nb\nhide-end\nc\n", "a\nc\n"},
		{"no trailing newline preserved", "a\nhide-start\nb\nhide-end\nc", "a\nc"},
		{"no markers unchanged", "a\nb\nc\n", "a\nb\nc\n"},
		{"everything removed", "hide-start\nx\nhide-end\n", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input, m); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestText_Idempotent(t *testing.T) {
	m := Default()
	input := "a\nhide-start\nb\nhide-end\nc\n"

	once := Text(input, m)
	twice := Text(once, m)

	if once != twice {
		t.Errorf("redaction not idempotent: first %q, second %q", once, twice)
	}
}
