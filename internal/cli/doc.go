// Package cli wires together the Cobra command tree for the shotpress binary.
//
// The root command runs the whole pipeline: configuration loading, input
// resolution, code and screenshot redaction, page layout, and PDF assembly,
// returning deterministic exit codes (0 success, 2 configuration problems,
// 1 everything else).
package cli
