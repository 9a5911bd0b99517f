// Package config builds the single validated configuration for a run.
//
// Values layer in the usual order: built-in defaults, then an optional
// shotpress.yaml in the project directory, then SHOTPRESS_* environment
// variables, then command-line flags. The merged Config is validated once at
// startup (markers non-empty and distinct, project and output directories
// usable) and then passed explicitly to each pipeline stage.
package config
