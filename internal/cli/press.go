package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"shotpress/internal/assemble"
	"shotpress/internal/config"
	"shotpress/internal/fault"
	"shotpress/internal/layout"
	"shotpress/internal/screenshot"
	"shotpress/internal/source"
)

var (
	flagCode        []string
	flagScreenshots []string
	flagOutput      string
	flagHideStart   string
	flagHideEnd     string
	flagRegions     string
	flagKeepTemp    bool
)

func init() {
	rootCmd.Flags().StringArrayVar(&flagCode, "code", nil, "Code file globs, relative to the project dir (repeatable)")
	rootCmd.Flags().StringArrayVar(&flagScreenshots, "screenshots", nil, "Screenshot file globs, relative to the project dir (repeatable)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output PDF path (default "+config.DefaultOutput+" in the project dir)")
	rootCmd.Flags().StringVar(&flagHideStart, "hide-start", "", "Marker opening a hidden region (default hide-start)")
	rootCmd.Flags().StringVar(&flagHideEnd, "hide-end", "", "Marker closing a hidden region (default hide-end)")
	rootCmd.Flags().StringVar(&flagRegions, "regions", "", "YAML file mapping screenshot names to mask rectangles")
	rootCmd.Flags().BoolVar(&flagKeepTemp, "keep-temp", false, "Retain cleaned copies next to their sources")
}

func buildOverrides(cmd *cobra.Command) config.Overrides {
	return config.Overrides{
		CodeGlobs:       flagCode,
		ScreenshotGlobs: flagScreenshots,
		Output:          flagOutput,
		HideStart:       flagHideStart,
		HideEnd:         flagHideEnd,
		RegionsFile:     flagRegions,
		KeepTemp:        flagKeepTemp,
		KeepTempSet:     cmd.Flags().Changed("keep-temp"),
	}
}

// runPress drives the whole pipeline: resolve inputs, redact code, clean
// screenshots, lay out, assemble. The first error aborts the run.
func runPress(cmd *cobra.Command, projectDir string) {
	cfg, err := config.Load(projectDir, buildOverrides(cmd))
	if err != nil {
		fail(err)
		return
	}

	codeFiles, shotFiles, err := resolveInputs(cfg)
	if err != nil {
		fail(err)
		return
	}
	if len(codeFiles)+len(shotFiles) == 0 {
		fail(fault.New(fault.Config, "no input files matched", cfg.ProjectDir))
		return
	}

	regions, err := screenshot.LoadRegions(cfg.RegionsFile)
	if err != nil {
		fail(err)
		return
	}

	// Temp artifacts live in a run-scoped directory unless retention is
	// requested, in which case cleaned copies sit next to their sources.
	destDir := ""
	if !cfg.KeepTemp {
		destDir, err = os.MkdirTemp("", "shotpress-")
		if err != nil {
			fail(fault.Wrap(fault.IO, "creating temp directory", "", err))
			return
		}
		defer os.RemoveAll(destDir)
	}

	if err := press(cfg, codeFiles, shotFiles, regions, destDir); err != nil {
		fail(err)
	}
}

// press runs the pipeline proper. Split from runPress so tests can drive it
// without cobra.
func press(cfg config.Config, codeFiles, shotFiles []string, regions screenshot.RegionMap, destDir string) error {
	markers := cfg.Markers()
	for i, path := range codeFiles {
		fmt.Fprintf(os.Stderr, "  code: %s\n", path)
		if _, err := source.Process(path, destDir, i, markers); err != nil {
			return err
		}
	}

	// Ordinals continue across both lists so code and screenshot artifacts
	// never collide in the shared temp dir.
	shots := make([]screenshot.Artifact, 0, len(shotFiles))
	for i, path := range shotFiles {
		fmt.Fprintf(os.Stderr, "  shot: %s\n", path)
		art, err := screenshot.Process(path, destDir, len(codeFiles)+i, regions[filepath.Base(path)])
		if err != nil {
			return err
		}
		shots = append(shots, art)
	}

	if len(shots) == 0 {
		fmt.Fprintln(os.Stderr, "no screenshots; PDF not written")
		return nil
	}

	doc := layout.Build(shots)
	if err := assemble.Write(doc, cfg.OutputPath()); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, assemble.Summary(doc, cfg.OutputPath()))
	return nil
}

// resolveInputs turns the configured globs into concrete file lists, or
// scans the project directory when no globs were given.
func resolveInputs(cfg config.Config) (codeFiles, shotFiles []string, err error) {
	if len(cfg.CodeGlobs) == 0 && len(cfg.ScreenshotGlobs) == 0 {
		return scanProject(cfg.ProjectDir, filepath.Base(cfg.OutputPath()))
	}

	codeFiles, err = resolveGlobs(cfg.ProjectDir, cfg.CodeGlobs)
	if err != nil {
		return nil, nil, err
	}
	shotFiles, err = resolveGlobs(cfg.ProjectDir, cfg.ScreenshotGlobs)
	if err != nil {
		return nil, nil, err
	}
	return codeFiles, shotFiles, nil
}

// resolveGlobs expands patterns relative to dir, preserving pattern order
// and dropping duplicates. Within one pattern, matches come back sorted.
// A literal pattern (no glob metacharacters) that names a nonexistent file
// is an IOError; a wildcard pattern matching nothing resolves to nothing.
func resolveGlobs(dir string, patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		full := pattern
		if !filepath.IsAbs(pattern) {
			full = filepath.Join(dir, pattern)
		}
		matches, err := filepath.Glob(full)
		if err != nil {
			return nil, fault.Wrap(fault.Config, "bad glob pattern", pattern, err)
		}
		if len(matches) == 0 && !strings.ContainsAny(pattern, "*?[") {
			return nil, fault.New(fault.IO, "input file not found", full)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out, nil
}

// scanProject classifies the project directory's entries in sorted order:
// image extensions are screenshots, remaining text files are code. Dotfiles,
// subdirectories, the output artifact, and binary files are skipped.
func scanProject(dir, outputBase string) (codeFiles, shotFiles []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fault.Wrap(fault.IO, "scanning project directory", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if name == outputBase || strings.HasSuffix(strings.ToLower(name), ".pdf") {
			continue
		}
		// Retained artifacts from a previous --keep-temp run are not inputs.
		if strings.Contains(name, ".clean.") || strings.HasSuffix(name, ".clean") {
			continue
		}
		path := filepath.Join(dir, name)
		if screenshot.IsImagePath(name) {
			shotFiles = append(shotFiles, path)
			continue
		}
		text, err := source.IsText(path)
		if err != nil {
			return nil, nil, err
		}
		if text {
			codeFiles = append(codeFiles, path)
		}
	}
	return codeFiles, shotFiles, nil
}

// fail prints the kind-tagged error and records the exit code.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if fault.KindOf(err) == fault.Config {
		exitCode = ExitConfigError
		return
	}
	exitCode = ExitRuntimeError
}
