//go:build mage

// Package main contains Mage build targets for shotpress developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "shotpress"
	cmdPkg  = "./cmd/shotpress"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes the bin directory and any retained .clean artifacts in the
// working tree.
func Clean() error {
	if err := sh.Rm(binDir); err != nil {
		return err
	}
	return filepath.WalkDir(".", func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		base := filepath.Base(path)
		if ext := filepath.Ext(base); ext == ".clean" ||
			filepath.Ext(base[:len(base)-len(ext)]) == ".clean" {
			fmt.Println("  rm", path)
			return os.Remove(path)
		}
		return nil
	})
}
