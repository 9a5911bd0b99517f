// Package assemble serializes the laid-out page model into a PDF file.
package assemble
