// Package fault defines the error taxonomy shared across the pipeline.
//
// Every failure surfaced to the user carries one of four kinds: ConfigError
// for bad flags or markers, IOError for unreadable or unwritable files,
// ImageDecodeError for corrupt image data, and WriteError for PDF output
// failures. The kind drives the process exit code and prefixes the printed
// message together with the failing path.
package fault
