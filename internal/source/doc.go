// Package source prepares code listings for publication: each input file is
// read, stripped of its marked regions, and written out as a cleaned copy,
// either into the run's temp directory or retained next to the source.
package source
