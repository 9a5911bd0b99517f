// Shotpress is a batch content-preparation CLI: it strips marked regions
// from code listings and screenshot images, then lays the cleaned
// screenshots out two per page in a single PDF.
//
// Usage:
//
//	shotpress                          # scan the current directory
//	shotpress ./demo                   # scan another project directory
//	shotpress --code '*.py' --screenshots 'shots/*.png' -o deck.pdf
//	shotpress --hide-start '# cut' --hide-end '# end-cut' --keep-temp
//
// Regions to mask inside screenshots come from a YAML file passed with
// --regions, mapping image base names to pixel rectangles.
package main
