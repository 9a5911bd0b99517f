// Package screenshot prepares screenshot images for publication.
//
// Each input image is decoded (PNG, JPEG, GIF, BMP, TIFF, and WebP are
// supported), has its configured regions masked with a solid fill, and is
// re-encoded as a PNG so every downstream artifact shares one format.
// Mask regions come from a YAML file mapping image base names to pixel
// rectangles; images without an entry pass through unmasked.
package screenshot
