// Package render draws computed boards into raster images for previews,
// debugging and documentation.
//
// Draw paints, in order: an optional background image scaled to the
// canvas, every cell filled with a colour from a greedy adjacency colouring
// (no two neighbouring cells share a colour while the palette lasts), every
// edge including dangling ones, every vertex as a dot, and optionally the
// cell IDs at the cell centroids.
//
// Board coordinates are y-up; the image is y-down. Draw fits the board's
// bounding box into the canvas minus padding, keeps the aspect ratio and
// flips the y axis (see WithFlipY).
//
// Rasterisation uses draw2d, labels use the fixed 7×13 face from
// golang.org/x/image, and Thumbnail resamples with bild.
package render
