// Package detection implements the structural analysis half of the engine:
// Sobel edge fields, line thickening, connected-region segmentation,
// Moore-neighbor boundary tracing, and Ramer-Douglas-Peucker contour
// simplification.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at top-left. Segmentation
// regions are 4-connected; boundary tracing walks the 8-neighborhood.
//
// # Bounded Work
//
// Every algorithm in this package runs in bounded, iterative form.
// Segmentation uses an explicit queue and a visited slice scoped to one
// call; tracing caps its walk at min(2*regionSize, 10000) steps;
// simplification uses an explicit segment stack instead of recursion. These
// bounds keep worst-case behavior predictable on multi-megapixel inputs.
package detection
