// Package imaging provides the pixel-level operations of the reference engine.
//
// This package implements raw RGBA buffer handling, dominant-color extraction,
// level reduction (quantize/posterize), grayscale conversion, smoothing, and
// image statistics. All operations work on PixelBuffer values: row-major
// 4-channel (R,G,B,A) byte buffers with a coordinate system where (0,0) is
// the top-left corner, X increases rightward, and Y increases downward.
//
// # Buffer Contract
//
// Buffers are treated as immutable: every transform validates its input
// geometry and allocates a fresh output buffer of identical dimensions.
// Aliasing between input and output is never used. The only hard failure
// class is invalid geometry (pixel data length not a multiple of 4, or
// inconsistent with width*height*4), which is rejected before any
// processing begins.
//
// # Degradation Instead of Errors
//
// Apart from geometry, operations degrade rather than fail:
//   - Malformed hex color strings parse as black
//   - Empty sample sets leave clustering seeds unchanged
//   - Out-of-range tunables (color count, stride, levels) are clamped
//
// # Thread Safety
//
// The BufferCache type is safe for concurrent use. Individual operations are
// pure functions without shared state and can be called concurrently.
//
// # Color Representation
//
// Colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB", uppercase (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// Luminosity uses the ITU-R BT.601 perceptual weighting
// (0.299*R + 0.587*G + 0.114*B) consistently across grayscale conversion,
// analysis, and palette matching.
package imaging
