// Package palette implements curated color palettes, palette synthesis, and
// nearest-match pixel remapping.
//
// A small set of base colors (typically around 8) is expanded into a
// candidate set of tints, shades, and pairwise blends before matching.
// Because the candidate count grows quadratically with the base palette
// size, base palettes are kept small by convention; 8 colors already
// produce 140 candidates.
//
// Matching combines a luminosity term with an RGB distance term and resolves
// ties by scan order over the luminosity-sorted candidate set, so remapping
// is deterministic for a given input.
package palette
