// Package fractal draws recursive turtle figures: the spiral galaxy with
// star decorations and randomized child arms, and the branching trees.
//
// Every drawing routine takes its Cursor and random source explicitly and
// leaves the cursor's position and heading as it found them, so sibling
// branches can all start from one shared root.
package fractal
