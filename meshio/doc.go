// Package meshio reads and writes the plain-text mesh format of spec.md
// §6: a header line `v f e`, then v point lines of three floats, then f
// face lines of the form `3 a b c`. It is a line-oriented bufio.Scanner
// decoder in the shape of the pack's OBJ-style mesh loaders: scan, split
// fields, parse, accumulate into slices.
package meshio
