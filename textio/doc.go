// Package textio reads and writes a grid.HeightField as whitespace-delimited
// text.
//
// Format:
//
//	<sizeI> <sizeJ>
//	z(0,0) z(1,0) ... z(sizeJ-1,0)
//	...
//	z(0,sizeI-1) ... z(sizeJ-1,sizeI-1)
//
// Every value is followed by one space and every row ends with a newline.
// Values are written in the shortest form that parses back to the same
// float32, so Write followed by Read reproduces the grid exactly.
//
// Read accepts any whitespace between tokens. It never fills a grid the
// caller already owns: a new grid is returned on success and nothing on
// failure.
package textio
