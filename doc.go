// Package heightfield is a small toolkit for regular 2-D height grids:
// store them, query them, interpolate between vertices, and move them in
// and out of text dumps and 8-bit greyscale images.
//
// 🚀 What is in the box?
//
//	• grid      – HeightField storage, range min/max, bilinear interpolation
//	• textio    – "sizeI sizeJ" text dumps with exact float32 round-trips
//	• imageio   – PNG / BMP / TGA heightmaps (8-bit, bottom-left origin)
//	• generate  – reproducible Perlin-noise terrain
//	• cmd/hfield – info, convert, sample, generate and watch from the shell
//
// Coordinates are (j, i): j is the column along the X axis, i is the row
// along the Y axis, and vertex (j, i) is stored at index i*SizeJ + j.
//
// Quick ASCII example, a 2×2 field:
//
//	i=1   2 ─── 3
//	      │     │
//	i=0   0 ─── 1
//	     j=0   j=1
//
// InterpolatedZ(0.5, 0.5, 1) on this field is 1.5.
//
//	go get github.com/katalvlaran/heightfield/grid
package heightfield
