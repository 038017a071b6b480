// SPDX-License-Identifier: MIT

// Package imageio builds a grid.HeightField from a single-channel 8-bit
// image and renders a HeightField back into one.
//
// Inputs:
//
//   - PNG and BMP: *image.Gray (greyscale) or *image.Paletted (colour-mapped;
//     the palette index is the sample).
//   - TGA: image types 1/9 (colour-mapped) and 3/11 (greyscale) at 8 bits
//     per pixel, classified from the file header. TGA has no magic number,
//     so any stream that is neither PNG nor BMP is read as TGA.
//
// Layout:
//
//   - SizeJ is the image width and SizeI the image height. By default row
//     i=0 is the bottom image row (bottom-left origin); WithTopLeftOrigin
//     keeps the image's own row order.
//   - Each sample b becomes b*zScale/255 (see grid.NewFromBytes).
//
// Errors:
//
//   - ErrUnreadable: the file cannot be opened or the stream is not a valid
//     image.
//   - ErrUnsupportedFormat: a valid image that is not 8-bit single-channel.
//   - No partially built grid is ever returned.
package imageio
