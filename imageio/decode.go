// SPDX-License-Identifier: MIT

package imageio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"github.com/katalvlaran/heightfield/grid"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
)

const (
	opDecode    = "Decode"
	opLoad      = "Load"
	opFromImage = "FromImage"
)

// Container formats recognised by Decode.
const (
	formatPNG = "png"
	formatBMP = "bmp"
	formatTGA = "tga"
)

var (
	pngMagic = []byte("\x89PNG\r\n\x1a\n")
	bmpMagic = []byte("BM")
)

var (
	errTGAEmpty = errors.New("tga: zero image size")
	errTGANoMap = errors.New("tga: colour-mapped image without a colour map")
)

// TGA header layout (all little-endian).
const (
	tgaHeaderLen     = 18
	tgaIDLength      = 0
	tgaColorMapType  = 1  // 0 none, 1 present
	tgaImageType     = 2  // see tgaType* below
	tgaMapFirst      = 3  // uint16, index of the first colour-map entry
	tgaMapLength     = 5  // uint16, number of entries
	tgaMapEntryBits  = 7  // bits per entry
	tgaWidth         = 12 // uint16
	tgaHeight        = 14 // uint16
	tgaPixelDepth    = 16 // bits per pixel
	tgaFooterLen     = 26 // TGA 2.0 footer, probed from the end by the decoder
	tgaMaxMapEntry   = 255
	tgaMapRGBEntry   = 24 // BGR colour-map entry, bits
	tgaMapAlphaEntry = 32 // BGRA colour-map entry, bits
)

// TGA image types.
const (
	tgaTypeNoData        = 0
	tgaTypeColorMapped   = 1
	tgaTypeTrueColor     = 2
	tgaTypeGreyscale     = 3
	tgaTypeRLEColorMap   = 9
	tgaTypeRLETrueColor  = 10
	tgaTypeRLEGreyscale  = 11
	tgaSingleChannelBits = 8
)

// Load reads the image file at path and builds a HeightField from it.
//
// Errors:
//   - ErrUnreadable (wrapping the os error) if the file cannot be opened.
//   - Everything Decode returns.
func Load(path string, zScale float32, opts ...Option) (*grid.HeightField, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, imageioErrorf(opLoad, unreadable(err))
	}
	defer f.Close()

	hf, err := Decode(f, zScale, opts...)
	if err != nil {
		return nil, imageioErrorf(opLoad, fmt.Errorf("%s: %w", path, err))
	}

	return hf, nil
}

// Decode reads a PNG, BMP or TGA image from r and builds a HeightField from
// its 8-bit samples scaled by zScale/255.
//
// Implementation:
//   - Stage 1: sniff the container from the leading bytes (PNG and BMP by
//     magic, anything else as TGA).
//   - Stage 2: for TGA, classify the header before decoding; only 8-bit
//     colour-mapped or greyscale images are decoded (see decodeTGA).
//   - Stage 3: hand the image to FromImage.
//
// Errors:
//   - ErrUnreadable for truncated or corrupt input.
//   - ErrUnsupportedFormat for images that are not single-channel 8-bit.
//   - grid errors from building the field (e.g. a NaN zScale).
func Decode(r io.Reader, zScale float32, opts ...Option) (*grid.HeightField, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(pngMagic)) // short reads are diagnosed per format

	var (
		img image.Image
		err error
	)
	switch sniff(head) {
	case formatPNG:
		img, err = png.Decode(br)
	case formatBMP:
		img, err = bmp.Decode(br)
	default:
		// decodeTGA classifies its own failures.
		if img, err = decodeTGA(br); err != nil {
			return nil, imageioErrorf(opDecode, err)
		}
	}
	if err != nil {
		return nil, imageioErrorf(opDecode, unreadable(err))
	}

	hf, err := FromImage(img, zScale, opts...)
	if err != nil {
		return nil, imageioErrorf(opDecode, err)
	}

	return hf, nil
}

// FromImage builds a HeightField from an already decoded image. Only
// *image.Gray and *image.Paletted are accepted; for the latter the palette
// index of each pixel is its sample.
//
// Errors:
//   - ErrUnsupportedFormat for any other image type.
//   - grid errors from grid.NewFromBytes (empty image, invalid zScale).
func FromImage(img image.Image, zScale float32, opts ...Option) (*grid.HeightField, error) {
	o := gatherOptions(opts...)

	gray, err := samples(img)
	if err != nil {
		return nil, imageioErrorf(opFromImage, err)
	}
	if o.resample {
		gray = toGray(resize.Resize(o.width, o.height, gray, o.resampler))
	}

	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	buf := make([]byte, w*h)
	for y := 0; y < h; y++ {
		i := y
		if !o.topLeft {
			i = h - 1 - y // bottom image row becomes i=0
		}
		copy(buf[i*w:(i+1)*w], gray.Pix[y*gray.Stride:y*gray.Stride+w])
	}

	hf, err := grid.NewFromBytes(h, w, zScale, buf)
	if err != nil {
		return nil, imageioErrorf(opFromImage, err)
	}

	return hf, nil
}

// samples returns the single-channel samples of img as an *image.Gray whose
// Rect starts at the origin.
func samples(img image.Image) (*image.Gray, error) {
	var (
		pix    []uint8
		stride int
	)
	switch m := img.(type) {
	case *image.Gray:
		pix, stride = m.Pix, m.Stride
	case *image.Paletted:
		pix, stride = m.Pix, m.Stride
	default:
		return nil, fmt.Errorf("%T: %w", img, ErrUnsupportedFormat)
	}

	b := img.Bounds()
	return &image.Gray{
		Pix:    pix,
		Stride: stride,
		Rect:   image.Rect(0, 0, b.Dx(), b.Dy()),
	}, nil
}

// toGray converts any image into an *image.Gray anchored at the origin.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return g
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return dst
}

// sniff names the container format from the first bytes of the stream.
func sniff(head []byte) string {
	switch {
	case bytes.HasPrefix(head, pngMagic):
		return formatPNG
	case bytes.HasPrefix(head, bmpMagic):
		return formatBMP
	default:
		return formatTGA
	}
}

// decodeTGA decodes a TGA stream into an *image.Gray whose samples are the
// stored 8-bit values: grey levels, or palette indices for colour-mapped
// images.
//
// Implementation:
//   - Stage 1: buffer the whole file and classify its header.
//   - Stage 2: for colour-mapped images replace the colour map with an
//     identity grey ramp, so the decoder's RGBA expansion reduces back to
//     the index.
//   - Stage 3: pad short files to the footer length; the decoder seeks
//     tgaFooterLen bytes back from the end and fails on anything shorter.
func decodeTGA(r io.Reader) (*image.Gray, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, unreadable(err)
	}
	if err = classifyTGA(buf); err != nil {
		return nil, err
	}
	if t := buf[tgaImageType]; t == tgaTypeColorMapped || t == tgaTypeRLEColorMap {
		if err = identityColorMap(buf); err != nil {
			return nil, err
		}
	}
	if n := len(buf); n < tgaFooterLen {
		// Zero padding never matches the footer signature.
		buf = append(buf, make([]byte, tgaFooterLen-n)...)
	}

	img, err := tga.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, unreadable(err)
	}

	return toGray(img), nil
}

// identityColorMap overwrites the colour map in buf so that entry e is the
// grey level first+e (capped at 255) and fully opaque.
func identityColorMap(buf []byte) error {
	if buf[tgaColorMapType] != 1 {
		return unreadable(errTGANoMap)
	}
	bits := int(buf[tgaMapEntryBits])
	if bits != tgaMapRGBEntry && bits != tgaMapAlphaEntry {
		return fmt.Errorf("tga: %d-bit colour map: %w", bits, ErrUnsupportedFormat)
	}
	first := int(binary.LittleEndian.Uint16(buf[tgaMapFirst:]))
	length := int(binary.LittleEndian.Uint16(buf[tgaMapLength:]))
	size := bits / 8
	start := tgaHeaderLen + int(buf[tgaIDLength])
	end := start + length*size
	if end > len(buf) {
		return unreadable(fmt.Errorf("tga: colour map: %w", io.ErrUnexpectedEOF))
	}

	for e := 0; e < length; e++ {
		v := uint8(min(first+e, tgaMaxMapEntry))
		entry := buf[start+e*size : start+(e+1)*size]
		entry[0], entry[1], entry[2] = v, v, v // BGR
		if size == tgaMapAlphaEntry/8 {
			entry[3] = 0xff
		}
	}

	return nil
}

// classifyTGA accepts 8-bit colour-mapped and greyscale TGA headers.
// A header that is not TGA at all is ErrUnreadable; a valid TGA with another
// pixel layout is ErrUnsupportedFormat.
func classifyTGA(head []byte) error {
	if len(head) < tgaHeaderLen {
		return unreadable(fmt.Errorf("tga: %d-byte header: %w", len(head), io.ErrUnexpectedEOF))
	}
	if head[tgaColorMapType] > 1 {
		return unreadable(fmt.Errorf("tga: color map type %d", head[tgaColorMapType]))
	}
	if binary.LittleEndian.Uint16(head[tgaWidth:]) == 0 || binary.LittleEndian.Uint16(head[tgaHeight:]) == 0 {
		return unreadable(errTGAEmpty)
	}

	switch t := head[tgaImageType]; t {
	case tgaTypeColorMapped, tgaTypeRLEColorMap, tgaTypeGreyscale, tgaTypeRLEGreyscale:
		if head[tgaPixelDepth] != tgaSingleChannelBits {
			return fmt.Errorf("tga: type %d at %d bits per pixel: %w", t, head[tgaPixelDepth], ErrUnsupportedFormat)
		}
		return nil
	case tgaTypeNoData, tgaTypeTrueColor, tgaTypeRLETrueColor:
		return fmt.Errorf("tga: type %d: %w", t, ErrUnsupportedFormat)
	default:
		return unreadable(fmt.Errorf("tga: unknown image type %d", t))
	}
}
