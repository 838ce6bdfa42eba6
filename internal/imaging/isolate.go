package imaging

import (
	"fmt"
	"image"
	"sync/atomic"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Stats counts the pixels visited by an isolation pass.
type Stats struct {
	Isolated  int `json:"isolated"`  // pixels reduced to the selected channel
	Preserved int `json:"preserved"` // achromatic pixels left unchanged
}

// IsAchromatic reports whether a pixel is neutral: red, green and blue equal.
func IsAchromatic(r, g, b uint8) bool {
	return r == g && g == b
}

// Flatten returns an 8-bit NRGBA copy of img rebased at (0,0) with alpha
// discarded. Color values are kept as stored; translucent pixels are not
// composited onto any background.
func Flatten(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// Isolate returns a flattened copy of img in which every non-achromatic pixel
// keeps only the ch component. img is not modified.
//
// The result always has the same width and height as img.
func Isolate(img image.Image, ch Channel) (*image.NRGBA, error) {
	if !ch.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidChannel, ch)
	}
	dst := Flatten(img)
	if _, err := IsolateInPlace(dst, ch); err != nil {
		return nil, err
	}
	return dst, nil
}

// IsolateInPlace applies the isolation rule to every pixel of dst.
//
// For each pixel:
//   - if R == G == B the pixel is left unchanged
//   - otherwise the two components other than ch are set to zero
//
// Alpha bytes are not touched. Rows are processed in parallel ranges.
func IsolateInPlace(dst *image.NRGBA, ch Channel) (Stats, error) {
	if !ch.Valid() {
		return Stats{}, fmt.Errorf("%w: %s", ErrInvalidChannel, ch)
	}

	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return Stats{}, nil
	}

	idx := ch.Index()
	var isolated, preserved int64

	parallel.Line(h, func(start, end int) {
		var iso, pre int64
		for y := start; y < end; y++ {
			i := dst.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := dst.Pix[i : i+w*4 : i+w*4]
			for x := 0; x < w; x++ {
				px := row[x*4 : x*4+3 : x*4+3]
				if IsAchromatic(px[0], px[1], px[2]) {
					pre++
					continue
				}
				keep := px[idx]
				px[0], px[1], px[2] = 0, 0, 0
				px[idx] = keep
				iso++
			}
		}
		atomic.AddInt64(&isolated, iso)
		atomic.AddInt64(&preserved, pre)
	})

	return Stats{Isolated: int(isolated), Preserved: int(preserved)}, nil
}
