package region

import (
	"image"
)

// Box is an axis-aligned rectangle in source-image pixel coordinates.
type Box struct {
	X int
	Y int
	W int
	H int
}

// Valid reports whether the box has a positive area.
func (b Box) Valid() bool {
	return b.W > 0 && b.H > 0
}

// Band is a vertical slice of an image, expressed as fractions of its height.
// Top and Bottom are in [0, 1] with Top < Bottom.
type Band struct {
	Top    float64
	Bottom float64
}

// ScanResult is the tight bounding box of the content found in a band,
// together with the number of qualifying pixels. PixelCount doubles as a
// confidence signal: sparse noise below MinPixelCount is rejected.
type ScanResult struct {
	Bounds     Box
	PixelCount int
}

const (
	// AlphaThreshold is the opacity cutoff: a pixel counts as content only
	// if its alpha exceeds this value (more than 50% opaque, 8-bit scale).
	AlphaThreshold = 128

	// MinPixelCount is the minimum number of qualifying pixels for a scan
	// to be considered a real region rather than stray noise.
	MinPixelCount = 100
)

// Padding applied around located regions so decorative borders and glow are
// not clipped when the region is cut out.
const (
	SymbolPad  = 60
	LetterPadX = 25
	LetterPadY = 30
)

// Scan walks every pixel of img inside the given vertical band and
// accumulates the tight bounding box of pixels whose alpha exceeds
// AlphaThreshold. It reports ok=false when fewer than MinPixelCount
// qualifying pixels were found or no column span exists; the caller is
// expected to substitute a fallback box in that case. Scan never fails.
func Scan(img image.Image, band Band) (ScanResult, bool) {
	if img == nil {
		return ScanResult{}, false
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return ScanResult{}, false
	}

	startY := bounds.Min.Y + int(band.Top*float64(h))
	endY := bounds.Min.Y + int(band.Bottom*float64(h))
	if startY < bounds.Min.Y {
		startY = bounds.Min.Y
	}
	if endY > bounds.Max.Y {
		endY = bounds.Max.Y
	}

	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1
	count := 0

	for y := startY; y < endY; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if uint8(a>>8) <= AlphaThreshold {
				continue
			}
			count++
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if count < MinPixelCount || maxX <= minX {
		return ScanResult{}, false
	}

	return ScanResult{
		Bounds: Box{
			X: minX - bounds.Min.X,
			Y: minY - bounds.Min.Y,
			W: maxX - minX + 1,
			H: maxY - minY + 1,
		},
		PixelCount: count,
	}, true
}

// SymbolFallback is the box used when no symbol region is found:
// 60% width x 50% height, centered in the top half of the image. At 50% of
// the image height the box fills the top half exactly, so it starts at 0.
func SymbolFallback(imgW, imgH int) Box {
	return Box{
		X: imgW * 20 / 100,
		Y: 0,
		W: imgW * 60 / 100,
		H: imgH * 50 / 100,
	}
}

// TextFallback is the box used when no text region is found:
// 80% width x 30% height, centered in the lower band of the image.
func TextFallback(imgW, imgH int) Box {
	return Box{
		X: imgW * 10 / 100,
		Y: imgH * 60 / 100,
		W: imgW * 80 / 100,
		H: imgH * 30 / 100,
	}
}

// Pad grows b outward by px horizontally and py vertically, clamped so the
// padded box never extends past the image bounds.
func Pad(b Box, px, py, imgW, imgH int) Box {
	x0 := b.X - px
	y0 := b.Y - py
	x1 := b.X + b.W + px
	y1 := b.Y + b.H + py
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > imgW {
		x1 = imgW
	}
	if y1 > imgH {
		y1 = imgH
	}
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp restricts b to the image bounds, shrinking it as needed.
func Clamp(b Box, imgW, imgH int) Box {
	return Pad(b, 0, 0, imgW, imgH)
}
