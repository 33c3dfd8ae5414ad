// Package composite copies located regions out of a source image into
// freshly allocated buffers, one per region, leaving the source untouched.
package composite

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/animlab/spritecut/region"
)

// Canvas floors guarantee a renderable output even for tiny regions; the
// cut content is centered on the floor-sized canvas.
const (
	SymbolFloor = 80
	LetterFloor = 60
)

// Cut copies exactly the given (already padded and clamped) box out of src
// into a new RGBA buffer. The output canvas is at least floorW x floorH;
// when the box is smaller than the floor the content is centered. A box with
// no positive area yields nil.
func Cut(src image.Image, b region.Box, floorW, floorH int) *image.RGBA {
	if src == nil || !b.Valid() {
		return nil
	}
	sb := src.Bounds()
	b = region.Clamp(b, sb.Dx(), sb.Dy())
	if !b.Valid() {
		return nil
	}

	outW, outH := b.W, b.H
	if outW < floorW {
		outW = floorW
	}
	if outH < floorH {
		outH = floorH
	}

	out := image.NewRGBA(image.Rect(0, 0, outW, outH))
	dx := (outW - b.W) / 2
	dy := (outH - b.H) / 2
	dst := image.Rect(dx, dy, dx+b.W, dy+b.H)
	srcPt := image.Pt(sb.Min.X+b.X, sb.Min.Y+b.Y)
	draw.Draw(out, dst, src, srcPt, draw.Src)
	return out
}

// FitTo resamples src so it fits within maxW x maxH preserving aspect ratio.
// Images that already fit are returned converted but unscaled. Used for
// workspace-sized previews.
func FitTo(src image.Image, maxW, maxH int) *image.RGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}

	newW, newH := w, h
	if w > maxW || h > maxH {
		ratio := float64(maxW) / float64(w)
		if r := float64(maxH) / float64(h); r < ratio {
			ratio = r
		}
		newW = int(float64(w)*ratio + 0.5)
		newH = int(float64(h)*ratio + 0.5)
		if newW < 1 {
			newW = 1
		}
		if newH < 1 {
			newH = 1
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), src, b, xdraw.Src, nil)
	return out
}

// EncodePNG encodes img to PNG bytes, transparency preserved.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
