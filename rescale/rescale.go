// Package rescale maps bounding boxes between a source image space and a
// differently sized workspace viewport, preserving aspect ratio and keeping
// the result visible on screen.
package rescale

// Space declares the coordinate space of an input box. The original tool
// guessed the space from the magnitude of the values; that guess is kept
// available as SpaceAuto for compatibility, but callers that know their
// space should say so.
type Space int

const (
	// SpaceAuto treats boxes whose four values are all <= 100 as
	// percentages and everything else as pixels.
	SpaceAuto Space = iota
	// SpacePercent interprets values as percentages of the source
	// reference size.
	SpacePercent
	// SpacePixel interprets values as source-image pixels.
	SpacePixel
)

func (s Space) String() string {
	switch s {
	case SpaceAuto:
		return "auto"
	case SpacePercent:
		return "percent"
	case SpacePixel:
		return "pixel"
	default:
		return "unknown"
	}
}

const (
	// DefaultSourceRef is the assumed source image edge length when the
	// caller does not provide one.
	DefaultSourceRef = 1024

	// MinMargin keeps placed boxes off the viewport edges.
	MinMargin = 10
	// TopMargin is larger than MinMargin so letters are not cropped at the
	// top of the workspace.
	TopMargin = 20

	// MinVisible is the floor on either placed dimension; smaller boxes are
	// uniformly upscaled until both dimensions clear it.
	MinVisible = 25
)

// Placement is a box positioned inside a destination viewport, plus the
// uniform scale factor that was applied, kept for debug and audit output.
type Placement struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	Scale float64
}

// Place maps the box (x, y, w, h) from source space into a viewport of
// vpW x vpH. srcRef is the source reference edge length; pass 0 for
// DefaultSourceRef. The scaled source square is centered in the viewport,
// the box is clamped inside the margins, and sub-MinVisible boxes are
// boosted preserving aspect ratio.
func Place(x, y, w, h float64, space Space, srcRef float64, vpW, vpH float64) Placement {
	if srcRef <= 0 {
		srcRef = DefaultSourceRef
	}

	if space == SpaceAuto {
		if x <= 100 && y <= 100 && w <= 100 && h <= 100 {
			space = SpacePercent
		} else {
			space = SpacePixel
		}
	}
	if space == SpacePercent {
		x = x / 100 * srcRef
		y = y / 100 * srcRef
		w = w / 100 * srcRef
		h = h / 100 * srcRef
	}

	scale := vpW / srcRef
	if vpH/srcRef < scale {
		scale = vpH / srcRef
	}
	offsetX := (vpW - srcRef*scale) / 2
	offsetY := (vpH - srcRef*scale) / 2

	p := Placement{
		X:     offsetX + x*scale,
		Y:     offsetY + y*scale,
		W:     w * scale,
		H:     h * scale,
		Scale: scale,
	}

	p = boost(p)
	p = clamp(p, vpW, vpH)
	return p
}

// boost uniformly upscales the placement until both dimensions clear
// MinVisible.
func boost(p Placement) Placement {
	if p.W <= 0 || p.H <= 0 {
		return p
	}
	if p.W >= MinVisible && p.H >= MinVisible {
		return p
	}
	factor := MinVisible / p.W
	if f := MinVisible / p.H; f > factor {
		factor = f
	}
	p.W *= factor
	p.H *= factor
	p.Scale *= factor
	return p
}

// clamp keeps the placement inside the viewport margins. When the box is
// wider or taller than the available span the minimum margin wins.
func clamp(p Placement, vpW, vpH float64) Placement {
	maxX := vpW - p.W - MinMargin
	if p.X > maxX {
		p.X = maxX
	}
	if p.X < MinMargin {
		p.X = MinMargin
	}
	maxY := vpH - p.H - MinMargin
	if p.Y > maxY {
		p.Y = maxY
	}
	if p.Y < TopMargin {
		p.Y = TopMargin
	}
	return p
}
