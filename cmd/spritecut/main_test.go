package main

import (
	"image"
	"math"
	"testing"

	"github.com/animlab/spritecut/extract"
	"github.com/animlab/spritecut/paytable"
	"github.com/animlab/spritecut/rescale"
)

func TestParseViewport(t *testing.T) {
	w, h, err := parseViewport("300x200")
	if err != nil {
		t.Fatalf("parseViewport failed: %v", err)
	}
	if w != 300 || h != 200 {
		t.Errorf("viewport = %vx%v, want 300x200", w, h)
	}

	for _, bad := range []string{"", "300", "0x200", "-1x100"} {
		if _, _, err := parseViewport(bad); err == nil {
			t.Errorf("parseViewport(%q) accepted bad input", bad)
		}
	}
}

func TestPreviewFitsViewport(t *testing.T) {
	r := extract.Region{
		Kind:  extract.KindSymbol,
		Image: image.NewRGBA(image.Rect(0, 0, 400, 400)),
	}
	fit := previewFor(r, 300, 200)
	if fit == nil {
		t.Fatal("previewFor returned nil for a region with an image")
	}
	b := fit.Bounds()
	if b.Dx() > 300 || b.Dy() > 200 {
		t.Errorf("preview %dx%d exceeds the viewport", b.Dx(), b.Dy())
	}
	// Square input fitted into 300x200 is bounded by the height.
	if b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("preview = %dx%d, want 200x200", b.Dx(), b.Dy())
	}

	if fit := previewFor(extract.Region{}, 300, 200); fit != nil {
		t.Error("previewFor produced a preview for an imageless region")
	}
}

func TestHintPlacement(t *testing.T) {
	slot := paytable.Slot{
		ID:   "wild",
		Hint: paytable.Hint{X: 20, Y: 10, W: 60, H: 60},
	}
	p := hintPlacement(slot, 1024, 300, 200)

	// Percent hint against a 1024 reference into 300x200: scale 200/1024,
	// horizontal centering offset 50.
	if math.Abs(p.X-90) > 1e-9 || math.Abs(p.Y-20) > 1e-9 {
		t.Errorf("placement origin = (%v, %v), want (90, 20)", p.X, p.Y)
	}
	if math.Abs(p.W-120) > 1e-9 || math.Abs(p.H-120) > 1e-9 {
		t.Errorf("placement size = %vx%v, want 120x120", p.W, p.H)
	}
	if p.X < rescale.MinMargin || p.Y < rescale.TopMargin {
		t.Errorf("placement (%v, %v) violates viewport margins", p.X, p.Y)
	}
}
