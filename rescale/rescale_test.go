package rescale

import (
	"math"
	"testing"
)

func TestAutoDetectsPercent(t *testing.T) {
	// All four values <= 100: interpreted as percentages.
	auto := Place(10, 10, 50, 50, SpaceAuto, 1024, 2048, 2048)
	pct := Place(10, 10, 50, 50, SpacePercent, 1024, 2048, 2048)
	if auto != pct {
		t.Errorf("auto = %+v, percent = %+v", auto, pct)
	}
}

func TestAutoDetectsPixel(t *testing.T) {
	auto := Place(200, 150, 300, 300, SpaceAuto, 1024, 2048, 2048)
	px := Place(200, 150, 300, 300, SpacePixel, 1024, 2048, 2048)
	if auto != px {
		t.Errorf("auto = %+v, pixel = %+v", auto, px)
	}
	if pct := Place(200, 150, 300, 300, SpacePercent, 1024, 2048, 2048); auto == pct {
		t.Error("pixel box should not match percent interpretation")
	}
}

func TestAspectRatioPreserved(t *testing.T) {
	// 2:1 box, large enough that no minimum-size boost kicks in.
	p := Place(100, 100, 400, 200, SpacePixel, 1024, 300, 200)
	ratio := p.W / p.H
	if math.Abs(ratio-2.0) > 1e-9 {
		t.Errorf("aspect ratio = %v, want 2.0", ratio)
	}
}

func TestMinimumVisibility(t *testing.T) {
	p := Place(500, 500, 10, 5, SpacePixel, 1024, 300, 200)
	if p.W < MinVisible || p.H < MinVisible {
		t.Errorf("placement %vx%v below visibility floor %d", p.W, p.H, MinVisible)
	}
	// Boost is uniform: 2:1 ratio survives.
	if math.Abs(p.W/p.H-2.0) > 1e-9 {
		t.Errorf("boost broke aspect ratio: %v", p.W/p.H)
	}
}

func TestClampKeepsBoxInsideViewport(t *testing.T) {
	cases := []struct {
		name       string
		x, y, w, h float64
	}{
		{"near origin", 0, 0, 200, 200},
		{"near far corner", 1000, 1000, 200, 200},
		{"center", 400, 400, 200, 200},
	}
	for _, tc := range cases {
		p := Place(tc.x, tc.y, tc.w, tc.h, SpacePixel, 1024, 300, 200)
		if p.X < MinMargin {
			t.Errorf("%s: x = %v below margin", tc.name, p.X)
		}
		if p.Y < TopMargin {
			t.Errorf("%s: y = %v above top margin", tc.name, p.Y)
		}
		if p.X+p.W > 300-MinMargin {
			t.Errorf("%s: right edge %v outside viewport", tc.name, p.X+p.W)
		}
	}
}

func TestDefaultSourceRef(t *testing.T) {
	explicit := Place(200, 200, 300, 300, SpacePixel, 1024, 300, 200)
	implied := Place(200, 200, 300, 300, SpacePixel, 0, 300, 200)
	if explicit != implied {
		t.Errorf("srcRef 0 should fall back to %d: %+v vs %+v",
			DefaultSourceRef, explicit, implied)
	}
}

func TestScaleFactorReported(t *testing.T) {
	p := Place(0, 0, 512, 512, SpacePixel, 1024, 300, 200)
	want := 200.0 / 1024.0
	if math.Abs(p.Scale-want) > 1e-9 {
		t.Errorf("scale = %v, want %v", p.Scale, want)
	}
}

func TestSpaceString(t *testing.T) {
	if SpaceAuto.String() != "auto" || SpacePercent.String() != "percent" || SpacePixel.String() != "pixel" {
		t.Error("unexpected Space string values")
	}
}
