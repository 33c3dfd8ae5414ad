package sharecode

import (
	"image"
	"testing"

	"github.com/animlab/spritecut/extract"
	"github.com/animlab/spritecut/region"
)

func sampleResult() extract.Result {
	return extract.Result{
		Symbol: extract.Region{
			Kind:   extract.KindSymbol,
			Bounds: region.Box{X: 240, Y: 90, W: 520, H: 470},
			Image:  image.NewRGBA(image.Rect(0, 0, 80, 80)),
		},
		Letters: []extract.Region{
			{Kind: extract.KindLetter, Char: 'W', Index: 0, Bounds: region.Box{X: 95, Y: 590, W: 288, H: 340}},
			{Kind: extract.KindLetter, Char: 'I', Index: 1, Bounds: region.Box{X: 330, Y: 590, W: 179, H: 340}},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	m := Build(sampleResult(), "wild", "WILD")

	code, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got.Version != ManifestVersion || got.Slot != "wild" || got.Word != "WILD" {
		t.Errorf("header = %+v", got)
	}
	if len(got.Regions) != 3 {
		t.Fatalf("got %d regions, want 3", len(got.Regions))
	}
	// Symbol always comes first, then letters left to right.
	if got.Regions[0].Kind != "symbol" {
		t.Errorf("first region kind = %s, want symbol", got.Regions[0].Kind)
	}
	if got.Regions[1].Char != "W" || got.Regions[2].Char != "I" {
		t.Errorf("letter order = %s, %s", got.Regions[1].Char, got.Regions[2].Char)
	}
	if got.Regions[1].X != 95 || got.Regions[1].W != 288 {
		t.Errorf("letter bounds = %+v", got.Regions[1])
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := Decode(""); err == nil {
		t.Fatal("expected error for empty code")
	}
}

func TestDecodeCorrupt(t *testing.T) {
	if _, err := Decode("!!!not-base64!!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	// Valid base64 but not gzip.
	if _, err := Decode("aGVsbG8"); err == nil {
		t.Fatal("expected error for non-gzip payload")
	}
}
