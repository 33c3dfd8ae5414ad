// Package extract runs the sprite extraction pipeline: locate the main
// symbol and the rendered word in a decoded slot-symbol image, split the
// word into per-letter boxes, and cut every region into its own buffer.
//
// A run is synchronous and self-contained: each call allocates its own
// buffers and touches no shared state, so independent runs may interleave
// freely. Per-region scan failures are absorbed into documented fallback
// boxes; only an image decode failure is a hard error.
package extract

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/animlab/spritecut/composite"
	"github.com/animlab/spritecut/letters"
	"github.com/animlab/spritecut/region"
)

// ErrNilImage is returned when Run is handed no source image.
var ErrNilImage = errors.New("extract: nil source image")

// Decode reads and decodes the source artwork. A failure here is the one
// hard error of the pipeline: the caller gets it together with an empty
// Result and must not use any region.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("extract: decode source image: %w", err)
	}
	extLog.Debug().Str("format", format).Msg("source image decoded")
	return img, nil
}

// Run executes the pipeline for one request: symbol scan, then text scan,
// then letter split, then compositing, in that order. The symbol region is
// always produced first in the result, followed by letters left to right.
func Run(req Request, src image.Image) (Result, error) {
	res := Result{Token: req.Token}
	if src == nil {
		return res, ErrNilImage
	}

	word := strings.ToUpper(strings.TrimSpace(req.Word))
	if req.Lettered && word == "" {
		return res, fmt.Errorf("extract: lettered request %s has empty word", req.Token)
	}

	b := src.Bounds()
	imgW, imgH := b.Dx(), b.Dy()

	symBox := scanOrFallback(&res, src, req, true, imgW, imgH)
	symBox = region.Pad(symBox, region.SymbolPad, region.SymbolPad, imgW, imgH)
	res.Symbol = Region{
		Kind:   KindSymbol,
		Bounds: symBox,
		Image:  composite.Cut(src, symBox, composite.SymbolFloor, composite.SymbolFloor),
	}

	if !req.Lettered {
		extLog.Info().
			Stringer("token", req.Token).
			Bool("fallback", res.FallbackUsed).
			Msg("extraction complete, no letters requested")
		return res, nil
	}

	textBox := scanOrFallback(&res, src, req, false, imgW, imgH)
	boxes, err := letters.Split(textBox, word)
	if err != nil {
		return res, fmt.Errorf("extract: split %q: %w", word, err)
	}
	if len(boxes) != len(word) {
		// Structurally impossible, but a mismatch here would misattribute
		// every downstream letter, so fall back to an even division.
		extLog.Warn().
			Stringer("token", req.Token).
			Int("got", len(boxes)).
			Int("want", len(word)).
			Msg("letter count mismatch, using equal split")
		boxes = letters.EqualSplit(textBox, word)
	}

	res.Letters = make([]Region, 0, len(boxes))
	for i, lb := range boxes {
		padded := region.Pad(lb.Bounds, region.LetterPadX, region.LetterPadY, imgW, imgH)
		if !padded.Valid() {
			extLog.Warn().
				Stringer("token", req.Token).
				Str("char", string(lb.Char)).
				Int("index", i).
				Msg("letter box collapsed after clamping, skipping region")
			continue
		}
		res.Letters = append(res.Letters, Region{
			Kind:   KindLetter,
			Char:   lb.Char,
			Index:  i,
			Bounds: padded,
			Image:  composite.Cut(src, padded, composite.LetterFloor, composite.LetterFloor),
		})
	}

	extLog.Info().
		Stringer("token", req.Token).
		Str("word", word).
		Int("letters", len(res.Letters)).
		Bool("fallback", res.FallbackUsed).
		Msg("extraction complete")
	return res, nil
}

// scanOrFallback scans the requested band and substitutes the documented
// fallback box when nothing qualifies. Absence of a region is a normal
// outcome, logged but never an error.
func scanOrFallback(res *Result, src image.Image, req Request, symbol bool, imgW, imgH int) region.Box {
	band := req.TextBand
	name := "text"
	if symbol {
		band = req.SymbolBand
		name = "symbol"
	}

	sr, ok := region.Scan(src, band)
	if ok {
		extLog.Debug().
			Stringer("token", req.Token).
			Str("region", name).
			Int("pixels", sr.PixelCount).
			Int("x", sr.Bounds.X).Int("y", sr.Bounds.Y).
			Int("w", sr.Bounds.W).Int("h", sr.Bounds.H).
			Msg("region located")
		return sr.Bounds
	}

	res.FallbackUsed = true
	var fb region.Box
	if symbol {
		fb = region.SymbolFallback(imgW, imgH)
	} else {
		fb = region.TextFallback(imgW, imgH)
	}
	extLog.Info().
		Stringer("token", req.Token).
		Str("region", name).
		Msg("no region found, using fallback box")
	return fb
}
