// Package letters subdivides a scanned text region into per-character
// bounding boxes by proportional width weights. It is a static heuristic
// that assumes the artwork was generated to match the expected word layout
// (glyphs ordered left to right); it performs no glyph detection of its own.
package letters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/animlab/spritecut/region"
)

// Overlap is the deliberate horizontal bleed, in pixels, added to every
// letter box except the last so connected glyph strokes are not clipped at
// the seam.
const Overlap = 3

// ErrEmptyWord is returned when the expected word has no characters.
var ErrEmptyWord = errors.New("letters: empty word")

// ErrInvalidWord is returned when the word contains characters outside
// printable ASCII. The width table is ASCII-only and the splitter indexes
// the word bytewise; a multibyte glyph would be split into per-byte boxes.
var ErrInvalidWord = errors.New("letters: word must be printable ASCII")

// LetterBox is the computed bounding box for one character of the word.
// Repeated characters get independent boxes at their respective positions.
type LetterBox struct {
	Char   byte
	Bounds region.Box
}

// Split partitions bounds horizontally into exactly len(word) boxes whose
// widths are proportional to each character's table weight. The walk assigns
// floor(totalWidth*weight) pixels per letter plus Overlap on all but the
// last; the last box absorbs the rounding remainder so the tiling is exact.
// The word must be printable ASCII (it is uppercased first); anything else
// yields ErrInvalidWord.
func Split(bounds region.Box, word string) ([]LetterBox, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return nil, ErrEmptyWord
	}
	for i := 0; i < len(word); i++ {
		if word[i] < ' ' || word[i] > '~' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, word)
		}
	}

	n := len(word)
	weights := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		weights[i] = WeightFor(word[i])
		sum += weights[i]
	}

	boxes := make([]LetterBox, 0, n)
	x := bounds.X
	consumed := 0
	for i := 0; i < n; i++ {
		var w int
		if i == n-1 {
			// Last letter takes whatever is left so there is no drift.
			w = bounds.W - consumed
		} else {
			base := int(float64(bounds.W) * (weights[i] / sum))
			w = base + Overlap
			consumed += base
		}
		boxes = append(boxes, LetterBox{
			Char: word[i],
			Bounds: region.Box{
				X: x,
				Y: bounds.Y,
				W: w,
				H: bounds.H,
			},
		})
		// Advance by the un-overlapped width; the next box starts under the
		// bleed of this one.
		x = bounds.X + consumed
	}

	return boxes, nil
}

// EqualSplit divides bounds into len(word) equal-width boxes. It is the
// fallback when a split produced the wrong letter count, which the walk in
// Split makes structurally impossible but is guarded regardless.
func EqualSplit(bounds region.Box, word string) []LetterBox {
	word = strings.ToUpper(strings.TrimSpace(word))
	n := len(word)
	if n == 0 {
		return nil
	}
	boxes := make([]LetterBox, 0, n)
	base := bounds.W / n
	for i := 0; i < n; i++ {
		w := base
		if i == n-1 {
			w = bounds.W - base*(n-1)
		}
		boxes = append(boxes, LetterBox{
			Char: word[i],
			Bounds: region.Box{
				X: bounds.X + base*i,
				Y: bounds.Y,
				W: w,
				H: bounds.H,
			},
		})
	}
	return boxes
}
