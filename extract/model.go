package extract

import (
	"image"

	"github.com/google/uuid"

	"github.com/animlab/spritecut/region"
)

// RegionKind tags a Region as the main symbol or a single letter.
type RegionKind int

const (
	KindSymbol RegionKind = iota
	KindLetter
)

func (k RegionKind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindLetter:
		return "letter"
	default:
		return "unknown"
	}
}

// Region is one extracted piece of the artwork. All fields are always
// present: Char and Index are zero for the main symbol, and Bounds is the
// padded box in source-image coordinates that Image was cut from.
type Region struct {
	Kind   RegionKind
	Char   byte
	Index  int
	Bounds region.Box
	Image  *image.RGBA
}

// Result holds the output of one pipeline run. Letters is empty for
// non-lettered artwork. FallbackUsed reports that at least one scan found
// no region and a documented fallback box was substituted.
type Result struct {
	Token        uuid.UUID
	Symbol       Region
	Letters      []Region
	FallbackUsed bool
}

// Empty reports whether the result carries no usable output. Callers must
// check this after a decode failure before touching any region.
func (r Result) Empty() bool {
	return r.Symbol.Image == nil && len(r.Letters) == 0
}
