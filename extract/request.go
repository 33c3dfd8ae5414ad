package extract

import (
	"github.com/google/uuid"

	"github.com/animlab/spritecut/region"
)

// Vertical bands of the source artwork scanned for each region. Generated
// slot symbols place the icon in the upper portion and the rendered word
// below it.
var (
	DefaultSymbolBand = region.Band{Top: 0.10, Bottom: 0.60}
	DefaultTextBand   = region.Band{Top: 0.55, Bottom: 0.95}
)

// Request describes one extraction run. The Token identifies the run in
// logs and in the Result so callers interleaving requests can discard stale
// results; the pipeline itself keeps no state between runs.
type Request struct {
	Token      uuid.UUID
	Word       string
	Lettered   bool
	SymbolBand region.Band
	TextBand   region.Band
}

// NewRequest builds a Request with a fresh token and the default scan
// bands. Word is the expected character sequence; lettered indicates the
// artwork contains a rendered word to split.
func NewRequest(word string, lettered bool) Request {
	return Request{
		Token:      uuid.New(),
		Word:       word,
		Lettered:   lettered,
		SymbolBand: DefaultSymbolBand,
		TextBand:   DefaultTextBand,
	}
}
