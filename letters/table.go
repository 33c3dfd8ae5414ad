package letters

import (
	_ "embed"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// DefaultWeight is used for any character not present in the width table,
// including digits and punctuation.
const DefaultWeight = 0.22

//go:embed widths.json
var widthsJSON []byte

var (
	widths   map[string]float64
	loadOnce sync.Once
)

// loadWidths parses the embedded table once. The table ships with the binary,
// so a parse failure means a broken build; we log and fall back to uniform
// weights rather than failing every split.
func loadWidths() {
	loadOnce.Do(func() {
		if err := sonic.Unmarshal(widthsJSON, &widths); err != nil {
			log.Error().Err(err).Msg("letters: failed to parse embedded width table")
			widths = map[string]float64{}
		}
	})
}

// WeightFor returns the relative width weight for a single uppercase
// character. Unlisted characters get DefaultWeight.
func WeightFor(ch byte) float64 {
	loadWidths()
	if w, ok := widths[string(ch)]; ok {
		return w
	}
	return DefaultWeight
}
