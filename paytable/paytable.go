// Package paytable holds the preset symbol slots an authoring session can
// target. Presets ship embedded in the binary; the workspace hint is the
// default placement of the artwork, in percent of the source image.
package paytable

import (
	_ "embed"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Hint is a default placement box in percent coordinates.
type Hint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Slot is one paytable entry. Word is the expected character sequence for
// lettered artwork; non-lettered slots keep at most a single identifying
// character.
type Slot struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Word     string `yaml:"word"`
	Lettered bool   `yaml:"lettered"`
	Hint     Hint   `yaml:"hint"`
}

type presetFile struct {
	Slots []Slot `yaml:"slots"`
}

//go:embed presets.yaml
var presetsYAML []byte

var (
	slots    []Slot
	byID     map[string]Slot
	loadOnce sync.Once
)

func loadPresets() {
	loadOnce.Do(func() {
		var pf presetFile
		if err := yaml.Unmarshal(presetsYAML, &pf); err != nil {
			log.Error().Err(err).Msg("paytable: failed to parse embedded presets")
			return
		}
		slots = pf.Slots
		byID = make(map[string]Slot, len(slots))
		for _, s := range slots {
			byID[s.ID] = s
		}
		log.Debug().Int("slotCount", len(slots)).Msg("paytable: presets loaded")
	})
}

// Lookup returns the slot with the given id.
func Lookup(id string) (Slot, bool) {
	loadPresets()
	s, ok := byID[id]
	return s, ok
}

// All returns every preset slot in paytable order. The returned slice is a
// copy.
func All() []Slot {
	loadPresets()
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}
