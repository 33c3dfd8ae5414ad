package extract

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// extLog is the sub-logger for the extract pipeline, with module=extract
// attached to every event.
var extLog zerolog.Logger = log.With().Str("module", "extract").Logger()
