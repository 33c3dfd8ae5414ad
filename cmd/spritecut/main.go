package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/animlab/spritecut/composite"
	"github.com/animlab/spritecut/extract"
	"github.com/animlab/spritecut/paytable"
	"github.com/animlab/spritecut/region"
	"github.com/animlab/spritecut/rescale"
	"github.com/animlab/spritecut/sharecode"
)

// Version is stamped at build time.
var Version = "dev"

func main() {
	var (
		inPath    = flag.String("in", "", "source artwork PNG")
		slotID    = flag.String("slot", "", "paytable slot id (see -list)")
		word      = flag.String("word", "", "expected word, overrides the slot preset")
		outDir    = flag.String("out", "out", "output directory")
		viewport  = flag.String("viewport", "300x200", "workspace viewport WxH for placement preview")
		share     = flag.Bool("share", false, "print a share code for the manifest")
		debugMask = flag.Bool("debug-mask", false, "also write the alpha content mask")
		list      = flag.Bool("list", false, "list paytable slots and exit")
		verbose   = flag.Bool("verbose", false, "debug logging")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	log.Info().Str("version", Version).Msg("spritecut")

	if *list {
		for _, s := range paytable.All() {
			fmt.Printf("%-12s %-14s word=%-8q lettered=%v\n", s.ID, s.Name, s.Word, s.Lettered)
		}
		return
	}

	if *inPath == "" {
		log.Fatal().Msg("Usage: spritecut -in artwork.png -slot wild [-out dir]")
	}

	expectedWord := *word
	lettered := expectedWord != ""
	var slot paytable.Slot
	haveSlot := false
	if *slotID != "" {
		s, ok := paytable.Lookup(*slotID)
		if !ok {
			log.Fatal().Str("slot", *slotID).Msg("Unknown paytable slot")
		}
		slot = s
		haveSlot = true
		if expectedWord == "" {
			expectedWord = slot.Word
		}
		lettered = slot.Lettered
	}

	vpW, vpH, err := parseViewport(*viewport)
	if err != nil {
		log.Fatal().Err(err).Str("viewport", *viewport).Msg("Bad viewport")
	}

	f, err := os.Open(*inPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inPath).Msg("Failed to open source artwork")
	}
	src, err := extract.Decode(f)
	f.Close()
	if err != nil {
		// Decode failure is the pipeline's one hard error: nothing to write.
		log.Fatal().Err(err).Str("path", *inPath).Msg("Failed to decode source artwork")
	}

	req := extract.NewRequest(expectedWord, lettered)
	log.Info().
		Stringer("token", req.Token).
		Str("word", expectedWord).
		Bool("lettered", lettered).
		Msg("Starting extraction")

	res, err := extract.Run(req, src)
	if err != nil {
		log.Fatal().Err(err).Msg("Extraction failed")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *outDir).Msg("Failed to create output directory")
	}

	writeRegion(*outDir, "symbol.png", res.Symbol)
	writePreview(*outDir, "preview_symbol.png", res.Symbol, vpW, vpH)
	for _, l := range res.Letters {
		writeRegion(*outDir, fmt.Sprintf("letter_%d_%c.png", l.Index, l.Char), l)
		writePreview(*outDir, fmt.Sprintf("preview_letter_%d_%c.png", l.Index, l.Char), l, vpW, vpH)
	}

	if *debugMask {
		mask := region.AlphaMask(src)
		data, err := composite.EncodePNG(mask)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to encode alpha mask")
		}
		writeFile(filepath.Join(*outDir, "mask.png"), data)

		// Opacity-independent view, useful when artwork arrives flattened
		// onto an opaque background.
		data, err = composite.EncodePNG(region.Binarize(src))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to encode luminance mask")
		}
		writeFile(filepath.Join(*outDir, "mask_luma.png"), data)
	}

	srcRef := float64(src.Bounds().Dx())
	if haveSlot {
		hp := hintPlacement(slot, srcRef, vpW, vpH)
		log.Info().
			Str("slot", slot.ID).
			Float64("x", hp.X).Float64("y", hp.Y).
			Float64("w", hp.W).Float64("h", hp.H).
			Msg("slot default placement")
	}
	logPlacement("symbol", res.Symbol, srcRef, vpW, vpH)
	for _, l := range res.Letters {
		logPlacement(fmt.Sprintf("letter_%d_%c", l.Index, l.Char), l, srcRef, vpW, vpH)
	}

	manifest := sharecode.Build(res, *slotID, expectedWord)
	data, err := sonic.ConfigDefault.MarshalIndent(manifest, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal manifest")
	}
	writeFile(filepath.Join(*outDir, "manifest.json"), data)

	if *share {
		code, err := sharecode.Encode(manifest)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build share code")
		}
		fmt.Println(code)
	}

	log.Info().
		Stringer("token", res.Token).
		Int("letters", len(res.Letters)).
		Bool("fallback", res.FallbackUsed).
		Str("dir", *outDir).
		Msg("Done")
}

func writeRegion(dir, name string, r extract.Region) {
	if r.Image == nil {
		log.Warn().Str("file", name).Msg("Region has no image, skipping")
		return
	}
	data, err := composite.EncodePNG(r.Image)
	if err != nil {
		log.Fatal().Err(err).Str("file", name).Msg("Failed to encode region")
	}
	writeFile(filepath.Join(dir, name), data)
}

// previewFor resamples an extracted region to fit the workspace viewport.
func previewFor(r extract.Region, vpW, vpH float64) *image.RGBA {
	if r.Image == nil {
		return nil
	}
	return composite.FitTo(r.Image, int(vpW), int(vpH))
}

func writePreview(dir, name string, r extract.Region, vpW, vpH float64) {
	fit := previewFor(r, vpW, vpH)
	if fit == nil {
		return
	}
	data, err := composite.EncodePNG(fit)
	if err != nil {
		log.Fatal().Err(err).Str("file", name).Msg("Failed to encode preview")
	}
	writeFile(filepath.Join(dir, name), data)
}

// hintPlacement maps a slot's percent-space placement hint into the
// workspace viewport.
func hintPlacement(s paytable.Slot, srcRef, vpW, vpH float64) rescale.Placement {
	return rescale.Place(s.Hint.X, s.Hint.Y, s.Hint.W, s.Hint.H,
		rescale.SpacePercent, srcRef, vpW, vpH)
}

func writeFile(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write file")
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote file")
}

func logPlacement(name string, r extract.Region, srcRef, vpW, vpH float64) {
	p := rescale.Place(
		float64(r.Bounds.X), float64(r.Bounds.Y),
		float64(r.Bounds.W), float64(r.Bounds.H),
		rescale.SpacePixel, srcRef, vpW, vpH,
	)
	log.Info().
		Str("region", name).
		Float64("x", p.X).Float64("y", p.Y).
		Float64("w", p.W).Float64("h", p.H).
		Float64("scale", p.Scale).
		Msg("workspace placement")
}

func parseViewport(s string) (float64, float64, error) {
	var w, h float64
	if _, err := fmt.Sscanf(s, "%fx%f", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("expected WxH: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("viewport must be positive")
	}
	return w, h, nil
}
