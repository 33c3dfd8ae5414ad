// Package sharecode encodes an extraction manifest as a compact string that
// can be pasted between authoring sessions: sonic-marshalled JSON, gzip
// compressed, URL-safe base64 without padding.
package sharecode

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/animlab/spritecut/extract"
)

// ManifestVersion is bumped whenever the manifest schema changes.
const ManifestVersion = "1"

// ManifestRegion records one extracted region's padded bounds in source
// coordinates. Char is empty for the main symbol.
type ManifestRegion struct {
	Kind  string `json:"kind"`
	Char  string `json:"char,omitempty"`
	Index int    `json:"index"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	W     int    `json:"w"`
	H     int    `json:"h"`
}

// Manifest describes one extraction run without the pixel data.
type Manifest struct {
	Version  string           `json:"version"`
	Slot     string           `json:"slot,omitempty"`
	Word     string           `json:"word,omitempty"`
	Fallback bool             `json:"fallback"`
	Regions  []ManifestRegion `json:"regions"`
}

// Build assembles a Manifest from a pipeline result.
func Build(res extract.Result, slotID, word string) Manifest {
	m := Manifest{
		Version:  ManifestVersion,
		Slot:     slotID,
		Word:     word,
		Fallback: res.FallbackUsed,
	}
	m.Regions = append(m.Regions, ManifestRegion{
		Kind: res.Symbol.Kind.String(),
		X:    res.Symbol.Bounds.X,
		Y:    res.Symbol.Bounds.Y,
		W:    res.Symbol.Bounds.W,
		H:    res.Symbol.Bounds.H,
	})
	for _, l := range res.Letters {
		m.Regions = append(m.Regions, ManifestRegion{
			Kind:  l.Kind.String(),
			Char:  string(l.Char),
			Index: l.Index,
			X:     l.Bounds.X,
			Y:     l.Bounds.Y,
			W:     l.Bounds.W,
			H:     l.Bounds.H,
		})
	}
	return m
}

// Encode produces the share code for a manifest.
func Encode(m Manifest) (string, error) {
	jsonBytes, err := sonic.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("sharecode: marshal manifest: %w", err)
	}

	var buf bytes.Buffer
	gzWriter := gzip.NewWriter(&buf)
	if _, err := gzWriter.Write(jsonBytes); err != nil {
		return "", fmt.Errorf("sharecode: compress manifest: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return "", fmt.Errorf("sharecode: flush gzip: %w", err)
	}

	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(buf.Bytes()), nil
}

// Decode parses a share code back into a Manifest.
func Decode(code string) (*Manifest, error) {
	if code == "" {
		return nil, fmt.Errorf("sharecode: code is empty")
	}

	decodedBytes, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("sharecode: decode base64: %w", err)
	}

	gzReader, err := gzip.NewReader(bytes.NewReader(decodedBytes))
	if err != nil {
		return nil, fmt.Errorf("sharecode: open gzip: %w", err)
	}
	defer gzReader.Close()

	jsonBytes, err := io.ReadAll(gzReader)
	if err != nil {
		return nil, fmt.Errorf("sharecode: decompress: %w", err)
	}

	var m Manifest
	if err := sonic.Unmarshal(jsonBytes, &m); err != nil {
		return nil, fmt.Errorf("sharecode: unmarshal manifest: %w", err)
	}
	return &m, nil
}
