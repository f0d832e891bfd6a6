package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/letterboard/pkg/letterboard"
)

// FormatVersion is the snapshot format written by WriteJSON.
const FormatVersion = 1

type snapshot struct {
	Version int               `json:"version"`
	State   letterboard.State `json:"state"`
}

// WriteJSON encodes s as an indented snapshot and writes it to w.
func WriteJSON(s letterboard.State, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot{Version: FormatVersion, State: s}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a snapshot of s to path.
func ExportJSON(s letterboard.State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
