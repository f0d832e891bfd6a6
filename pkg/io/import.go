package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/letterboard/pkg/errors"
	"github.com/matzehuels/letterboard/pkg/layout"
	"github.com/matzehuels/letterboard/pkg/letterboard"
	"github.com/matzehuels/letterboard/pkg/polaroid"
)

// ReadJSON decodes and validates a snapshot from r. It does not close r.
func ReadJSON(r io.Reader) (letterboard.State, error) {
	var data snapshot
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return letterboard.State{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode snapshot")
	}
	if data.Version != FormatVersion {
		return letterboard.State{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported snapshot version %d", data.Version)
	}
	if err := validate(data.State); err != nil {
		return letterboard.State{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "snapshot")
	}
	return data.State, nil
}

// ImportJSON reads a snapshot file.
func ImportJSON(path string) (letterboard.State, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return letterboard.State{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot %s", path)
		}
		return letterboard.State{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func validate(s letterboard.State) error {
	if _, err := letterboard.ParsePanel(string(s.Panel.ActivePanel)); err != nil {
		return err
	}
	if n := s.CraftPanel.ActiveNotecard; n != letterboard.NotecardNone {
		if _, err := letterboard.ParseNotecard(string(n)); err != nil {
			return err
		}
	}
	for _, h := range s.Headings {
		if _, err := layout.ParseLevel(string(h.Level)); err != nil {
			return fmt.Errorf("heading %s: %w", h.ID, err)
		}
	}

	tiles := make(map[string]bool, len(s.Tiles))
	for _, t := range s.Tiles {
		if tiles[t.ID] {
			return fmt.Errorf("duplicate tile id %q", t.ID)
		}
		tiles[t.ID] = true
	}

	polaroids := make(map[string]bool)
	for _, set := range [][]polaroid.Polaroid{s.Panel.HeroPolaroids, s.Panel.GalleryPolaroids} {
		for _, p := range set {
			if polaroids[p.ID] {
				return fmt.Errorf("duplicate polaroid id %q", p.ID)
			}
			polaroids[p.ID] = true
			if p.ZIndex > s.MaxZIndex {
				return fmt.Errorf("polaroid %s: z-index %d above maxZIndex %d", p.ID, p.ZIndex, s.MaxZIndex)
			}
		}
	}
	return nil
}
