package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/errors"
	"github.com/matzehuels/letterboard/pkg/letterboard"
)

func sampleState() letterboard.State {
	r := letterboard.NewReducer()
	s := letterboard.InitialState(letterboard.DefaultHeadings(), 1)
	for _, a := range []letterboard.Action{
		letterboard.FontReady{},
		letterboard.BoardMeasured{Metrics: board.Measure(1200, 250)},
		letterboard.ReflowLayout{},
		letterboard.GenerateGalleryPolaroids{Width: 960, Height: 250, Seed: 4},
		letterboard.NotecardOpen{Notecard: letterboard.NotecardEncore},
	} {
		s = r.Reduce(s, a)
	}
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	want := sampleState()
	path := filepath.Join(t.TempDir(), "state.json")
	if err := ExportJSON(want, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("round trip changed state")
	}
}

func TestWriteJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleState(), &buf); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"version": 1`, `"fontReady": true`, `"manuallyMoved"`, `"galleryPolaroids"`, `"activeNotecard": "encore"`} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("output missing %s", key)
		}
	}
}

func TestReadJSONRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{`},
		{"version", `{"version": 2, "state": {"panel": {"activePanel": "hero"}}}`},
		{"panel", `{"version": 1, "state": {"panel": {"activePanel": "attic"}}}`},
		{"notecard", `{"version": 1, "state": {"panel": {"activePanel": "hero"}, "craftPanel": {"activeNotecard": "moka"}}}`},
		{"level", `{"version": 1, "state": {"panel": {"activePanel": "hero"}, "headings": [{"id": "a", "level": "H7", "text": "x"}]}}`},
		{"duplicate tile", `{"version": 1, "state": {"panel": {"activePanel": "hero"}, "tiles": [{"id": "a"}, {"id": "a"}]}}`},
		{"z above max", `{"version": 1, "state": {"panel": {"activePanel": "hero", "heroPolaroids": [{"id": "p", "zIndex": 9}]}, "maxZIndex": 3}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadJSON() error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestImportJSONMissing(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON() error = %v, want FILE_NOT_FOUND", err)
	}
}
