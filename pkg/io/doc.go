// Package io provides JSON import and export for letterboard state snapshots.
//
// # Format
//
// A snapshot wraps the full [letterboard.State] with a format version:
//
//	{
//	  "version": 1,
//	  "state": {
//	    "fontReady": true,
//	    "boardMetrics": {"width": 1200, "height": 250, ...},
//	    "headings": [{"id": "h1-1", "level": "H1", "text": "James Crook"}],
//	    "tiles": [{"id": "h1-1-0", "char": "J", "x": 316.8, "y": 43, ...}],
//	    "panel": {"activePanel": "hero", "isPanelOpen": false, ...},
//	    "craftPanel": {"activeNotecard": ""},
//	    "maxZIndex": 100
//	  }
//	}
//
// # Import
//
// [ReadJSON] and [ImportJSON] reject unknown versions, unknown panels,
// notecards and heading levels, and duplicate tile or polaroid ids, so a
// replay can resume from an exported snapshot without re-checking it.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write indented JSON that [ReadJSON] accepts
// unchanged.
package io
