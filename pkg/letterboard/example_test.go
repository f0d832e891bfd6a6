package letterboard_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/layout"
	"github.com/matzehuels/letterboard/pkg/letterboard"
)

func ExampleReducer_Reduce() {
	r := letterboard.NewReducer()
	s := letterboard.InitialState([]layout.Heading{{ID: "h1-1", Level: layout.H1, Text: "Hi"}}, 1)
	s = r.Reduce(s, letterboard.FontReady{})
	s = r.Reduce(s, letterboard.BoardMeasured{Metrics: board.Measure(1200, 250)})
	s = r.Reduce(s, letterboard.ReflowLayout{})
	s = r.Reduce(s, letterboard.DragEnd{TileID: "h1-1-0", X: 100, Y: 50})

	for _, t := range s.Tiles {
		fmt.Printf("%s x=%g y=%g manual=%v\n", t.ID, t.X, t.Y, t.ManuallyMoved)
	}
	// Output:
	// h1-1-0 x=100 y=43 manual=true
	// h1-1-1 x=607.2 y=43 manual=false
}

func ExampleController() {
	ctx := context.Background()
	store := letterboard.NewStore(nil, letterboard.InitialState(letterboard.DefaultHeadings(), 1), nil)
	c := letterboard.NewController(store, 1)

	c.BoardMeasured(ctx, board.Measure(1200, 250))
	c.FontReady(ctx)
	st := c.OpenMenuItem(ctx, "Gallery")
	fmt.Println(st.Panel.ActivePanel, st.Panel.IsPanelOpen, len(st.Panel.GalleryPolaroids))
	// Output:
	// gallery true 9
}
