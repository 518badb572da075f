package grid

import "testing"

func TestValidate_DetectsBrokenInvariants(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(g *Grid)
	}{
		{
			name: "hidden owned by hidden",
			corrupt: func(g *Grid) {
				g.cells[g.index(0, 1)] = Cell{Hidden: true, Owner: Pos{Row: 1, Col: 1}, ColSpan: 1, RowSpan: 1}
				g.cells[g.index(1, 1)] = Cell{Hidden: true, Owner: Pos{Row: 0, Col: 0}, ColSpan: 1, RowSpan: 1}
			},
		},
		{
			name: "hidden outside owner span",
			corrupt: func(g *Grid) {
				g.cells[g.index(1, 1)] = Cell{Hidden: true, Owner: Pos{Row: 0, Col: 0}, ColSpan: 1, RowSpan: 1}
			},
		},
		{
			name: "span over visible cell",
			corrupt: func(g *Grid) {
				g.cells[g.index(0, 0)].ColSpan = 2
			},
		},
		{
			name: "span leaves grid",
			corrupt: func(g *Grid) {
				g.cells[g.index(1, 1)].RowSpan = 2
			},
		},
		{
			name: "border length",
			corrupt: func(g *Grid) {
				g.borders.RowBottom = g.borders.RowBottom[:1]
			},
		},
	}

	for _, tc := range cases {
		g := mustNew(t, 2, 2)
		mustValid(t, g)
		tc.corrupt(g)
		if err := g.Validate(); err == nil {
			t.Fatalf("%s: expected Validate to fail", tc.name)
		}
	}
}
