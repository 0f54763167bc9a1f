package kitchen

import "testing"

func TestParseLayout(t *testing.T) {
	m, spawns, err := ParseLayout([]string{
		"#$##",
		"#B.K",
		"#CST",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if m.Width != 4 || m.Height != 3 {
		t.Fatalf("size=%dx%d", m.Width, m.Height)
	}
	if len(spawns) != 1 || spawns[0] != (Pos{X: 1, Y: 1}) {
		t.Fatalf("spawns=%v", spawns)
	}
	if !m.Walkable(Pos{X: 1, Y: 1}) || !m.Walkable(Pos{X: 2, Y: 1}) {
		t.Fatalf("floor should be walkable")
	}
	if m.Walkable(Pos{X: 3, Y: 1}) {
		t.Fatalf("cooker should not be walkable")
	}
	if m.Kind(Pos{X: 1, Y: 0}) != TileShop || m.Kind(Pos{X: 3, Y: 2}) != TileTrash {
		t.Fatalf("kind mismatch")
	}
	if m.Kind(Pos{X: -1, Y: 0}) != TileWall {
		t.Fatalf("out of bounds should read as wall")
	}
}

func TestParseLayoutErrors(t *testing.T) {
	cases := [][]string{
		nil,
		{""},
		{"..", "."},
		{".x"},
	}
	for _, rows := range cases {
		if _, _, err := ParseLayout(rows); err == nil {
			t.Fatalf("expected error for %q", rows)
		}
	}
}

func TestParseLayoutCRLF(t *testing.T) {
	m, spawns, err := ParseLayout([]string{"###\r", "#B#\r", "###\r"})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if m.Width != 3 || m.Height != 3 {
		t.Fatalf("size=%dx%d", m.Width, m.Height)
	}
	if len(spawns) != 1 || spawns[0] != (Pos{X: 1, Y: 1}) {
		t.Fatalf("spawns=%v", spawns)
	}
}

func TestNearest(t *testing.T) {
	m, _, err := ParseLayout([]string{
		"C...C",
		".....",
		"....C",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	p, ok := m.Nearest(Pos{X: 3, Y: 1}, TileCounter)
	if !ok {
		t.Fatalf("expected a counter")
	}
	// (4,0) and (4,2) are both at distance 1; column scan meets (4,0) first.
	if p != (Pos{X: 4, Y: 0}) {
		t.Fatalf("nearest=%v", p)
	}
	if _, ok := m.Nearest(Pos{}, TileCooker); ok {
		t.Fatalf("no cooker expected")
	}
}

func TestChebyshev(t *testing.T) {
	if d := Chebyshev(Pos{X: 0, Y: 0}, Pos{X: 2, Y: -5}); d != 5 {
		t.Fatalf("d=%d", d)
	}
	if d := Chebyshev(Pos{X: 1, Y: 1}, Pos{X: 2, Y: 2}); d != 1 {
		t.Fatalf("diagonal d=%d", d)
	}
}
