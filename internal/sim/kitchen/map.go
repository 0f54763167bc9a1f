package kitchen

import (
	"fmt"
	"strings"
)

// Map is an immutable tile-kind grid. Only FLOOR cells are walkable.
type Map struct {
	Width  int
	Height int

	kinds []TileKind // row-major
}

func NewMap(width, height int, fill TileKind) *Map {
	m := &Map{Width: width, Height: height, kinds: make([]TileKind, width*height)}
	for i := range m.kinds {
		m.kinds[i] = fill
	}
	return m
}

func (m *Map) InBounds(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.Width && p.Y < m.Height
}

func (m *Map) Kind(p Pos) TileKind {
	if !m.InBounds(p) {
		return TileWall
	}
	return m.kinds[p.Y*m.Width+p.X]
}

func (m *Map) Set(p Pos, k TileKind) {
	if m.InBounds(p) {
		m.kinds[p.Y*m.Width+p.X] = k
	}
}

func (m *Map) Walkable(p Pos) bool { return m.Kind(p) == TileFloor }

// Nearest returns the tile of kind closest to from by Chebyshev distance.
// Ties go to the first tile met scanning columns left to right, each column
// top to bottom.
func (m *Map) Nearest(from Pos, kind TileKind) (Pos, bool) {
	best := Pos{}
	bestDist := -1
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			p := Pos{X: x, Y: y}
			if m.Kind(p) != kind {
				continue
			}
			d := Chebyshev(from, p)
			if bestDist < 0 || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, bestDist >= 0
}

func Chebyshev(a, b Pos) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

var layoutGlyphs = map[rune]TileKind{
	'.': TileFloor,
	'B': TileFloor,
	'#': TileWall,
	'C': TileCounter,
	'K': TileCooker,
	'$': TileShop,
	'S': TileSubmit,
	'T': TileTrash,
}

// ParseLayout builds a map from ASCII rows. 'B' marks a bot spawn on floor;
// spawns are returned in reading order.
//
//	.  floor    #  wall    C  counter   K  cooker
//	$  shop     S  submit  T  trash     B  bot spawn
func ParseLayout(rows []string) (*Map, []Pos, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("layout: no rows")
	}
	width := len(strings.TrimRight(rows[0], "\r"))
	if width == 0 {
		return nil, nil, fmt.Errorf("layout: empty row 0")
	}
	m := NewMap(width, len(rows), TileWall)
	var spawns []Pos
	for y, row := range rows {
		row = strings.TrimRight(row, "\r")
		if len(row) != width {
			return nil, nil, fmt.Errorf("layout: row %d has width %d, want %d", y, len(row), width)
		}
		for x, r := range row {
			k, ok := layoutGlyphs[r]
			if !ok {
				return nil, nil, fmt.Errorf("layout: unknown glyph %q at %d,%d", r, x, y)
			}
			m.Set(Pos{X: x, Y: y}, k)
			if r == 'B' {
				spawns = append(spawns, Pos{X: x, Y: y})
			}
		}
	}
	return m, spawns, nil
}
