package game

import (
	"fmt"
	"strings"
)

type Cell uint8

const (
	Blocked Cell = iota
	Allowed
	Origin
)

var cellRunes = map[rune]Cell{
	'0': Blocked,
	'1': Allowed,
	'x': Origin,
}

func (c Cell) String() string {
	switch c {
	case Allowed:
		return "1"
	case Origin:
		return "x"
	default:
		return "0"
	}
}

// Stencil is an immutable movement template. Cells are addressed as (dx, dy)
// with dy indexing rows from the top of the template, in Home orientation
// unless rotated.
type Stencil struct {
	cells   [][]Cell
	originX int
	originY int
	offsets []Coord
}

// ParseStencil builds a stencil from rows of '0' (blocked), '1' (allowed) and
// 'x' (origin). All rows must have the same width and exactly one origin.
func ParseStencil(rows ...string) (Stencil, error) {
	if len(rows) == 0 {
		return Stencil{}, fmt.Errorf("%w: no rows", ErrMalformedStencil)
	}
	width := len(rows[0])
	cells := make([][]Cell, len(rows))
	for dy, row := range rows {
		if len(row) != width {
			return Stencil{}, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedStencil, dy, len(row), width)
		}
		cells[dy] = make([]Cell, width)
		for dx, r := range row {
			c, ok := cellRunes[r]
			if !ok {
				return Stencil{}, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrMalformedStencil, r, dx, dy)
			}
			cells[dy][dx] = c
		}
	}
	return newStencil(cells)
}

func newStencil(cells [][]Cell) (Stencil, error) {
	origins := 0
	for _, row := range cells {
		for _, c := range row {
			if c == Origin {
				origins++
			}
		}
	}
	if origins != 1 {
		return Stencil{}, &MalformedStencilError{Origins: origins}
	}

	s := Stencil{cells: cells}
	ox, oy, err := LocateOrigin(s)
	if err != nil {
		return Stencil{}, err
	}
	s.originX, s.originY = ox, oy
	for dy, row := range cells {
		for dx, c := range row {
			if c == Allowed {
				s.offsets = append(s.offsets, Coord{X: dx - ox, Y: dy - oy})
			}
		}
	}
	return s, nil
}

// LocateOrigin scans the stencil once and returns the position of its origin cell.
func LocateOrigin(s Stencil) (dx, dy int, err error) {
	for y, row := range s.cells {
		for x, c := range row {
			if c == Origin {
				return x, y, nil
			}
		}
	}
	return 0, 0, &MalformedStencilError{Origins: 0}
}

func (s Stencil) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

func (s Stencil) Height() int {
	return len(s.cells)
}

func (s Stencil) At(dx, dy int) Cell {
	return s.cells[dy][dx]
}

// Origin returns the cached origin position.
func (s Stencil) Origin() (dx, dy int) {
	return s.originX, s.originY
}

// Offsets returns the allowed cells relative to the origin, in row-major
// order. The slice is shared and must not be modified.
func (s Stencil) Offsets() []Coord {
	return s.offsets
}

// Rotate180 reverses the row order and the cells of every row.
func (s Stencil) Rotate180() Stencil {
	h, w := s.Height(), s.Width()
	cells := make([][]Cell, h)
	for dy := 0; dy < h; dy++ {
		cells[dy] = make([]Cell, w)
		for dx := 0; dx < w; dx++ {
			cells[dy][dx] = s.At(w-1-dx, h-1-dy)
		}
	}
	rotated, err := newStencil(cells)
	if err != nil {
		// Rotation preserves the origin count.
		panic(err)
	}
	return rotated
}

func (s Stencil) Equal(o Stencil) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for dy, row := range s.cells {
		for dx, c := range row {
			if o.At(dx, dy) != c {
				return false
			}
		}
	}
	return true
}

func (s Stencil) String() string {
	rows := make([]string, len(s.cells))
	for dy, row := range s.cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(c.String())
		}
		rows[dy] = sb.String()
	}
	return strings.Join(rows, "/")
}

var homeStencils = map[Kind][]string{
	General: {
		"000",
		"111",
		"1x1",
		"010",
	},
	Silver: {
		"000",
		"111",
		"0x0",
		"101",
	},
	Royal: {
		"000",
		"111",
		"1x1",
		"111",
	},
	Knight: {
		"101",
		"000",
		"0x0",
		"000",
	},
	Foot: {
		"010",
		"0x0",
		"000",
	},
	// Lance cells only mark destinations, so intervening pieces never block it.
	Lance: {
		"010",
		"010",
		"010",
		"010",
		"010",
		"010",
		"010",
		"010",
		"0x0",
	},
}

// patterns[team][kind], filled once at init.
var patterns [2][]Stencil

func init() {
	for _, team := range Teams {
		patterns[team] = make([]Stencil, len(Kinds)+1)
	}
	for _, kind := range Kinds {
		home := mustStencil(kind, homeStencils[kind]...)
		for _, team := range Teams {
			patterns[team][kind] = rotate(home, team.Facing())
		}
	}
}

// rotate turns s by degrees, a multiple of 180.
func rotate(s Stencil, degrees int) Stencil {
	if degrees%180 != 0 {
		panic(fmt.Sprintf("unsupported stencil rotation %d", degrees))
	}
	for i := 0; i < (degrees/180)%2; i++ {
		s = s.Rotate180()
	}
	return s
}

func mustStencil(kind Kind, rows ...string) Stencil {
	s, err := ParseStencil(rows...)
	if err != nil {
		panic(fmt.Sprintf("stencil for %s: %v", kind, err))
	}
	return s
}

// RotatedPattern returns the stencil of kind as seen by team: unrotated for
// Home, rotated 180 degrees for Away.
func RotatedPattern(kind Kind, team Team) Stencil {
	if kind <= None || int(kind) >= len(patterns[team]) {
		panic(fmt.Sprintf("no stencil for %s", kind))
	}
	return patterns[team][kind]
}
