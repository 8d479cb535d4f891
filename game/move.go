package game

import (
	"errors"
	"fmt"
	"strings"
)

type Coord struct {
	X int
	Y int
}

func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// String renders a coordinate as a file letter and a 1-based row, e.g. "e9".
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'a'+c.X, c.Y+1)
}

// Move is an ordered pair of squares. It captures whatever enemy piece stands
// on To when it is applied.
type Move struct {
	From Coord
	To   Coord
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

func ParseCoord(token string) (Coord, error) {
	if len(token) != 2 {
		return Coord{}, errors.New("coord format a1")
	}
	c := Coord{X: int(token[0] - 'a'), Y: int(token[1] - '1')}
	if !c.InBounds() {
		return Coord{}, &OutOfBoundsError{X: c.X, Y: c.Y}
	}
	return c, nil
}

// ParseMove reads the format produced by Move.String, e.g. "e9e8".
func ParseMove(input string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if len(s) != 4 {
		return Move{}, errors.New("move format a1a2")
	}
	from, err := ParseCoord(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseCoord(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
