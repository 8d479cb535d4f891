package game

import "strings"

// Board is the single source of truth for occupancy. It has no notion of
// turn or history, and two boards compare equal with == when every square
// holds the same piece.
type Board struct {
	cells [Size][Size]Piece // [y][x]
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) Get(c Coord) (Piece, error) {
	if !c.InBounds() {
		return Piece{}, &OutOfBoundsError{X: c.X, Y: c.Y}
	}
	return b.cells[c.Y][c.X], nil
}

// Set places p on c. Any piece of kind None clears the square.
func (b *Board) Set(c Coord, p Piece) error {
	if !c.InBounds() {
		return &OutOfBoundsError{X: c.X, Y: c.Y}
	}
	if p.Empty() {
		p = Piece{}
	}
	b.cells[c.Y][c.X] = p
	return nil
}

// At is the unchecked read used on coordinates already known to be in bounds.
func (b *Board) At(c Coord) Piece {
	return b.cells[c.Y][c.X]
}

// ApplyMove moves the piece on m.From to m.To and returns whatever stood on
// m.To before, so the move can be reverted with UndoMove.
func (b *Board) ApplyMove(m Move) (Piece, error) {
	if err := checkMove(m); err != nil {
		return Piece{}, err
	}
	return b.apply(m), nil
}

// UndoMove reverts ApplyMove(m), restoring captured on m.To.
func (b *Board) UndoMove(m Move, captured Piece) error {
	if err := checkMove(m); err != nil {
		return err
	}
	b.undo(m, captured)
	return nil
}

func checkMove(m Move) error {
	if !m.From.InBounds() {
		return &OutOfBoundsError{X: m.From.X, Y: m.From.Y}
	}
	if !m.To.InBounds() {
		return &OutOfBoundsError{X: m.To.X, Y: m.To.Y}
	}
	return nil
}

func (b *Board) apply(m Move) Piece {
	captured := b.cells[m.To.Y][m.To.X]
	b.cells[m.To.Y][m.To.X] = b.cells[m.From.Y][m.From.X]
	b.cells[m.From.Y][m.From.X] = Piece{}
	return captured
}

func (b *Board) undo(m Move, captured Piece) {
	b.cells[m.From.Y][m.From.X] = b.cells[m.To.Y][m.To.X]
	b.cells[m.To.Y][m.To.X] = captured
}

// Find returns the last square, in row-major order, holding kind for team.
func (b *Board) Find(kind Kind, team Team) (Coord, bool) {
	var at Coord
	found := false
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := b.cells[y][x]
			if p.Kind == kind && p.Team == team {
				at = Coord{X: x, Y: y}
				found = true
			}
		}
	}
	return at, found
}

// Count returns the number of pieces a team has on the board.
func (b *Board) Count(team Team) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if p := b.cells[y][x]; !p.Empty() && p.Team == team {
				n++
			}
		}
	}
	return n
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// String renders the board one row per line, Away pieces in lower case.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			p := b.cells[y][x]
			switch {
			case p.Empty():
				sb.WriteString("..")
			case p.Team == Away:
				sb.WriteString(strings.ToLower(p.Kind.String()))
			default:
				sb.WriteString(p.Kind.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
