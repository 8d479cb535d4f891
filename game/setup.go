package game

import "fmt"

// Placement puts one piece on the board during setup.
type Placement struct {
	Kind Kind
	Team Team
	At   Coord
}

// StandardPlacements is the opening layout: both back ranks hold
// Ke Gi Ki Oh Ki Gi Ke on files b..h, Home on the bottom row and Away on the top.
func StandardPlacements() []Placement {
	backRank := []Kind{Knight, Silver, General, Royal, General, Silver, Knight}

	placements := make([]Placement, 0, 2*len(backRank))
	for i, kind := range backRank {
		placements = append(placements, Placement{Kind: kind, Team: Home, At: Coord{X: i + 1, Y: Size - 1}})
	}
	for i, kind := range backRank {
		placements = append(placements, Placement{Kind: kind, Team: Away, At: Coord{X: i + 1, Y: 0}})
	}
	return placements
}

// Place applies placements in order through Set.
func (b *Board) Place(placements ...Placement) error {
	for _, pl := range placements {
		if pl.Kind == None {
			return fmt.Errorf("place at %s: %w", pl.At, ErrEmptySquare)
		}
		if err := b.Set(pl.At, NewPiece(pl.Kind, pl.Team)); err != nil {
			return fmt.Errorf("place %s at %s: %w", pl.Kind, pl.At, err)
		}
	}
	return nil
}

// NewStandardBoard returns a board with the opening layout.
func NewStandardBoard() *Board {
	b := NewBoard()
	if err := b.Place(StandardPlacements()...); err != nil {
		panic(err)
	}
	return b
}
