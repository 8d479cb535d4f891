package game

// GenerateMoves returns every legal move for team, scanning the board row by
// row. A destination is legal when it is on the board and either empty or
// held by the opponent.
func GenerateMoves(b *Board, team Team) []Move {
	var moves []Move
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := b.cells[y][x]
			if p.Empty() || p.Team != team {
				continue
			}
			moves = appendPieceMoves(moves, b, Coord{X: x, Y: y}, p)
		}
	}
	return moves
}

// GenerateMovesFrom returns the legal moves of the piece on from, or nil when
// the square is empty or off the board.
func GenerateMovesFrom(b *Board, from Coord) []Move {
	if !from.InBounds() {
		return nil
	}
	p := b.At(from)
	if p.Empty() {
		return nil
	}
	return appendPieceMoves(nil, b, from, p)
}

func appendPieceMoves(moves []Move, b *Board, from Coord, p Piece) []Move {
	for _, delta := range p.Pattern().Offsets() {
		to := from.Add(delta)
		if !to.InBounds() {
			continue
		}
		if dest := b.At(to); !dest.Empty() && dest.Team == p.Team {
			continue
		}
		moves = append(moves, Move{From: from, To: to})
	}
	return moves
}
