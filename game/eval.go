package game

// Weights of the static evaluator. The asymmetry is part of the opponent's
// play style and must not be balanced out.
const (
	AwayMaterialWeight = 1.1
	HomeMaterialWeight = 1.0
	AwayGuardWeight    = 0.4
	HomeThreatWeight   = 0.8
)

// EvaluateBoard scores a position from Away's point of view: Away material
// counts positively, Home material negatively, plus a safety term over the
// 3x3 block whose top-left corner is one column left of the Away royal.
func EvaluateBoard(b *Board) float64 {
	score := 0.0
	ox, oy := 0, 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := b.cells[y][x]
			if p.Empty() {
				continue
			}
			value := PieceValue(p.Kind)
			if p.Team == Away {
				score += value * AwayMaterialWeight
			} else {
				score -= value * HomeMaterialWeight
			}
			if p.Team == Away && p.Kind == Royal {
				ox, oy = x, y
			}
		}
	}

	return score + kingSafety(b, ox, oy)
}

// kingSafety falls back to the (0, 0) anchor when Away has no royal.
func kingSafety(b *Board, ox, oy int) float64 {
	score := 0.0
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			c := Coord{X: ox - 1 + dx, Y: oy + dy}
			if !c.InBounds() {
				continue
			}
			p := b.At(c)
			if p.Empty() {
				continue
			}
			if p.Team == Away {
				score += PieceValue(p.Kind) * AwayGuardWeight
			} else {
				score -= PieceValue(p.Kind) * HomeThreatWeight
			}
		}
	}
	return score
}
