package game

import "fmt"

type Kind int

const (
	None Kind = iota
	General
	Silver
	Royal
	Knight
	Foot
	Lance
)

// Kinds lists every piece kind that can occupy a square.
var Kinds = []Kind{General, Silver, Royal, Knight, Foot, Lance}

var kindCodes = map[Kind]string{
	General: "Ki",
	Silver:  "Gi",
	Royal:   "Oh",
	Knight:  "Ke",
	Foot:    "Fu",
	Lance:   "Ky",
}

var pieceValues = map[Kind]float64{
	General: 50,
	Silver:  30,
	Royal:   1000,
	Knight:  25,
	Lance:   20,
	Foot:    5,
}

func (k Kind) String() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// PieceValue is the material value of a kind used by the evaluator.
func PieceValue(k Kind) float64 {
	return pieceValues[k]
}

// Piece is a value type; the zero Piece means an empty square.
type Piece struct {
	Kind Kind
	Team Team
}

func NewPiece(kind Kind, team Team) Piece {
	return Piece{Kind: kind, Team: team}
}

func (p Piece) Empty() bool {
	return p.Kind == None
}

// Pattern returns the piece's stencil rotated for its team.
func (p Piece) Pattern() Stencil {
	return RotatedPattern(p.Kind, p.Team)
}

func (p Piece) String() string {
	if p.Empty() {
		return "."
	}
	return fmt.Sprintf("%s/%s", p.Kind, p.Team)
}
