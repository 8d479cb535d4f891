package game

// Size is the number of rows and columns of the board.
const Size = 9

// Team identifies one of the two sides. Home moves up the board (towards y=0),
// Away moves down.
type Team int

const (
	Home Team = iota
	Away
)

// Teams lists both sides in turn order.
var Teams = [2]Team{Home, Away}

func (t Team) Opponent() Team {
	if t == Home {
		return Away
	}
	return Home
}

func (t Team) String() string {
	if t == Home {
		return "home"
	}
	return "away"
}

// Facing is the rotation, in degrees, applied to a team's movement stencils.
func (t Team) Facing() int {
	if t == Away {
		return 180
	}
	return 0
}

// Evaluates a board to a signed score. Positive scores favor Away, negative
// scores favor Home.
type Evaluate func(b *Board) float64
