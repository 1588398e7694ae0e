package game

// Faction identifies who owns a group. Neutral groups never act.
type Faction int

const (
	Neutral Faction = iota
	Ally
	Enemy
)

func (f Faction) String() string {
	switch f {
	case Ally:
		return "A"
	case Enemy:
		return "E"
	default:
		return "N"
	}
}

// Opponent returns the other acting faction. Neutral has no opponent.
func (f Faction) Opponent() Faction {
	switch f {
	case Ally:
		return Enemy
	case Enemy:
		return Ally
	default:
		return Neutral
	}
}

// Evaluates the game state to a score from the Ally's perspective: positive
// values favor the Ally, negative values favor the Enemy.
type Evaluate func(State) float64
