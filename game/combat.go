package game

// Result labels a confrontation from the attacker's point of view.
type Result int

const (
	Loss Result = iota
	Win
)

func (r Result) String() string {
	if r == Win {
		return "win"
	}
	return "loss"
}

// Outcome is the expected result of a confrontation. Survivors belong to the
// winner and is never negative.
type Outcome struct {
	Result    Result
	Survivors int
}

// WinProbability returns the chance that an attacker of the given size beats
// the defender, as a closed-form function of their ratio.
func WinProbability(attacker, defender int) float64 {
	a, d := float64(attacker), float64(defender)
	switch {
	case a >= 1.5*d:
		return 1
	case d >= 1.5*a:
		return 0
	case a == d:
		return 0.5
	case a < d:
		return a / (2 * d)
	default:
		return a/d - 0.5
	}
}

// ResolveCombat collapses a confrontation to its expected outcome instead of
// sampling it. Absorbing a neutral group hands the attacker both populations,
// while beating an active force only leaves the expected share of attackers.
func ResolveCombat(attacker, defender int, defenderIsNeutral bool) Outcome {
	p := WinProbability(attacker, defender)
	if defenderIsNeutral {
		if p >= 0.5 {
			return Outcome{Result: Win, Survivors: attacker + defender}
		}
		return Outcome{Result: Loss, Survivors: truncate((1 - p) * float64(defender))}
	}
	if p > 0.5 {
		return Outcome{Result: Win, Survivors: truncate(p * float64(attacker))}
	}
	return Outcome{Result: Loss, Survivors: truncate((1 - p) * float64(defender))}
}

func truncate(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(v)
}
