package game

import "math"

const (
	WinScore  = 10000.0
	LossScore = -WinScore

	// Enemy groups weigh more than neutral ones in the proximity term.
	enemyBoost = 3.0
)

// EvaluateProximity rewards Ally groups that sit close to smaller targets and
// adds the net strength difference between the two acting factions. Neutral
// groups only contribute through proximity.
func EvaluateProximity(s State) float64 {
	if len(s.Ally) == 0 {
		return LossScore
	}
	if len(s.Enemy) == 0 {
		return WinScore
	}

	scale := float64(max(s.Rows, s.Cols))
	targets := concat(s.Enemy, s.Neutral)

	score := 0.0
	for _, ally := range s.Ally {
		for _, x := range targets {
			decay := math.Exp(-ally.Position.Distance(x.Position) / scale)
			ratio := float64(ally.Count) / float64(x.Count)
			if x.Faction == Enemy {
				ratio *= enemyBoost
			}
			score += decay * ratio
		}
	}
	score /= float64(len(s.Ally))

	return score + netStrength(s)
}

func netStrength(s State) float64 {
	total := 0
	for _, g := range s.Ally {
		total += g.Count - 1
	}
	for _, g := range s.Enemy {
		total -= g.Count - 1
	}
	return float64(total)
}
