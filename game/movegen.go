package game

import "golang.org/x/exp/slices"

// LegalMoves enumerates candidate move sets for f: one plain move per distinct
// direction toward another group, an escape move away from each approaching
// opponent, and at most one split maneuver per group.
func (s State) LegalMoves(f Faction) []MoveSet {
	opponent := f.Opponent()
	targets := concat(s.Groups(opponent), s.Groups(f), s.Neutral)
	prey := concat(s.Neutral, s.Groups(opponent))

	var moves []MoveSet
	for _, mover := range s.Groups(f) {
		seen := make([]Position, 0, 8)
		for _, target := range targets {
			if target.Position == mover.Position {
				continue
			}
			dir := mover.Position.DirectionTo(target.Position)
			if slices.Contains(seen, dir) {
				continue
			}
			seen = append(seen, dir)
			moves = append(moves, MoveSet{relocate(mover, dir, mover.Count)})

			if target.Faction != opponent {
				continue
			}
			away := dir.Neg()
			if !mover.Position.Add(away).InBounds(s.Rows, s.Cols) || slices.Contains(seen, away) {
				continue
			}
			seen = append(seen, away)
			moves = append(moves, MoveSet{relocate(mover, away, mover.Count)})
		}

		if split, ok := splitMove(mover, prey); ok {
			moves = append(moves, split)
		}
	}
	return moves
}

// splitMove divides mover between its two nearest prey, proportionally to their
// sizes. It only proposes the split when each share alone outnumbers its target.
func splitMove(mover Group, prey []Group) (MoveSet, bool) {
	if len(prey) < 2 {
		return nil, false
	}
	nearest := slices.Clone(prey)
	slices.SortStableFunc(nearest, func(a, b Group) int {
		da, db := mover.Position.Distance(a.Position), mover.Position.Distance(b.Position)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
	first, second := nearest[0], nearest[1]

	share1, share2 := splitProportion(mover.Count, first.Count, second.Count)
	if share1 <= first.Count || share2 <= second.Count {
		return nil, false
	}

	move1 := relocate(mover, mover.Position.DirectionTo(first.Position), share1)
	move2 := relocate(mover, mover.Position.DirectionTo(second.Position), share2)
	if move1 == move2 {
		return nil, false
	}
	return MoveSet{move1, move2}, true
}

// splitProportion returns the shares of count sent toward targets of size1 and size2.
func splitProportion(count, size1, size2 int) (int, int) {
	if size1+size2 <= 0 {
		return 0, count
	}
	share1 := count * size1 / (size1 + size2)
	return share1, count - share1
}

func relocate(g Group, dir Position, count int) Move {
	return Move{
		Faction:   g.Faction,
		From:      g.Position,
		FromCount: g.Count,
		To:        g.Position.Add(dir),
		Count:     count,
	}
}

func concat(collections ...[]Group) []Group {
	var out []Group
	for _, c := range collections {
		out = append(out, c...)
	}
	return out
}
