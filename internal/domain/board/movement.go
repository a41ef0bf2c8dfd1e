package board

// MovedLocation is the result of a move: where the token ended up and
// every space it left behind on the way, in order.
type MovedLocation struct {
	Location
	Passed []*Space
}

// PassedSpace reports whether the move went over the named space
func (m MovedLocation) PassedSpace(name string) bool {
	return m.PassedCount(name, 0) > 0
}

// PassedCount counts how often the named space was passed, ignoring the
// first skip entries of the passed list.
func (m MovedLocation) PassedCount(name string, skip int) int {
	count := 0
	for i, space := range m.Passed {
		if i < skip {
			continue
		}
		if space.Name == name {
			count++
		}
	}
	return count
}

// Next returns the location one step forward, wrapping to index 0 of the
// next side in ring order.
func (b *Board) Next(loc Location) Location {
	if loc.Index+1 < b.lengths[loc.Side] {
		return Location{Side: loc.Side, Index: loc.Index + 1}
	}
	return Location{Side: (loc.Side + 1) % numSides, Index: 0}
}

// Prev returns the location one step backward, wrapping to the last index
// of the previous side.
func (b *Board) Prev(loc Location) Location {
	if loc.Index > 0 {
		return Location{Side: loc.Side, Index: loc.Index - 1}
	}
	side := (loc.Side + numSides - 1) % numSides
	return Location{Side: side, Index: b.lengths[side] - 1}
}

// Move walks steps spaces from start, forward for positive steps and
// backward for negative ones. Each step records the space being left.
func (b *Board) Move(start Location, steps int) MovedLocation {
	if steps == 0 {
		return MovedLocation{Location: start}
	}

	forward := steps > 0
	if !forward {
		steps = -steps
	}

	current := start
	passed := make([]*Space, 0, steps)
	for i := 0; i < steps; i++ {
		passed = append(passed, b.Space(current))
		if forward {
			current = b.Next(current)
		} else {
			current = b.Prev(current)
		}
	}

	return MovedLocation{Location: current, Passed: passed}
}

// Distance returns how many forward steps lead from one location to another.
// Zero means they are the same space.
func (b *Board) Distance(from, to Location) int {
	n := len(b.ring)
	return ((b.flat(to)-b.flat(from))%n + n) % n
}
