package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

import (
	"fmt"
	"strings"
)

// Roller rolls dice for a game. Each game gets its own Roller so seeded
// sources can be replayed.
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult holds the individual faces of a roll
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// IsDouble reports whether two or more dice all show the same face
func (r *RollResult) IsDouble() bool {
	if r == nil || len(r.Rolls) < 2 {
		return false
	}
	for _, roll := range r.Rolls[1:] {
		if roll != r.Rolls[0] {
			return false
		}
	}
	return true
}

func (r *RollResult) String() string {
	faces := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		faces[i] = fmt.Sprintf("%d", roll)
	}
	return fmt.Sprintf("%s = %d", strings.Join(faces, " + "), r.Total)
}
