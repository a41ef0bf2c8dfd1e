package dice

import (
	"errors"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

// Source is a seeded random source. It rolls dice and also serves the
// shuffles and percentage checks a game needs, so one seed replays a whole game.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// NewSource creates a source that replays identically for the same seed
func NewSource(seed int64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewRandomSource seeds a source from the wall clock
func NewRandomSource() *Source {
	return NewSource(time.Now().UnixNano())
}

// Seed returns the seed the source was created with
func (s *Source) Seed() int64 {
	return s.seed
}

// Roll implements Roller.Roll
func (s *Source) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	raw := 0
	for i := range rolls {
		rolls[i] = s.rng.Intn(sides) + 1
		raw += rolls[i]
	}

	log.Debugf("Rolling %dd%d: %v total: %d", count, sides, rolls, raw+bonus)
	return &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: raw,
	}, nil
}

// Intn returns a value in [0, n)
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
