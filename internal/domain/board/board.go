package board

import (
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
)

// Side is one of the four edges of the board
type Side int

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom

	numSides = 4
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Location is a position on the ring
type Location struct {
	Side  Side
	Index int
}

// Board is a rectangular ring of spaces. Sides are stored back to back in
// ring order (left, top, right, bottom) with an offset table marking where
// each side starts.
type Board struct {
	ring    []*Space
	offsets [numSides]int
	lengths [numSides]int
	byName  map[string]int
}

// New builds a board from its four sides. Opposite sides must have the
// same length so the ring closes into a rectangle.
func New(left, top, right, bottom []*Space) (*Board, error) {
	sides := [numSides][]*Space{left, top, right, bottom}

	if len(left) != len(right) {
		return nil, boarderr.Validationf("left column has %d spaces but right column has %d", len(left), len(right))
	}
	if len(top) != len(bottom) {
		return nil, boarderr.Validationf("top row has %d spaces but bottom row has %d", len(top), len(bottom))
	}

	b := &Board{
		byName: make(map[string]int),
	}
	for side, spaces := range sides {
		if len(spaces) == 0 {
			return nil, boarderr.Validationf("%s side has no spaces", Side(side))
		}
		b.offsets[side] = len(b.ring)
		b.lengths[side] = len(spaces)
		for i, space := range spaces {
			if space == nil {
				return nil, boarderr.Validationf("%s side has a nil space at %d", Side(side), i)
			}
			if space.Name == "" {
				return nil, boarderr.Validationf("%s side has an unnamed space at %d", Side(side), i)
			}
			if _, exists := b.byName[space.Name]; exists {
				return nil, boarderr.Validationf("space %q appears twice", space.Name)
			}
			if space.Ownable() && space.Cost <= 0 {
				return nil, boarderr.Validationf("property %q needs a positive cost", space.Name)
			}
			b.byName[space.Name] = len(b.ring)
			b.ring = append(b.ring, space)
		}
	}

	return b, nil
}

// Len returns the number of spaces on the ring
func (b *Board) Len() int {
	return len(b.ring)
}

// SideLen returns the number of spaces on a side
func (b *Board) SideLen(side Side) int {
	return b.lengths[side]
}

// Side returns the spaces of one side in ring order
func (b *Board) Side(side Side) []*Space {
	start := b.offsets[side]
	return b.ring[start : start+b.lengths[side]]
}

// Valid reports whether loc points at a space on this board
func (b *Board) Valid(loc Location) bool {
	return loc.Side >= SideLeft && loc.Side < numSides && loc.Index >= 0 && loc.Index < b.lengths[loc.Side]
}

// Space returns the space at loc, nil when loc is off the board
func (b *Board) Space(loc Location) *Space {
	if !b.Valid(loc) {
		return nil
	}
	return b.ring[b.flat(loc)]
}

// Locate finds a space by name
func (b *Board) Locate(name string) (Location, bool) {
	i, ok := b.byName[name]
	if !ok {
		return Location{}, false
	}
	return b.location(i), true
}

// Spaces returns every space in ring order
func (b *Board) Spaces() []*Space {
	out := make([]*Space, len(b.ring))
	copy(out, b.ring)
	return out
}

// Properties returns every ownable space in ring order
func (b *Board) Properties() []*Space {
	var out []*Space
	for _, space := range b.ring {
		if space.Ownable() {
			out = append(out, space)
		}
	}
	return out
}

// ColorGroup returns the ownable spaces sharing a color tag
func (b *Board) ColorGroup(color string) []*Space {
	var out []*Space
	for _, space := range b.ring {
		if space.Ownable() && space.Color == color {
			out = append(out, space)
		}
	}
	return out
}

// Colors returns the distinct color tags of ownable spaces in ring order
func (b *Board) Colors() []string {
	seen := make(map[string]bool)
	var out []string
	for _, space := range b.ring {
		if space.Ownable() && !seen[space.Color] {
			seen[space.Color] = true
			out = append(out, space.Color)
		}
	}
	return out
}

// OwnedBy returns the spaces owned by a player in ring order
func (b *Board) OwnedBy(playerID string) []*Space {
	var out []*Space
	for _, space := range b.ring {
		if playerID != "" && space.Owner() == playerID {
			out = append(out, space)
		}
	}
	return out
}

// ClearOwners releases every property
func (b *Board) ClearOwners() {
	for _, space := range b.ring {
		space.ClearOwner()
	}
}

// GridSize returns the rows and columns needed to draw the ring as a
// rectangle with empty corners.
func (b *Board) GridSize() (rows, cols int) {
	return b.lengths[SideLeft] + 2, b.lengths[SideTop] + 2
}

// GridPosition maps a location to its cell. The left column runs bottom to
// top, the top row left to right, the right column top to bottom and the
// bottom row right to left, so forward movement goes clockwise.
func (b *Board) GridPosition(loc Location) (row, col int) {
	height := b.lengths[SideLeft]
	width := b.lengths[SideTop]

	switch loc.Side {
	case SideLeft:
		return height - loc.Index, 0
	case SideTop:
		return 0, loc.Index + 1
	case SideRight:
		return loc.Index + 1, width + 1
	default:
		return height + 1, width - loc.Index
	}
}

func (b *Board) flat(loc Location) int {
	return b.offsets[loc.Side] + loc.Index
}

func (b *Board) location(flat int) Location {
	for side := numSides - 1; side >= 0; side-- {
		if flat >= b.offsets[side] {
			return Location{Side: Side(side), Index: flat - b.offsets[side]}
		}
	}
	return Location{}
}
