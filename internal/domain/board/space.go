package board

// Kind tags what happens when a token lands on a space
type Kind int

const (
	KindPlain Kind = iota
	// KindProperty can be owned but has no consequence for visitors
	KindProperty
	// KindPropertyRent charges visitors rent on top of its purchase cost
	KindPropertyRent
	// KindPropertyElimination gives visitors a percent chance to be eliminated
	KindPropertyElimination
	// KindRent is an unownable space that charges a fee to the bank
	KindRent
	// KindElimination is an unownable space with a percent chance of elimination
	KindElimination
	KindAction
	KindJail
	KindGoToJail
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindProperty:
		return "property"
	case KindPropertyRent:
		return "property-rent"
	case KindPropertyElimination:
		return "property-elimination"
	case KindRent:
		return "rent"
	case KindElimination:
		return "elimination"
	case KindAction:
		return "action"
	case KindJail:
		return "jail"
	case KindGoToJail:
		return "go-to-jail"
	default:
		return "unknown"
	}
}

// Ownable reports whether spaces of this kind can be bought
func (k Kind) Ownable() bool {
	return k == KindProperty || k == KindPropertyRent || k == KindPropertyElimination
}

// Amount is a rent or a chance. Fixed amounts are decided when the board is
// defined; random amounts are drawn between Min and Max at the moment of landing.
type Amount struct {
	Value  int
	Random bool
	Min    int
	Max    int
}

// Fixed returns an amount decided at definition time
func Fixed(v int) Amount {
	return Amount{Value: v}
}

// Between returns an amount drawn from [min, max] on every landing
func Between(min, max int) Amount {
	return Amount{Random: true, Min: min, Max: max}
}

// Resolve returns the concrete value, drawing with intn for random amounts
func (a Amount) Resolve(intn func(n int) int) int {
	if !a.Random {
		return a.Value
	}
	if a.Max <= a.Min {
		return a.Min
	}
	return a.Min + intn(a.Max-a.Min+1)
}

// Space is one cell of the ring. Everything but the owner is fixed once the
// board is built.
type Space struct {
	Name   string
	Color  string
	Kind   Kind
	Cost   int
	Rent   Amount
	Chance Amount

	owner string
}

func Plain(name, color string) *Space {
	return &Space{Name: name, Color: color, Kind: KindPlain}
}

func Property(name, color string, cost int) *Space {
	return &Space{Name: name, Color: color, Kind: KindProperty, Cost: cost}
}

func RentProperty(name, color string, cost int, rent Amount) *Space {
	return &Space{Name: name, Color: color, Kind: KindPropertyRent, Cost: cost, Rent: rent}
}

func EliminationProperty(name, color string, cost int, chance Amount) *Space {
	return &Space{Name: name, Color: color, Kind: KindPropertyElimination, Cost: cost, Chance: chance}
}

func Rent(name, color string, rent Amount) *Space {
	return &Space{Name: name, Color: color, Kind: KindRent, Rent: rent}
}

func Elimination(name, color string, chance Amount) *Space {
	return &Space{Name: name, Color: color, Kind: KindElimination, Chance: chance}
}

func Action(name, color string) *Space {
	return &Space{Name: name, Color: color, Kind: KindAction}
}

func Jail(name, color string) *Space {
	return &Space{Name: name, Color: color, Kind: KindJail}
}

func GoToJail(name, color string) *Space {
	return &Space{Name: name, Color: color, Kind: KindGoToJail}
}

// Ownable reports whether the space can be bought
func (s *Space) Ownable() bool {
	return s.Kind.Ownable()
}

// Owner returns the owning player id, empty when unowned
func (s *Space) Owner() string {
	return s.owner
}

func (s *Space) IsOwned() bool {
	return s.owner != ""
}

// SetOwner assigns the space to a player. Non-ownable spaces ignore it.
func (s *Space) SetOwner(playerID string) {
	if !s.Ownable() {
		return
	}
	s.owner = playerID
}

func (s *Space) ClearOwner() {
	s.owner = ""
}
