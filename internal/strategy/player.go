package strategy

// PlayerRule decides whether the player draws another card.
type PlayerRule interface {
	Name() string
	// Hit reports whether the player hits. dealerUp is the rank of the
	// dealer's face-up card (1 = ace, 10 = any ten-value card).
	Hit(total int, soft bool, dealerUp int) bool
}

// SomeStrategy mimics the dealer: hit below 17, stand otherwise.
type SomeStrategy struct{}

func (SomeStrategy) Name() string { return "SomeStrategy" }

func (SomeStrategy) Hit(total int, _ bool, _ int) bool { return total < 17 }

// AnotherStrategy never risks a bust on a hard hand: it hits below 12, and
// draws freely on soft hands up to 17 since a soft hand cannot bust.
type AnotherStrategy struct{}

func (AnotherStrategy) Name() string { return "AnotherStrategy" }

func (AnotherStrategy) Hit(total int, soft bool, _ int) bool {
	if soft {
		return total < 18
	}
	return total < 12
}

var playerTable = map[string]func() PlayerRule{
	"SomeStrategy":    func() PlayerRule { return SomeStrategy{} },
	"AnotherStrategy": func() PlayerRule { return AnotherStrategy{} },
}

// ResolvePlayer returns a fresh player rule for the given key.
func ResolvePlayer(key string) (PlayerRule, error) {
	return resolve(AxisPlayer, playerTable, key)
}

// PlayerKeys lists the accepted player rule keys, sorted.
func PlayerKeys() []string { return keys(playerTable) }
