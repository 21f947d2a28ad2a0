package strategy

// DealerRule decides whether the dealer draws another card.
type DealerRule interface {
	Name() string
	// Hit reports whether the dealer hits on the given hand total. soft is
	// true when an ace is currently counted as 11.
	Hit(total int, soft bool) bool
}

// Hit17 has the dealer hit soft 17 (the common house rule).
type Hit17 struct{}

func (Hit17) Name() string { return "Hit17" }

func (Hit17) Hit(total int, soft bool) bool {
	if total < 17 {
		return true
	}
	return total == 17 && soft
}

// Stand17 has the dealer stand on any 17.
type Stand17 struct{}

func (Stand17) Name() string { return "Stand17" }

func (Stand17) Hit(total int, _ bool) bool { return total < 17 }

var dealerTable = map[string]func() DealerRule{
	"Hit17":   func() DealerRule { return Hit17{} },
	"Stand17": func() DealerRule { return Stand17{} },
}

// ResolveDealer returns a fresh dealer rule for the given key.
func ResolveDealer(key string) (DealerRule, error) {
	return resolve(AxisDealer, dealerTable, key)
}

// DealerKeys lists the accepted dealer rule keys, sorted.
func DealerKeys() []string { return keys(dealerTable) }
