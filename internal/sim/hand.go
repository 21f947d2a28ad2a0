package sim

// hand is one blackjack hand and its committed bet.
type hand struct {
	cards []int
	bet   float64
	// split marks hands created by splitting; a 21 on a split hand is not a
	// natural and pays even money.
	split bool
}

// total returns the best hand total and whether an ace is counted as 11.
func (h *hand) total() (int, bool) {
	sum := 0
	aces := 0
	for _, c := range h.cards {
		sum += cardValue(c)
		if c == 1 {
			aces++
		}
	}
	if aces > 0 && sum+10 <= 21 {
		return sum + 10, true
	}
	return sum, false
}

func (h *hand) blackjack() bool {
	if h.split || len(h.cards) != 2 {
		return false
	}
	t, _ := h.total()
	return t == 21
}

func (h *hand) pair() bool {
	return len(h.cards) == 2 && h.cards[0] == h.cards[1]
}

func (h *hand) bust() bool {
	t, _ := h.total()
	return t > 21
}
