package sim

import "math/rand"

// ranks run 1..13; ace is 1 and face cards are 11..13.
const (
	ranksPerDeck = 13
	suitsPerDeck = 4
)

// cardValue returns the blackjack value of a rank, counting aces as 1.
// Soft-ace handling happens in hand totaling.
func cardValue(rank int) int {
	if rank > 10 {
		return 10
	}
	return rank
}

// Shoe deals cards from a fixed number of shuffled decks and reshuffles the
// full complement when it runs dry.
type Shoe struct {
	decks int
	cards []int
	next  int
	rng   *rand.Rand
}

func NewShoe(decks int, rng *rand.Rand) *Shoe {
	s := &Shoe{decks: decks, rng: rng}
	s.shuffle()
	return s
}

func (s *Shoe) shuffle() {
	n := s.decks * ranksPerDeck * suitsPerDeck
	if cap(s.cards) < n {
		s.cards = make([]int, n)
	}
	s.cards = s.cards[:n]
	i := 0
	for d := 0; d < s.decks; d++ {
		for suit := 0; suit < suitsPerDeck; suit++ {
			for rank := 1; rank <= ranksPerDeck; rank++ {
				s.cards[i] = rank
				i++
			}
		}
	}
	s.rng.Shuffle(n, func(a, b int) {
		s.cards[a], s.cards[b] = s.cards[b], s.cards[a]
	})
	s.next = 0
}

// Draw deals the next card rank, reshuffling first if the shoe is empty.
func (s *Shoe) Draw() int {
	if s.next >= len(s.cards) {
		s.shuffle()
	}
	c := s.cards[s.next]
	s.next++
	return c
}
