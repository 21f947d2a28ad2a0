package sim

import (
	"fmt"
	"math/rand"
)

// maxSplitHands caps how many hands one round can split into.
const maxSplitHands = 4

// Outcome is the result of one simulated session: the sample index, how many
// rounds were actually played (a broke player stops early), and the balance
// the player walked away with.
type Outcome struct {
	Sample       int
	RoundsPlayed int
	FinalBalance float64
}

// Engine plays independent blackjack sessions and emits one Outcome per
// session. It is deterministic for a given seed.
type Engine struct {
	Table   Table
	Player  Player
	Samples int
	rng     *rand.Rand
}

func New(table Table, player Player, samples int, seed int64) *Engine {
	return &Engine{
		Table:   table,
		Player:  player,
		Samples: samples,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Run plays Samples sessions, calling emit once per session in order. Each
// session starts from a fresh shoe, the configured stake, and a reset betting
// progression. Emission is streaming: the engine holds no outcome beyond the
// one being emitted, and a non-nil error from emit stops the run.
func (e *Engine) Run(emit func(Outcome) error) error {
	if e.Table.Dealer == nil || e.Table.Split == nil || e.Player.Play == nil || e.Player.Betting == nil {
		return fmt.Errorf("engine: table and player policies must all be set")
	}
	if e.Table.Decks <= 0 || e.Table.Limit <= 0 || e.Player.Rounds <= 0 || e.Player.Stake <= 0 {
		return fmt.Errorf("engine: decks, limit, rounds and stake must be positive")
	}
	for i := 0; i < e.Samples; i++ {
		if err := emit(e.session(i)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) session(sample int) Outcome {
	shoe := NewShoe(e.Table.Decks, e.rng)
	e.Player.Betting.Reset()

	balance := float64(e.Player.Stake)
	rounds := 0
	for rounds < e.Player.Rounds {
		bet := e.Player.Betting.Bet()
		if bet > float64(e.Table.Limit) {
			bet = float64(e.Table.Limit)
		}
		if bet > balance {
			bet = balance
		}
		if bet <= 0 {
			break
		}

		net := e.playRound(shoe, bet, balance)
		balance += net
		rounds++

		switch {
		case net > 0:
			e.Player.Betting.Won()
		case net < 0:
			e.Player.Betting.Lost()
		}
		if balance <= 0 {
			break
		}
	}
	return Outcome{Sample: sample, RoundsPlayed: rounds, FinalBalance: balance}
}

// playRound plays one round for a bet and returns the net balance change.
// available is the player's balance before the round; splits commit one extra
// bet each and are only taken while the committed total stays within it.
func (e *Engine) playRound(shoe *Shoe, bet, available float64) float64 {
	player := &hand{cards: []int{shoe.Draw(), shoe.Draw()}, bet: bet}
	dealer := &hand{cards: []int{shoe.Draw(), shoe.Draw()}}
	dealerUp := dealer.cards[0]

	// Naturals settle immediately.
	playerBJ := player.blackjack()
	dealerBJ := dealer.blackjack()
	if playerBJ || dealerBJ {
		switch {
		case playerBJ && dealerBJ:
			return 0
		case playerBJ:
			return bet * e.Table.Payout.Ratio()
		default:
			return -bet
		}
	}

	hands := []*hand{player}
	committed := bet
	timesSplit := 0
	for i := 0; i < len(hands); i++ {
		h := hands[i]
		for h.pair() && len(hands) < maxSplitHands &&
			e.Table.Split.Split(h.cards[0], timesSplit) &&
			committed+bet <= available {
			moved := h.cards[1]
			h.split = true
			h.cards = []int{h.cards[0], shoe.Draw()}
			hands = append(hands, &hand{cards: []int{moved, shoe.Draw()}, bet: bet, split: true})
			committed += bet
			timesSplit++
		}
	}

	anyLive := false
	for _, h := range hands {
		for {
			t, soft := h.total()
			if t >= 21 || !e.Player.Play.Hit(t, soft, dealerUp) {
				break
			}
			h.cards = append(h.cards, shoe.Draw())
		}
		if !h.bust() {
			anyLive = true
		}
	}

	// The dealer only draws out the hand when a player hand is still live.
	if anyLive {
		for {
			t, soft := dealer.total()
			if !e.Table.Dealer.Hit(t, soft) {
				break
			}
			dealer.cards = append(dealer.cards, shoe.Draw())
		}
	}
	dealerTotal, _ := dealer.total()
	dealerBust := dealerTotal > 21

	net := 0.0
	for _, h := range hands {
		switch {
		case h.bust():
			net -= h.bet
		case dealerBust:
			net += h.bet
		default:
			t, _ := h.total()
			switch {
			case t > dealerTotal:
				net += h.bet
			case t < dealerTotal:
				net -= h.bet
			}
		}
	}
	return net
}
