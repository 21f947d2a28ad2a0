package sim

import (
	"blackjack-sim/internal/config"
	"blackjack-sim/internal/strategy"
)

// Table bundles the house-side parameters of a game: shoe size, bet limit,
// blackjack payout, and the dealer and split policies in force.
type Table struct {
	Decks  int
	Limit  int
	Payout config.Payout
	Dealer strategy.DealerRule
	Split  strategy.SplitRule
}

// Player bundles the player-side parameters: play and betting policies, the
// session length in rounds, and the starting stake in bet units.
type Player struct {
	Play    strategy.PlayerRule
	Betting strategy.BettingRule
	Rounds  int
	Stake   int
}
