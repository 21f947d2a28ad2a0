package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyResolves(t *testing.T) {
	for _, key := range DealerKeys() {
		rule, err := ResolveDealer(key)
		require.NoError(t, err)
		assert.Equal(t, key, rule.Name())
	}
	for _, key := range SplitKeys() {
		rule, err := ResolveSplit(key)
		require.NoError(t, err)
		assert.Equal(t, key, rule.Name())
	}
	for _, key := range PlayerKeys() {
		rule, err := ResolvePlayer(key)
		require.NoError(t, err)
		assert.Equal(t, key, rule.Name())
	}
	for _, key := range BettingKeys() {
		rule, err := ResolveBetting(key)
		require.NoError(t, err)
		assert.Equal(t, key, rule.Name())
	}
}

func TestUnknownKey(t *testing.T) {
	_, err := ResolveBetting("DoesNotExist")
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, AxisBetting, resErr.Axis)
	assert.Equal(t, "DoesNotExist", resErr.Key)
	assert.Contains(t, err.Error(), "Martingale")

	_, err = ResolveDealer("Hit16")
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, AxisDealer, resErr.Axis)
}

func TestResolutionReturnsFreshInstances(t *testing.T) {
	a, err := ResolveBetting("Martingale")
	require.NoError(t, err)
	b, err := ResolveBetting("Martingale")
	require.NoError(t, err)

	// Advancing one progression must not be visible in the other.
	a.Lost()
	a.Lost()
	assert.Equal(t, 4.0, a.Bet())
	assert.Equal(t, 1.0, b.Bet())
}

func TestDealerRules(t *testing.T) {
	hit17, _ := ResolveDealer("Hit17")
	stand17, _ := ResolveDealer("Stand17")

	assert.True(t, hit17.Hit(16, false))
	assert.True(t, hit17.Hit(17, true), "Hit17 hits soft 17")
	assert.False(t, hit17.Hit(17, false))
	assert.False(t, hit17.Hit(18, true))

	assert.True(t, stand17.Hit(16, true))
	assert.False(t, stand17.Hit(17, true), "Stand17 stands on any 17")
}

func TestSplitRules(t *testing.T) {
	resplit, _ := ResolveSplit("ReSplit")
	noResplit, _ := ResolveSplit("NoReSplit")
	noAces, _ := ResolveSplit("NoReSplitAces")

	assert.True(t, resplit.Split(8, 2))
	assert.True(t, noResplit.Split(8, 0))
	assert.False(t, noResplit.Split(8, 1))
	assert.True(t, noAces.Split(8, 1))
	assert.True(t, noAces.Split(1, 0))
	assert.False(t, noAces.Split(1, 1), "aces may not be re-split")
}

func TestPlayerRules(t *testing.T) {
	some, _ := ResolvePlayer("SomeStrategy")
	another, _ := ResolvePlayer("AnotherStrategy")

	assert.True(t, some.Hit(16, false, 10))
	assert.False(t, some.Hit(17, false, 10))

	assert.True(t, another.Hit(11, false, 10))
	assert.False(t, another.Hit(12, false, 10))
	assert.True(t, another.Hit(17, true, 10), "soft hands cannot bust")
	assert.False(t, another.Hit(18, true, 10))
}

func TestMartingaleProgression(t *testing.T) {
	m, _ := ResolveBetting("Martingale")

	assert.Equal(t, 1.0, m.Bet())
	m.Lost()
	assert.Equal(t, 2.0, m.Bet())
	m.Lost()
	assert.Equal(t, 4.0, m.Bet())
	m.Won()
	assert.Equal(t, 1.0, m.Bet())
	m.Lost()
	m.Reset()
	assert.Equal(t, 1.0, m.Bet())
}

func TestOneThreeTwoSixProgression(t *testing.T) {
	o, _ := ResolveBetting("OneThreeTwoSix")

	want := []float64{1, 3, 2, 6}
	for _, w := range want {
		assert.Equal(t, w, o.Bet())
		o.Won()
	}
	// Completing the cycle restarts it.
	assert.Equal(t, 1.0, o.Bet())

	o.Won()
	o.Won()
	o.Lost()
	assert.Equal(t, 1.0, o.Bet(), "a loss restarts the progression")
}
