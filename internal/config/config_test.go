package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layerWithTarget(extra map[string]string) Layer {
	values := map[string]string{"output_target": "out.csv"}
	for k, v := range extra {
		values[k] = v
	}
	return NewMapLayer("test", values)
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(layerWithTarget(nil))
	require.NoError(t, err)

	assert.Equal(t, "Hit17", cfg.DealerRule)
	assert.Equal(t, "ReSplit", cfg.SplitRule)
	assert.Equal(t, "SomeStrategy", cfg.PlayerRule)
	assert.Equal(t, "Flat", cfg.BettingRule)
	assert.Equal(t, 6, cfg.Decks)
	assert.Equal(t, 50, cfg.Limit)
	assert.Equal(t, "3:2", cfg.Payout)
	assert.Equal(t, 100, cfg.Rounds)
	assert.Equal(t, 50, cfg.Stake)
	assert.Equal(t, 100, cfg.Samples)
	assert.Equal(t, "out.csv", cfg.OutputTarget)
	assert.False(t, cfg.Verbose)
}

func TestResolvePrecedence(t *testing.T) {
	high := NewMapLayer("high", map[string]string{"stake": "200"})
	low := layerWithTarget(map[string]string{"stake": "75", "rounds": "10"})

	cfg, err := Resolve(high, low)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Stake, "highest priority layer wins")
	assert.Equal(t, 10, cfg.Rounds, "unresolved fields fall through to lower layers")

	// Changing the lower layer's value for an already-resolved field must not
	// change the result.
	low2 := layerWithTarget(map[string]string{"stake": "999", "rounds": "10"})
	cfg2, err := Resolve(high, low2)
	require.NoError(t, err)
	assert.Equal(t, cfg.Stake, cfg2.Stake)
}

func TestResolveMissingRequired(t *testing.T) {
	_, err := Resolve(NewMapLayer("empty", nil))

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "output_target", missing.Field)
}

func TestResolveTypeError(t *testing.T) {
	_, err := Resolve(layerWithTarget(map[string]string{"samples": "x"}))

	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "samples", typeErr.Field)
	assert.Equal(t, "test", typeErr.Layer)
	assert.Contains(t, err.Error(), "samples")
}

func TestResolveDoesNotMutateLayers(t *testing.T) {
	values := map[string]string{"output_target": "out.csv", "stake": "75"}
	layer := NewMapLayer("test", values)
	_, err := Resolve(layer)
	require.NoError(t, err)

	v, ok := layer.Lookup("stake")
	require.True(t, ok)
	assert.Equal(t, "75", v)

	// The layer copied its input; mutating the source map changes nothing.
	values["stake"] = "1"
	v, _ = layer.Lookup("stake")
	assert.Equal(t, "75", v)
}

func TestEnvLayer(t *testing.T) {
	t.Setenv("SIM_STAKE", "100")
	t.Setenv("SIM_SAMPLES", "7")
	os.Unsetenv("SIM_ROUNDS")

	layer, err := EnvLayer()
	require.NoError(t, err)

	v, ok := layer.Lookup("stake")
	require.True(t, ok)
	assert.Equal(t, "100", v)

	v, ok = layer.Lookup("samples")
	require.True(t, ok)
	assert.Equal(t, "7", v)

	_, ok = layer.Lookup("rounds")
	assert.False(t, ok, "absent variable means the layer does not supply the field")
}

func TestEnvLayerCoercionFailure(t *testing.T) {
	t.Setenv("SIM_SAMPLES", "not-a-number")

	layer, err := EnvLayer()
	require.NoError(t, err)

	_, err = Resolve(layerWithTarget(nil), layer)
	// The flags layer above does not supply samples, so the malformed env
	// value is reached and must fail with the layer identified.
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "samples", typeErr.Field)
	assert.Equal(t, "environment", typeErr.Layer)
}

func TestLoadFileLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dealer_rule: Stand17\ndecks: 4\n"), 0o644))

	layer, err := LoadFileLayer(path)
	require.NoError(t, err)

	cfg, err := Resolve(layerWithTarget(nil), layer)
	require.NoError(t, err)
	assert.Equal(t, "Stand17", cfg.DealerRule)
	assert.Equal(t, 4, cfg.Decks)
}

func TestParsePayout(t *testing.T) {
	cases := []struct {
		in   string
		want Payout
		ok   bool
	}{
		{"(3,2)", Payout{3, 2}, true},
		{"3:2", Payout{3, 2}, true},
		{"(6,5)", Payout{6, 5}, true},
		{" 3 : 2 ", Payout{3, 2}, true},
		{"(1,2,3)", Payout{}, false},
		{"not-a-tuple", Payout{}, false},
		{"(3)", Payout{}, false},
		{"(0,2)", Payout{}, false},
		{"(-3,2)", Payout{}, false},
	}
	for _, tc := range cases {
		got, err := ParsePayout(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		} else {
			var payoutErr *PayoutFormatError
			require.ErrorAs(t, err, &payoutErr, tc.in)
		}
	}
}

func TestPayoutRatio(t *testing.T) {
	assert.InDelta(t, 1.5, Payout{3, 2}.Ratio(), 1e-9)
	assert.Equal(t, "3:2", Payout{3, 2}.String())
}

func TestCheckRanges(t *testing.T) {
	cfg, err := Resolve(layerWithTarget(nil))
	require.NoError(t, err)
	require.NoError(t, cfg.CheckRanges())

	bad := cfg
	bad.Decks = 0
	assert.Error(t, bad.CheckRanges())

	bad = cfg
	bad.Payout = "bogus"
	err = bad.CheckRanges()
	var payoutErr *PayoutFormatError
	assert.True(t, errors.As(err, &payoutErr))
}
