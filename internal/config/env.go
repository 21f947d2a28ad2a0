package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envVars mirrors the environment variables the simulator recognizes.
// Pointer fields distinguish "unset" from "empty": an absent variable means
// the environment layer does not supply that field, not that it is zero.
type envVars struct {
	Samples *string `env:"SIM_SAMPLES"`
	Stake   *string `env:"SIM_STAKE"`
	Rounds  *string `env:"SIM_ROUNDS"`
}

// EnvLayer reads the SIM_* variables from the process environment and returns
// them as a configuration layer. Values stay textual; integer coercion (and
// its failure reporting) happens in Resolve like any other layer.
func EnvLayer() (Layer, error) {
	var vars envVars
	if err := env.Parse(&vars); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	values := map[string]string{}
	if vars.Samples != nil {
		values["samples"] = *vars.Samples
	}
	if vars.Stake != nil {
		values["stake"] = *vars.Stake
	}
	if vars.Rounds != nil {
		values["rounds"] = *vars.Rounds
	}
	return NewMapLayer("environment", values), nil
}
