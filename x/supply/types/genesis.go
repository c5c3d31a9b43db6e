package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState holds the supply module's genesis data.
type GenesisState struct {
	Params      Params       `json:"params"`
	Controllers []Controller `json:"controllers"`
}

// DefaultGenesis returns the default genesis state for the supply module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		Controllers: []Controller{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(gs.Controllers))
	for _, c := range gs.Controllers {
		if err := sdk.ValidateDenom(c.Denom); err != nil {
			return fmt.Errorf("controller denom: %w", err)
		}
		if seen[c.Denom] {
			return fmt.Errorf("duplicate controller for denom %s", c.Denom)
		}
		seen[c.Denom] = true

		if c.Authority == "" {
			return fmt.Errorf("controller %s: authority cannot be empty", c.Denom)
		}
		if c.MinSupply > 0 && c.CurrentSupply < c.MinSupply {
			return fmt.Errorf("controller %s: current supply %d below floor %d",
				c.Denom, c.CurrentSupply, c.MinSupply)
		}
		if err := c.Policy.Validate(); err != nil {
			return fmt.Errorf("controller %s: %w", c.Denom, err)
		}
	}

	return nil
}
