package types

import (
	"fmt"
)

// GenesisState holds the oracle module's genesis data.
type GenesisState struct {
	Params      Params       `json:"params"`
	Controllers []Controller `json:"controllers"`
}

// DefaultGenesis returns the default genesis state for the oracle module.
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
		if c.AssetId == "" {
			return fmt.Errorf("controller asset id cannot be empty")
		}
		if seen[c.AssetId] {
			return fmt.Errorf("duplicate controller for asset %s", c.AssetId)
		}
		seen[c.AssetId] = true

		if c.Authority == "" {
			return fmt.Errorf("controller %s: authority cannot be empty", c.AssetId)
		}
		if c.MinRequiredOracles == 0 {
			return fmt.Errorf("controller %s: min required oracles must be positive", c.AssetId)
		}

		ids := make(map[string]bool, len(c.Sources))
		for _, s := range c.Sources {
			if s.SourceId == "" {
				return fmt.Errorf("controller %s: source id cannot be empty", c.AssetId)
			}
			if ids[s.SourceId] {
				return fmt.Errorf("controller %s: duplicate source %s", c.AssetId, s.SourceId)
			}
			ids[s.SourceId] = true

			if !s.Provider.Valid() {
				return fmt.Errorf("controller %s: source %s has invalid provider", c.AssetId, s.SourceId)
			}
			if s.Weight > MaxSourceWeight {
				return fmt.Errorf("controller %s: source %s weight %d exceeds %d",
					c.AssetId, s.SourceId, s.Weight, MaxSourceWeight)
			}
			if s.ConsecutiveFailures > MaxConsecutiveFailures {
				return fmt.Errorf("controller %s: source %s failure counter exceeds saturation ceiling",
					c.AssetId, s.SourceId)
			}
		}
	}

	return nil
}
