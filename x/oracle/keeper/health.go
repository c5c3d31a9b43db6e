package keeper

import (
	"context"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// GetHealth returns the registry health snapshot for an asset.
func (k Keeper) GetHealth(ctx context.Context, assetId string) (types.HealthSnapshot, error) {
	controller, found := k.GetController(ctx, assetId)
	if !found {
		return types.HealthSnapshot{}, types.ErrControllerNotFound.Wrapf("asset %s", assetId)
	}
	return controller.Health, nil
}

// RequireHealthy fails when the registry is degraded. Consumers that must not
// act on degraded data call this before trusting a consensus read.
func (k Keeper) RequireHealthy(ctx context.Context, assetId string) error {
	health, err := k.GetHealth(ctx, assetId)
	if err != nil {
		return err
	}
	if health.Degraded {
		return types.ErrSystemDegraded.Wrapf(
			"asset %s: %d/%d sources active", assetId, health.ActiveOracles, health.TotalOracles)
	}
	return nil
}
