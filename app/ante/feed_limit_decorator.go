package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	oraclekeeper "github.com/meridian-chain/meridian/x/oracle/keeper"
	oracletypes "github.com/meridian-chain/meridian/x/oracle/types"
)

// Gas charged per feed record before the consensus round runs. Normalization
// and per-source gating are cheap but not free; metering here keeps oversized
// submissions from riding on the flat tx cost.
const gasPerFeedRecord = 2_000

// FeedLimitDecorator bounds oracle feed submissions before they reach the
// consensus path. It rejects batches larger than the registry cap and drops
// submissions for assets whose circuit breaker is engaged, so halted assets
// do not pay for a consensus round that is guaranteed to fail.
type FeedLimitDecorator struct {
	keeper oraclekeeper.Keeper
}

// NewFeedLimitDecorator creates a new FeedLimitDecorator.
func NewFeedLimitDecorator(keeper oraclekeeper.Keeper) FeedLimitDecorator {
	return FeedLimitDecorator{keeper: keeper}
}

// AnteHandle implements the AnteDecorator interface.
func (d FeedLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	if simulate {
		return next(ctx, tx, simulate)
	}

	for _, msg := range tx.GetMsgs() {
		update, ok := msg.(*oracletypes.MsgUpdateConsensus)
		if !ok {
			continue
		}

		if err := d.validateUpdate(ctx, update); err != nil {
			return ctx, err
		}
	}

	return next(ctx, tx, simulate)
}

func (d FeedLimitDecorator) validateUpdate(ctx sdk.Context, msg *oracletypes.MsgUpdateConsensus) error {
	params := d.keeper.GetParams(ctx)

	maxFeeds := int(params.MaxSourcesPerController)
	if len(msg.Feeds) > maxFeeds {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"too many feed records: %d > %d", len(msg.Feeds), maxFeeds)
	}

	ctx.GasMeter().ConsumeGas(uint64(len(msg.Feeds))*gasPerFeedRecord, "oracle feed records")

	controller, found := d.keeper.GetController(ctx, msg.AssetId)
	if !found {
		// Let the handler produce the canonical not-found error.
		return nil
	}

	if controller.Breaker.Active {
		return oracletypes.ErrCircuitBreakerActive.Wrapf(
			"asset %s is halted: %s", msg.AssetId, controller.Breaker.Reason)
	}

	return nil
}
