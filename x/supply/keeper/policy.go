package keeper

import (
	sdkmath "cosmossdk.io/math"

	"github.com/meridian-chain/meridian/x/supply/types"
)

// GrowthBps returns the year-over-year price change in basis points: positive
// for growth, negative for decline. ok is false when the measurement is
// undefined (no year anchor), in which case policy takes no action.
func GrowthBps(currentPrice, yearStartPrice uint64) (int64, bool) {
	if yearStartPrice == 0 {
		return 0, false
	}

	cur := sdkmath.NewIntFromUint64(currentPrice)
	start := sdkmath.NewIntFromUint64(yearStartPrice)
	bps := cur.Sub(start).MulRaw(types.BpsBase).Quo(start)
	if !bps.IsInt64() {
		return 0, false
	}
	return bps.Int64(), true
}

// CalculateMintAmount applies the tiered mint table to the controller state.
// Zero means no action. Above the high-supply threshold only extreme growth
// mints, at the reduced post-cap rate.
func CalculateMintAmount(c types.Controller) (uint64, error) {
	growth, ok := GrowthBps(c.CurrentPrice, c.YearStartPrice)
	if !ok || growth <= 0 {
		return 0, nil
	}
	g := uint64(growth)
	p := c.Policy

	if c.CurrentSupply >= c.HighSupplyThreshold {
		if g >= uint64(p.ExtremeGrowthThresholdBps) {
			return bpsShare(c.CurrentSupply, p.PostCapMintRateBps)
		}
		return 0, nil
	}

	if g < uint64(p.MinGrowthForMintBps) {
		return 0, nil
	}
	if g >= uint64(p.HighGrowthThresholdBps) {
		return bpsShare(c.CurrentSupply, p.HighGrowthMintRateBps)
	}
	return bpsShare(c.CurrentSupply, p.MediumGrowthMintRateBps)
}

// CalculateBurnAmount applies the tiered burn table, symmetric on decline
// magnitude, with the supply floor layered on top: no burn at all within the
// 5% buffer above the floor, the reduced post-floor rate when a burn would
// dip into that buffer, and a final clamp so supply never falls below the
// floor.
func CalculateBurnAmount(c types.Controller) (uint64, error) {
	growth, ok := GrowthBps(c.CurrentPrice, c.YearStartPrice)
	if !ok || growth >= 0 {
		return 0, nil
	}
	decline := uint64(-growth)
	p := c.Policy

	floorBuffer, err := bufferedFloor(c.MinSupply)
	if err != nil {
		return 0, err
	}
	if c.CurrentSupply <= floorBuffer {
		return 0, nil
	}

	if decline < uint64(p.MinDeclineForBurnBps) {
		return 0, nil
	}

	rate := p.MediumDeclineBurnRateBps
	if decline >= uint64(p.HighDeclineThresholdBps) {
		rate = p.HighDeclineBurnRateBps
	}

	amount, err := bpsShare(c.CurrentSupply, rate)
	if err != nil {
		return 0, err
	}

	// A burn that would dip into the floor buffer re-runs at the reduced
	// post-floor rate before clamping.
	if c.CurrentSupply-amount < floorBuffer {
		amount, err = bpsShare(c.CurrentSupply, p.PostFloorBurnRateBps)
		if err != nil {
			return 0, err
		}
	}

	// Hard clamp: supply never falls below the floor.
	if c.CurrentSupply-amount < c.MinSupply {
		amount = c.CurrentSupply - c.MinSupply
	}

	return amount, nil
}

// IsAnnualEvaluationTime reports whether the 365-day anchor window has
// elapsed. Advisory: execution is gated by price freshness, not by this
// predicate.
func IsAnnualEvaluationTime(c types.Controller, now int64) bool {
	return now >= c.YearStartTimestamp+types.YearSeconds
}

// CanMintBasedOnTime reports whether a full year has passed since the last
// mint. Advisory: execution is gated by price freshness, not by this
// predicate.
func CanMintBasedOnTime(c types.Controller, now int64) bool {
	return c.LastMintTimestamp == 0 || now >= c.LastMintTimestamp+types.YearSeconds
}

// bpsShare computes amount*rateBps/10000 in wide integers.
func bpsShare(amount uint64, rateBps uint32) (uint64, error) {
	share := sdkmath.NewIntFromUint64(amount).
		MulRaw(int64(rateBps)).
		QuoRaw(types.BpsBase)
	if !share.IsUint64() {
		return 0, types.ErrCalculation.Wrapf("bps share of %d at %d bps overflows", amount, rateBps)
	}
	return share.Uint64(), nil
}

// bufferedFloor returns min_supply grown by the 5% floor buffer.
func bufferedFloor(minSupply uint64) (uint64, error) {
	buffered := sdkmath.NewIntFromUint64(minSupply).
		MulRaw(types.BpsBase + types.FloorBufferBps).
		QuoRaw(types.BpsBase)
	if !buffered.IsUint64() {
		return 0, types.ErrCalculation.Wrapf("floor buffer on %d overflows", minSupply)
	}
	return buffered.Uint64(), nil
}
