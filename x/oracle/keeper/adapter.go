package keeper

import (
	"math"

	sdkmath "cosmossdk.io/math"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// NormalizeFeed converts a raw provider record into canonical 6-decimal price
// data, then applies the confidence and staleness gates. Dispatch is strictly
// by the record's provider tag.
func NormalizeFeed(feed types.FeedRecord, now int64, params types.Params) (types.PriceData, error) {
	var (
		data types.PriceData
		err  error
	)

	switch feed.Provider {
	case types.ProviderPyth:
		data, err = normalizePyth(feed.Pyth)
	case types.ProviderChainlink:
		data, err = normalizeChainlink(feed.Chainlink)
	case types.ProviderCustom:
		data, err = normalizeCustom(feed.Custom)
	case types.ProviderBand:
		return types.PriceData{}, types.ErrInvalidProvider.Wrap("band adapter not available")
	default:
		return types.PriceData{}, types.ErrInvalidProvider.Wrapf("provider %d", feed.Provider)
	}
	if err != nil {
		return types.PriceData{}, err
	}

	if data.Price == 0 {
		return types.PriceData{}, types.ErrInvalidOracleData.Wrap("normalized price is zero")
	}

	// Confidence gate: the interval may not exceed MaxConfidenceBps of the
	// price. Computed in wide integers so conf*10000 cannot wrap.
	confBps := sdkmath.NewIntFromUint64(data.Confidence).
		MulRaw(types.BpsBase).
		Quo(sdkmath.NewIntFromUint64(data.Price))
	if confBps.GT(sdkmath.NewInt(int64(params.MaxConfidenceBps))) {
		return types.PriceData{}, types.ErrLowConfidence.Wrapf(
			"confidence %s bps exceeds ceiling %d bps", confBps, params.MaxConfidenceBps)
	}

	// Staleness gate. Publish times from the future clamp to age zero rather
	// than rejecting, matching the ingestion policy for minor clock skew.
	age := now - data.PublishedAt
	if age < 0 {
		age = 0
	}
	if age > params.CriticalStalenessSeconds {
		return types.PriceData{}, types.ErrCriticallyStale.Wrapf(
			"feed age %ds exceeds critical ceiling %ds", age, params.CriticalStalenessSeconds)
	}

	return data, nil
}

// IsModeratelyStale reports whether a reading is past the moderate staleness
// mark. Such readings are still ingested; callers log them.
func IsModeratelyStale(publishedAt, now int64, params types.Params) bool {
	age := now - publishedAt
	return age > params.ModerateStalenessSeconds
}

func normalizePyth(rec *types.PythRecord) (types.PriceData, error) {
	if rec == nil {
		return types.PriceData{}, types.ErrInvalidOracleData.Wrap("missing pyth payload")
	}
	if rec.Status != types.PythStatusTrading {
		return types.PriceData{}, types.ErrInvalidOracleData.Wrapf("pyth status %d is not trading", rec.Status)
	}
	if rec.Price <= 0 {
		return types.PriceData{}, types.ErrInvalidOracleData.Wrapf("non-positive pyth price %d", rec.Price)
	}

	// Pyth raw value is price * 10^expo; canonical form wants 6 decimals, so
	// the total shift is expo + 6.
	shift := rec.Expo + types.PriceDecimals
	price, err := rescale(uint64(rec.Price), shift)
	if err != nil {
		return types.PriceData{}, err
	}
	conf, err := rescale(rec.Conf, shift)
	if err != nil {
		return types.PriceData{}, err
	}

	return types.PriceData{
		Price:       price,
		Confidence:  conf,
		PublishedAt: rec.PublishTime,
	}, nil
}

func normalizeChainlink(rec *types.ChainlinkRecord) (types.PriceData, error) {
	if rec == nil {
		return types.PriceData{}, types.ErrInvalidOracleData.Wrap("missing chainlink payload")
	}
	if rec.Answer <= 0 {
		return types.PriceData{}, types.ErrInvalidOracleData.Wrapf("non-positive chainlink answer %d", rec.Answer)
	}
	if rec.Decimals > math.MaxInt32 {
		return types.PriceData{}, types.ErrInvalidOracleData.Wrapf("chainlink decimals %d out of range", rec.Decimals)
	}

	shift := int32(types.PriceDecimals) - int32(rec.Decimals)
	price, err := rescale(uint64(rec.Answer), shift)
	if err != nil {
		return types.PriceData{}, err
	}
	conf, err := rescale(rec.StdDev, shift)
	if err != nil {
		return types.PriceData{}, err
	}

	return types.PriceData{
		Price:       price,
		Confidence:  conf,
		PublishedAt: rec.RoundOpenedAt,
	}, nil
}

func normalizeCustom(rec *types.CustomRecord) (types.PriceData, error) {
	if rec == nil {
		return types.PriceData{}, types.ErrInvalidOracleData.Wrap("missing custom payload")
	}

	// Custom records are already canonical microUSD.
	return types.PriceData{
		Price:       rec.Price,
		Confidence:  rec.Confidence,
		PublishedAt: rec.PublishedAt,
	}, nil
}

// rescale shifts v by the given power of ten. Positive shifts that would
// overflow uint64 fail rather than wrap; negative shifts truncate.
func rescale(v uint64, shift int32) (uint64, error) {
	if v == 0 || shift == 0 {
		return v, nil
	}

	if shift > 0 {
		for i := int32(0); i < shift; i++ {
			if v > math.MaxUint64/10 {
				return 0, types.ErrCalculation.Wrapf("decimal rescale by 10^%d overflows", shift)
			}
			v *= 10
		}
		return v, nil
	}

	for i := shift; i < 0 && v > 0; i++ {
		v /= 10
	}
	return v, nil
}
