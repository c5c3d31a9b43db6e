package ante_test

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	protov2 "google.golang.org/protobuf/proto"

	"github.com/meridian-chain/meridian/app/ante"
	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	oracletypes "github.com/meridian-chain/meridian/x/oracle/types"
)

// testTx is a minimal sdk.Tx carrying messages and a memo.
type testTx struct {
	msgs []sdk.Msg
	memo string
}

func (tx testTx) GetMsgs() []sdk.Msg                    { return tx.msgs }
func (tx testTx) GetMsgsV2() ([]protov2.Message, error) { return nil, nil }
func (tx testTx) GetMemo() string                       { return tx.memo }

// passThrough is a terminal ante handler that records it ran.
func passThrough(called *bool) sdk.AnteHandler {
	return func(ctx sdk.Context, tx sdk.Tx, simulate bool) (sdk.Context, error) {
		*called = true
		return ctx, nil
	}
}

func TestMemoLimitDecorator(t *testing.T) {
	_, ctx := keepertest.OracleKeeper(t)
	d := ante.NewMemoLimitDecorator(ante.MaxMemoBytes)

	var called bool
	_, err := d.AnteHandle(ctx, testTx{memo: "ok"}, false, passThrough(&called))
	require.NoError(t, err)
	require.True(t, called)

	called = false
	oversized := strings.Repeat("x", ante.MaxMemoBytes+1)
	_, err = d.AnteHandle(ctx, testTx{memo: oversized}, false, passThrough(&called))
	require.Error(t, err)
	require.False(t, called)
}

func TestFeedLimitDecoratorFeedCap(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	d := ante.NewFeedLimitDecorator(k)

	maxFeeds := int(k.GetParams(ctx).MaxSourcesPerController)
	feeds := make([]oracletypes.FeedRecord, maxFeeds+1)
	for i := range feeds {
		feeds[i] = oracletypes.FeedRecord{
			SourceId: "src",
			Provider: oracletypes.ProviderCustom,
			Custom:   &oracletypes.CustomRecord{Price: 1_000_000, PublishedAt: ctx.BlockTime().Unix()},
		}
	}

	var called bool
	tx := testTx{msgs: []sdk.Msg{&oracletypes.MsgUpdateConsensus{
		Submitter: sdk.AccAddress([]byte("feed_submitter______")).String(),
		AssetId:   "MERUSD",
		Feeds:     feeds,
	}}}
	_, err := d.AnteHandle(ctx, tx, false, passThrough(&called))
	require.Error(t, err)
	require.False(t, called)

	// At the cap the tx passes through
	tx.msgs[0].(*oracletypes.MsgUpdateConsensus).Feeds = feeds[:maxFeeds]
	_, err = d.AnteHandle(ctx, tx, false, passThrough(&called))
	require.NoError(t, err)
	require.True(t, called)
}

func TestFeedLimitDecoratorHaltedAsset(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	d := ante.NewFeedLimitDecorator(k)

	authority := sdk.AccAddress([]byte("controller_authority")).String()
	_, err := k.InitializeController(ctx, authority, "MERUSD", 1, 0)
	require.NoError(t, err)
	require.NoError(t, k.ActivateCircuitBreaker(ctx, "MERUSD", "manual halt"))

	var called bool
	tx := testTx{msgs: []sdk.Msg{&oracletypes.MsgUpdateConsensus{
		Submitter: authority,
		AssetId:   "MERUSD",
		Feeds: []oracletypes.FeedRecord{{
			SourceId: "src",
			Provider: oracletypes.ProviderCustom,
			Custom:   &oracletypes.CustomRecord{Price: 1_000_000, PublishedAt: ctx.BlockTime().Unix()},
		}},
	}}}
	_, err = d.AnteHandle(ctx, tx, false, passThrough(&called))
	require.ErrorIs(t, err, oracletypes.ErrCircuitBreakerActive)
	require.False(t, called)

	// Unknown assets fall through to the handler
	tx.msgs[0].(*oracletypes.MsgUpdateConsensus).AssetId = "OTHER"
	_, err = d.AnteHandle(ctx, tx, false, passThrough(&called))
	require.NoError(t, err)
	require.True(t, called)

	// Simulation skips the guards entirely
	called = false
	tx.msgs[0].(*oracletypes.MsgUpdateConsensus).AssetId = "MERUSD"
	_, err = d.AnteHandle(ctx, tx, true, passThrough(&called))
	require.NoError(t, err)
	require.True(t, called)
}
