// Package guard provides a store-backed execution lock. A lock token is
// written at entry and removed at exit, so a nested call into the same scope
// within one execution observes the token and fails instead of re-entering.
package guard

import (
	"context"

	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
)

// ErrReentrancy is returned when a scope is entered while already held.
var ErrReentrancy = errorsmod.Register("guard", 2, "reentrant execution detected")

// lockPrefix namespaces lock tokens away from module state (0xFE)
var lockPrefix = []byte{0xFE}

// Guard hands out per-scope execution locks backed by a KV store.
type Guard struct {
	storeService store.KVStoreService
}

// New creates a Guard on the given store service. Callers typically share the
// store service of the module whose operations need protection.
func New(storeService store.KVStoreService) Guard {
	return Guard{storeService: storeService}
}

func (g Guard) getStore(ctx context.Context) storetypes.KVStore {
	return runtime.KVStoreAdapter(g.storeService.OpenKVStore(ctx))
}

// Acquire takes the lock for a scope and returns the release function. The
// caller must invoke release on every path, normally via defer.
func (g Guard) Acquire(ctx context.Context, scope string) (func(), error) {
	store := g.getStore(ctx)
	key := lockKey(scope)

	if store.Has(key) {
		return nil, ErrReentrancy.Wrapf("scope %s", scope)
	}
	store.Set(key, []byte{1})

	return func() {
		store.Delete(key)
	}, nil
}

// Held reports whether a scope's lock token is currently present.
func (g Guard) Held(ctx context.Context, scope string) bool {
	return g.getStore(ctx).Has(lockKey(scope))
}

func lockKey(scope string) []byte {
	return append(lockPrefix, []byte(scope)...)
}
