package keeper

var (
	// ModuleNamespace is the namespace byte for the oracle module (0x01)
	// All store keys are prefixed with this byte to prevent collisions with other modules
	ModuleNamespace = byte(0x01)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01, 0x01}

	// ControllerKeyPrefix is the prefix for per-asset controller records
	ControllerKeyPrefix = []byte{0x01, 0x02}
)

// GetControllerKey returns the store key for a controller by asset id
func GetControllerKey(assetId string) []byte {
	return append(ControllerKeyPrefix, []byte(assetId)...)
}
