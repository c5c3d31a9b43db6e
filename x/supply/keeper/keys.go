package keeper

var (
	// ModuleNamespace is the namespace byte for the supply module (0x02)
	// All store keys are prefixed with this byte to prevent collisions with other modules
	ModuleNamespace = byte(0x02)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x02, 0x01}

	// ControllerKeyPrefix is the prefix for per-denom controller records
	ControllerKeyPrefix = []byte{0x02, 0x02}
)

// GetControllerKey returns the store key for a controller by denom
func GetControllerKey(denom string) []byte {
	return append(ControllerKeyPrefix, []byte(denom)...)
}
