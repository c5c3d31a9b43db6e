package cli

// Flag names used by the oracle CLI commands
const (
	FlagRequired = "required"
)
