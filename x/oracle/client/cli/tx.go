package cli

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// GetTxCmd returns the transaction commands for the oracle module
func GetTxCmd() *cobra.Command {
	oracleTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Oracle transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	oracleTxCmd.AddCommand(
		CmdInitializeController(),
		CmdAddOracleSource(),
		CmdSetEmergencyPrice(),
		CmdClearEmergencyPrice(),
		CmdActivateCircuitBreaker(),
		CmdResetCircuitBreaker(),
	)

	return oracleTxCmd
}

// CmdInitializeController returns a CLI command handler for creating a controller
func CmdInitializeController() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-controller [asset-id] [min-required-oracles]",
		Short: "Initialize the oracle controller for an asset",
		Long: `Initialize the multi-source oracle controller for an asset. The signer
becomes the controller authority.

Example:
  $ meridiand tx oracle init-controller MERUSD 1 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			minRequired, err := cast.ToUint32E(args[1])
			if err != nil {
				return fmt.Errorf("invalid min-required-oracles: %w", err)
			}

			msg := types.NewMsgInitializeController(
				clientCtx.GetFromAddress().String(),
				args[0],
				minRequired,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddOracleSource returns a CLI command handler for registering a source
func CmdAddOracleSource() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-source [asset-id] [source-id] [provider] [weight] [max-deviation-bps] [max-staleness-seconds]",
		Short: "Register a price-feed source with a controller",
		Long: `Register a price-feed source. Provider is one of: pyth, chainlink, custom.
Weight must be in [0, 100].

Example:
  $ meridiand tx oracle add-source MERUSD pyth-main pyth 60 1000 600 --from mykey`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			provider := types.ProviderKindFromString(args[2])
			if !provider.Valid() {
				return fmt.Errorf("unknown provider %q (want pyth, chainlink or custom)", args[2])
			}

			weight, err := cast.ToUint32E(args[3])
			if err != nil {
				return fmt.Errorf("invalid weight: %w", err)
			}
			maxDeviation, err := cast.ToUint32E(args[4])
			if err != nil {
				return fmt.Errorf("invalid max-deviation-bps: %w", err)
			}
			maxStaleness, err := cast.ToInt64E(args[5])
			if err != nil {
				return fmt.Errorf("invalid max-staleness-seconds: %w", err)
			}

			required, err := cmd.Flags().GetBool(FlagRequired)
			if err != nil {
				return err
			}

			msg := &types.MsgAddOracleSource{
				Authority:           clientCtx.GetFromAddress().String(),
				AssetId:             args[0],
				SourceId:            args[1],
				Provider:            provider,
				Weight:              weight,
				MaxDeviationBps:     maxDeviation,
				MaxStalenessSeconds: maxStaleness,
				IsRequired:          required,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagRequired, false, "Mark the source as required for consensus")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetEmergencyPrice returns a CLI command handler for the manual override
func CmdSetEmergencyPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-emergency-price [asset-id] [price-microusd] [expiration-seconds]",
		Short: "Install a manual emergency price override",
		Long: `Install a manual override price in microUSD (6 decimals). The override
outranks consensus and the circuit breaker until it expires or is cleared.

Example:
  $ meridiand tx oracle set-emergency-price MERUSD 1000000 3600 --from authority`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			price, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid price: %w", err)
			}
			expiration, err := cast.ToInt64E(args[2])
			if err != nil {
				return fmt.Errorf("invalid expiration: %w", err)
			}

			msg := &types.MsgSetEmergencyPrice{
				Authority:         clientCtx.GetFromAddress().String(),
				AssetId:           args[0],
				Price:             price,
				ExpirationSeconds: expiration,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClearEmergencyPrice returns a CLI command handler for clearing the override
func CmdClearEmergencyPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-emergency-price [asset-id]",
		Short: "Clear the manual emergency price override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgClearEmergencyPrice{
				Authority: clientCtx.GetFromAddress().String(),
				AssetId:   args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdActivateCircuitBreaker returns a CLI command handler for engaging the breaker
func CmdActivateCircuitBreaker() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activate-breaker [asset-id] [reason]",
		Short: "Engage the circuit breaker for an asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgActivateCircuitBreaker{
				Authority: clientCtx.GetFromAddress().String(),
				AssetId:   args[0],
				Reason:    args[1],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResetCircuitBreaker returns a CLI command handler for lifting the breaker
func CmdResetCircuitBreaker() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-breaker [asset-id]",
		Short: "Reset the circuit breaker once its cooldown elapsed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgResetCircuitBreaker{
				Authority: clientCtx.GetFromAddress().String(),
				AssetId:   args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
