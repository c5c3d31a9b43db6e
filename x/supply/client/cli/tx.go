package cli

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/meridian-chain/meridian/x/supply/types"
)

// GetTxCmd returns the transaction commands for the supply module
func GetTxCmd() *cobra.Command {
	supplyTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Supply transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	supplyTxCmd.AddCommand(
		CmdInitializeController(),
		CmdUpdatePriceDirectly(),
		CmdExecuteMint(),
		CmdExecuteBurn(),
		CmdRecoverState(),
	)

	return supplyTxCmd
}

// CmdInitializeController returns a CLI command handler for creating a controller
func CmdInitializeController() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-controller [denom] [oracle-asset-id] [initial-price-microusd] [max-supply]",
		Short: "Initialize the autonomous supply controller for a denom",
		Long: `Initialize the autonomous supply controller. Derives the mint authority
and burn treasury, seeds supply from the bank, and seeds the floor/ceiling
thresholds from the denom's decimals.

Example:
  $ meridiand tx supply init-controller umer MERUSD 1000000 10000000000000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			initialPrice, err := cast.ToUint64E(args[2])
			if err != nil {
				return fmt.Errorf("invalid initial price: %w", err)
			}
			maxSupply, err := cast.ToUint64E(args[3])
			if err != nil {
				return fmt.Errorf("invalid max supply: %w", err)
			}

			msg := &types.MsgInitializeController{
				Authority:          clientCtx.GetFromAddress().String(),
				Denom:              args[0],
				PriceOracleAssetId: args[1],
				InitialPrice:       initialPrice,
				MaxSupply:          maxSupply,
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

// CmdUpdatePriceDirectly returns a CLI command handler for the authority override
func CmdUpdatePriceDirectly() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-price [denom] [price-microusd]",
		Short: "Override the controller price directly (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			price, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid price: %w", err)
			}

			msg := &types.MsgUpdatePriceDirectly{
				Authority: clientCtx.GetFromAddress().String(),
				Denom:     args[0],
				NewPrice:  price,
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

// CmdExecuteMint returns a CLI command handler for the autonomous mint
func CmdExecuteMint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-mint [denom] [mint-authority] [destination]",
		Short: "Run the mint policy and mint under the derived authority",
		Long: `Run the tiered mint policy. The supplied mint-authority address must
match the deterministic derivation for the denom.

Example:
  $ meridiand tx supply execute-mint umer mer1... mer1dest... --from keeper`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgExecuteMint{
				Executor:      clientCtx.GetFromAddress().String(),
				Denom:         args[0],
				MintAuthority: args[1],
				Destination:   args[2],
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

// CmdExecuteBurn returns a CLI command handler for the autonomous burn
func CmdExecuteBurn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-burn [denom] [burn-treasury]",
		Short: "Run the burn policy from the derived burn treasury",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgExecuteBurn{
				Executor:     clientCtx.GetFromAddress().String(),
				Denom:        args[0],
				BurnTreasury: args[1],
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

// CmdRecoverState returns a CLI command handler for the emergency recovery
func CmdRecoverState() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover-state [denom] [new-price-microusd]",
		Short: "Reset the controller's price anchors (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			price, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid price: %w", err)
			}

			msg := &types.MsgRecoverState{
				Authority: clientCtx.GetFromAddress().String(),
				Denom:     args[0],
				NewPrice:  price,
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
