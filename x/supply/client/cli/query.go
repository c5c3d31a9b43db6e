package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/meridian-chain/meridian/x/supply/keeper"
	"github.com/meridian-chain/meridian/x/supply/types"
)

// GetQueryCmd returns the cli query commands for the supply module
func GetQueryCmd() *cobra.Command {
	supplyQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the supply module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	supplyQueryCmd.AddCommand(
		GetCmdQueryController(),
		GetCmdQueryAuthorities(),
	)

	return supplyQueryCmd
}

// queryController fetches and decodes a controller from the module store.
// State is amino-encoded, so queries go through the raw store endpoint.
func queryController(clientCtx client.Context, denom string) (types.Controller, error) {
	bz, _, err := clientCtx.QueryStore(keeper.GetControllerKey(denom), types.StoreKey)
	if err != nil {
		return types.Controller{}, err
	}
	if bz == nil {
		return types.Controller{}, fmt.Errorf("no controller found for denom %s", denom)
	}

	var controller types.Controller
	if err := types.ModuleCdc.Unmarshal(bz, &controller); err != nil {
		return types.Controller{}, fmt.Errorf("failed to decode controller: %w", err)
	}
	return controller, nil
}

// GetCmdQueryController returns the command to query a controller
func GetCmdQueryController() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "controller [denom]",
		Short: "Query the supply controller for a denom",
		Long: `Query the full controller record: price anchors, supply bookkeeping,
derived authorities and the policy tier table.

Example:
  $ meridiand query supply controller umer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			controller, err := queryController(clientCtx, args[0])
			if err != nil {
				return err
			}

			out, err := types.ModuleCdc.MarshalJSONIndent(controller, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryAuthorities returns the command to print the derived authorities
func GetCmdQueryAuthorities() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authorities [denom]",
		Short: "Print the derived mint authority and burn treasury for a denom",
		Long: `Print the deterministic signing authorities for a denom. These are pure
derivations and do not require an initialized controller.

Example:
  $ meridiand query supply authorities umer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			denom := args[0]
			return clientCtx.PrintString(fmt.Sprintf(
				"mint authority: %s\nburn treasury:  %s\n",
				types.DeriveMintAuthority(denom),
				types.DeriveBurnTreasury(denom),
			))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
