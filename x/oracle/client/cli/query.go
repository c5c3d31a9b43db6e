package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/meridian-chain/meridian/x/oracle/keeper"
	"github.com/meridian-chain/meridian/x/oracle/types"
)

// GetQueryCmd returns the cli query commands for the oracle module
func GetQueryCmd() *cobra.Command {
	oracleQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the oracle module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	oracleQueryCmd.AddCommand(
		GetCmdQueryController(),
		GetCmdQueryPrice(),
		GetCmdQueryHealth(),
	)

	return oracleQueryCmd
}

// queryController fetches and decodes a controller from the module store.
// State is amino-encoded, so queries go through the raw store endpoint.
func queryController(clientCtx client.Context, assetId string) (types.Controller, error) {
	bz, _, err := clientCtx.QueryStore(keeper.GetControllerKey(assetId), types.StoreKey)
	if err != nil {
		return types.Controller{}, err
	}
	if bz == nil {
		return types.Controller{}, fmt.Errorf("no controller found for asset %s", assetId)
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
		Use:   "controller [asset-id]",
		Short: "Query the oracle controller for an asset",
		Long: `Query the full controller record: sources, breaker state, emergency
override and the last consensus snapshot.

Example:
  $ meridiand query oracle controller MERUSD`,
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

// GetCmdQueryPrice returns the command to query the last consensus price
func GetCmdQueryPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [asset-id]",
		Short: "Query the last consensus price for an asset",
		Long: `Query the last stored consensus price in microUSD. A valid emergency
override is reported instead when one is set.

Example:
  $ meridiand query oracle price MERUSD`,
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

			if controller.Emergency != nil {
				return clientCtx.PrintString(fmt.Sprintf(
					"emergency override: %d microUSD (set at %d, expires after %ds)\n",
					controller.Emergency.Price,
					controller.Emergency.Timestamp,
					controller.Emergency.ExpirationSeconds,
				))
			}

			if controller.LastConsensus.Price == 0 {
				return fmt.Errorf("no consensus recorded for asset %s", args[0])
			}

			return clientCtx.PrintString(fmt.Sprintf(
				"consensus price: %d microUSD (from %d sources at %d)\n",
				controller.LastConsensus.Price,
				controller.LastConsensus.NumSources,
				controller.LastConsensus.Timestamp,
			))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryHealth returns the command to query registry health
func GetCmdQueryHealth() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health [asset-id]",
		Short: "Query oracle registry health for an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			controller, err := queryController(clientCtx, args[0])
			if err != nil {
				return err
			}

			out, err := types.ModuleCdc.MarshalJSONIndent(controller.Health, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
