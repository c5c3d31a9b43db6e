package cmd

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/input"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/go-bip39"
	"github.com/spf13/cobra"

	"github.com/meridian-chain/meridian/app"
)

const (
	flagMnemonicLength = "mnemonic-length"
	flagNoBackup       = "no-backup"
	flagCoinType       = "coin-type"
	flagAccount        = "account"
	flagIndex          = "index"
	flagRecover        = "recover"
)

// KeysCmd returns the keys command with BIP39 mnemonic support. It includes
// the --home flag when invoked standalone; when wired under the root command,
// use newKeysCmd(false) to avoid duplicate persistent flag definitions.
func KeysCmd() *cobra.Command {
	return newKeysCmd(true)
}

func newKeysCmd(includeHomeFlag bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage your application's keys with BIP39 mnemonic support",
		Long: `Keys manages the local keystore.

Meridian extends the standard keys command with full BIP39 mnemonic support:
12-word or 24-word mnemonic generation from crypto/rand entropy, checksum
validation, and recovery from an existing phrase.`,
	}

	if includeHomeFlag && cmd.PersistentFlags().Lookup(flags.FlagHome) == nil {
		cmd.PersistentFlags().String(flags.FlagHome, app.DefaultNodeHome, "directory for config and data")
	}
	if cmd.PersistentFlags().Lookup(flags.FlagKeyringBackend) == nil {
		cmd.PersistentFlags().String(flags.FlagKeyringBackend, flags.DefaultKeyringBackend, "Select keyring backend (os|file|kwallet|pass|test|memory)")
	}

	cmd.AddCommand(
		AddKeyCommand(),
		RecoverKeyCommand(),
		ListKeysCommand(),
		ShowKeysCommand(),
		DeleteKeyCommand(),
	)

	return cmd
}

// newMnemonic generates a BIP39 mnemonic of the requested word count from
// fresh crypto/rand entropy.
func newMnemonic(wordCount int) (string, error) {
	var entropyBits int
	switch wordCount {
	case 12:
		entropyBits = 128
	case 24:
		entropyBits = 256
	default:
		return "", fmt.Errorf("mnemonic length must be 12 or 24 words")
	}

	entropy := make([]byte, entropyBits/8)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("failed to generate secure entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	if !bip39.IsMnemonicValid(mnemonic) {
		return "", fmt.Errorf("generated mnemonic failed validation")
	}

	return mnemonic, nil
}

// normalizeMnemonic collapses whitespace and validates the BIP39 checksum and
// word count. It returns the canonical phrase and its word count.
func normalizeMnemonic(raw string) (string, int, error) {
	words := strings.Fields(strings.TrimSpace(raw))
	mnemonic := strings.Join(words, " ")

	if !bip39.IsMnemonicValid(mnemonic) {
		return "", 0, fmt.Errorf("invalid mnemonic: checksum failed")
	}

	wordCount := len(words)
	if wordCount != 12 && wordCount != 24 {
		return "", 0, fmt.Errorf("invalid mnemonic length: expected 12 or 24 words, got %d", wordCount)
	}

	return mnemonic, wordCount, nil
}

// AddKeyCommand creates a new key in the keyring with mnemonic generation.
func AddKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new key with BIP39 mnemonic generation",
		Long: `Add a new encrypted key to the keyring with a BIP39 mnemonic phrase.

The mnemonic is generated from secure random entropy and displayed once for
backup. Anyone holding the phrase can recover the private key, so store it
offline.

Examples:
  meridiand keys add mykey                        # 24-word mnemonic (default)
  meridiand keys add mykey --mnemonic-length 12   # 12-word mnemonic
  meridiand keys add mykey --recover              # recover from existing phrase`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getKeyringClientContext(cmd)
			if err != nil {
				return err
			}

			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("argument 'name' cannot be empty")
			}

			if recoverExisting, _ := cmd.Flags().GetBool(flagRecover); recoverExisting {
				return recoverKeyWithPrompt(cmd, clientCtx, name)
			}

			mnemonicLength, _ := cmd.Flags().GetInt(flagMnemonicLength)
			noBackup, _ := cmd.Flags().GetBool(flagNoBackup)
			coinType, _ := cmd.Flags().GetUint32(flagCoinType)
			account, _ := cmd.Flags().GetUint32(flagAccount)
			index, _ := cmd.Flags().GetUint32(flagIndex)

			mnemonic, err := newMnemonic(mnemonicLength)
			if err != nil {
				return err
			}

			hdPath := hd.CreateHDPath(coinType, account, index)
			key, err := clientCtx.Keyring.NewAccount(
				name,
				mnemonic,
				keyring.DefaultBIP39Passphrase,
				hdPath.String(),
				hd.Secp256k1,
			)
			if err != nil {
				return fmt.Errorf("failed to create key: %w", err)
			}

			addr, err := key.GetAddress()
			if err != nil {
				return fmt.Errorf("failed to get address: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n")
			fmt.Fprintf(cmd.OutOrStdout(), "- name: %s\n", name)
			fmt.Fprintf(cmd.OutOrStdout(), "  type: local\n")
			fmt.Fprintf(cmd.OutOrStdout(), "  address: %s\n", addr.String())
			fmt.Fprintf(cmd.OutOrStdout(), "  pubkey: %s\n", key.PubKey.String())
			fmt.Fprintf(cmd.OutOrStdout(), "\n")

			if !noBackup {
				fmt.Fprintf(cmd.OutOrStdout(), "**IMPORTANT** Write this mnemonic phrase in a safe place.\n")
				fmt.Fprintf(cmd.OutOrStdout(), "It is the only way to recover your account if you ever forget your password.\n")
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", mnemonic)
			}

			return nil
		},
	}

	cmd.Flags().Bool(flagRecover, false, "Recover key from an existing mnemonic instead of generating a new one")
	cmd.Flags().Int(flagMnemonicLength, 24, "Mnemonic length (12 or 24 words)")
	cmd.Flags().Bool(flagNoBackup, false, "Skip mnemonic backup prompt (WARNING: not recommended)")
	cmd.Flags().Uint32(flagCoinType, sdk.GetConfig().GetCoinType(), "Coin type number for HD derivation")
	cmd.Flags().Uint32(flagAccount, 0, "Account number for HD derivation")
	cmd.Flags().Uint32(flagIndex, 0, "Address index number for HD derivation")
	cmd.Flags().String(flags.FlagKeyringBackend, keyring.BackendOS, "Keyring backend")
	cmd.Flags().String(flags.FlagHome, app.DefaultNodeHome, "directory for config and data")

	return cmd
}

// recoverKeyWithPrompt recovers a key using interactive mnemonic entry.
func recoverKeyWithPrompt(cmd *cobra.Command, clientCtx client.Context, name string) error {
	coinType, _ := cmd.Flags().GetUint32(flagCoinType)
	account, _ := cmd.Flags().GetUint32(flagAccount)
	index, _ := cmd.Flags().GetUint32(flagIndex)

	buf := bufio.NewReader(cmd.InOrStdin())
	raw, err := input.GetString("Enter your bip39 mnemonic", buf)
	if err != nil {
		return fmt.Errorf("failed to read mnemonic: %w", err)
	}

	mnemonic, wordCount, err := normalizeMnemonic(raw)
	if err != nil {
		return err
	}

	hdPath := hd.CreateHDPath(coinType, account, index)
	key, err := clientCtx.Keyring.NewAccount(
		name,
		mnemonic,
		keyring.DefaultBIP39Passphrase,
		hdPath.String(),
		hd.Secp256k1,
	)
	if err != nil {
		return fmt.Errorf("failed to recover key: %w", err)
	}

	addr, err := key.GetAddress()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n")
	fmt.Fprintf(cmd.OutOrStdout(), "- name: %s\n", name)
	fmt.Fprintf(cmd.OutOrStdout(), "  type: local\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  address: %s\n", addr.String())
	fmt.Fprintf(cmd.OutOrStdout(), "  pubkey: %s\n", key.PubKey.String())
	fmt.Fprintf(cmd.OutOrStdout(), "\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Key successfully recovered from %d-word mnemonic!\n", wordCount)

	return nil
}

// RecoverKeyCommand recovers a key from a BIP39 mnemonic.
func RecoverKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover [name]",
		Short: "Recover a key from BIP39 mnemonic phrase",
		Long: `Recover a key from an existing BIP39 mnemonic phrase.

The mnemonic is checksum-validated before the key is derived. Both 12-word
and 24-word phrases are supported.

Examples:
  meridiand keys recover mykey
  meridiand keys recover mykey --account 1 --index 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getKeyringClientContext(cmd)
			if err != nil {
				return err
			}

			return recoverKeyWithPrompt(cmd, clientCtx, args[0])
		},
	}

	cmd.Flags().Uint32(flagCoinType, sdk.GetConfig().GetCoinType(), "Coin type number for HD derivation")
	cmd.Flags().Uint32(flagAccount, 0, "Account number for HD derivation")
	cmd.Flags().Uint32(flagIndex, 0, "Address index number for HD derivation")
	cmd.Flags().String(flags.FlagKeyringBackend, keyring.BackendOS, "Keyring backend")
	cmd.Flags().String(flags.FlagHome, app.DefaultNodeHome, "directory for config and data")

	return cmd
}

// ListKeysCommand lists all keys in the keyring.
func ListKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all keys",
		Long:  "List all keys stored in the keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getKeyringClientContext(cmd)
			if err != nil {
				return err
			}

			keys, err := clientCtx.Keyring.List()
			if err != nil {
				return err
			}

			if len(keys) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No keys found.\n")
				return nil
			}

			for _, key := range keys {
				addr, err := key.GetAddress()
				if err != nil {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- name: %s\n", key.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "  address: %s\n\n", addr.String())
			}

			return nil
		},
	}

	cmd.Flags().String(flags.FlagKeyringBackend, keyring.BackendOS, "Keyring backend")
	cmd.Flags().String(flags.FlagHome, app.DefaultNodeHome, "directory for config and data")

	return cmd
}

// ShowKeysCommand shows key information.
func ShowKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show key information",
		Long:  "Show detailed information for a specific key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getKeyringClientContext(cmd)
			if err != nil {
				return err
			}

			key, err := clientCtx.Keyring.Key(args[0])
			if err != nil {
				return fmt.Errorf("key not found: %w", err)
			}

			addr, err := key.GetAddress()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "- name: %s\n", key.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "  address: %s\n", addr.String())
			fmt.Fprintf(cmd.OutOrStdout(), "  pubkey: %s\n", key.PubKey.String())

			return nil
		},
	}

	cmd.Flags().String(flags.FlagKeyringBackend, keyring.BackendOS, "Keyring backend")
	cmd.Flags().String(flags.FlagHome, app.DefaultNodeHome, "directory for config and data")

	return cmd
}

// DeleteKeyCommand deletes a key from the keyring.
func DeleteKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a key",
		Long:  "Delete a key from the keyring. WARNING: irreversible unless you kept the mnemonic.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getKeyringClientContext(cmd)
			if err != nil {
				return err
			}

			name := args[0]

			skipPrompt, _ := cmd.Flags().GetBool("yes")
			if !skipPrompt {
				buf := bufio.NewReader(cmd.InOrStdin())
				confirmation, err := input.GetString(fmt.Sprintf("Are you sure you want to delete key '%s'? [y/N]", name), buf)
				if err != nil {
					return err
				}

				if confirmation != "y" && confirmation != "Y" {
					fmt.Fprintf(cmd.OutOrStdout(), "Deletion cancelled.\n")
					return nil
				}
			}

			if err := clientCtx.Keyring.Delete(name); err != nil {
				return fmt.Errorf("failed to delete key: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Key '%s' deleted successfully.\n", name)
			return nil
		},
	}

	cmd.Flags().String(flags.FlagKeyringBackend, keyring.BackendOS, "Keyring backend")
	cmd.Flags().Bool("yes", false, "skip confirmation prompt")
	cmd.Flags().String(flags.FlagHome, app.DefaultNodeHome, "directory for config and data")

	return cmd
}

func getKeyringClientContext(cmd *cobra.Command) (client.Context, error) {
	clientCtx := client.GetClientContextFromCmd(cmd)
	existingKeyring := clientCtx.Keyring

	clientCtx, err := client.ReadPersistentCommandFlags(clientCtx, cmd.Flags())
	if err != nil {
		return clientCtx, err
	}

	if existingKeyring != nil {
		clientCtx = clientCtx.WithKeyring(existingKeyring)
	}

	return clientCtx, nil
}
