package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seedphrase/internal/crypto"
	"seedphrase/internal/mnemonic"
)

func encodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <hex-entropy>",
		Short: "Encode known entropy as a mnemonic (for checking test vectors)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entropy, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("entropy must be hex: %w", err)
			}
			defer crypto.Wipe(entropy)

			m, err := mnemonic.Encode(entropy, opts.wire.Wordlist)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.format, []mnemonicResult{{Words: m.Len(), Mnemonic: m}})
		},
	}
}
