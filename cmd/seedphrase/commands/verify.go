package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// maxPhraseInput bounds a phrase read from stdin; 24 words fit in well under 1 KiB.
const maxPhraseInput = 4 << 10

func verifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [words...]",
		Short: "Check a mnemonic's checksum (reads stdin when no words are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxPhraseInput+1))
				if err != nil {
					return fmt.Errorf("read phrase: %w", err)
				}
				if len(b) > maxPhraseInput {
					return fmt.Errorf("phrase on stdin exceeds %d bytes", maxPhraseInput)
				}
				phrase = string(b)
			}
			level, err := opts.wire.Generator.Verify(phrase)
			if err != nil {
				return fmt.Errorf("invalid mnemonic: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid (%s)\n", level)
			return nil
		},
	}
}
