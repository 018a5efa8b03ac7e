package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seedphrase/internal/domain"
)

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print the supported strengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WORDS\tENTROPY BITS\tCHECKSUM BITS")
			for _, l := range domain.Levels() {
				fmt.Fprintf(tw, "%d\t%d\t%d\n", l.WordCount(), l.EntropyBytes()*8, l.ChecksumBits())
			}
			return tw.Flush()
		},
	}
}
