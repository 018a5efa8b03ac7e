package commands

import (
	"github.com/spf13/cobra"

	"seedphrase/internal/app"
	"seedphrase/internal/domain"
)

// options are the flag values shared by every subcommand.
type options struct {
	format   string
	logLevel string

	source domain.RandomSource // nil selects the OS CSPRNG
	wire   *app.Wire
}

func Execute() error {
	return newRootCmd(&options{}).Execute()
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "seedphrase [12|15|18|21|24]",
		Short: "Generate a BIP-39 mnemonic recovery phrase",
		Long: "Generate a BIP-39 mnemonic from fresh OS randomness.\n\n" +
			"The optional argument picks the word count; anything else falls back to 12.\n" +
			"Values starting with '-' are read as flags; pass them after \"--\" (seedphrase -- -12).",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = opts.format
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.format = cfg.Format

			w, err := app.NewWire(cfg, opts.source)
			if err != nil {
				return err
			}
			opts.wire = w
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.wire != nil {
				_ = opts.wire.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.format, "format", "f", app.FormatText, "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "diagnostic log level (written to stderr)")

	count := root.Flags().IntP("count", "n", 1, "number of mnemonics to generate")
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, opts, args, *count)
	}

	root.AddCommand(verifyCmd(opts), encodeCmd(opts), levelsCmd())
	return root
}
