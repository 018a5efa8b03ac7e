package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seedphrase/internal/domain"
	"seedphrase/internal/services/generator"
)

// levelArg maps the optional positional argument to a level. Missing or
// unrecognised values select the default; ok is false only for the latter.
func levelArg(args []string) (level domain.SecurityLevel, ok bool) {
	if len(args) == 0 {
		return domain.DefaultLevel, true
	}
	if l, ok := domain.ParseSecurityLevel(args[0]); ok {
		return l, true
	}
	return domain.DefaultLevel, false
}

func runGenerate(cmd *cobra.Command, opts *options, args []string, count int) error {
	if count < 1 || count > generator.MaxBatch {
		return fmt.Errorf("--count must be between 1 and %d, got %d", generator.MaxBatch, count)
	}
	level, ok := levelArg(args)
	if !ok {
		opts.wire.Log.Debugw("unrecognised strength, using default", "arg", args[0], "level", level.String())
	}

	ms, err := opts.wire.Generator.GenerateN(level, count)
	if err != nil {
		return fmt.Errorf("generate mnemonic: %w", err)
	}

	results := make([]mnemonicResult, len(ms))
	for i, m := range ms {
		results[i] = mnemonicResult{Words: m.Len(), Mnemonic: m}
	}
	return render(cmd.OutOrStdout(), opts.format, results)
}
