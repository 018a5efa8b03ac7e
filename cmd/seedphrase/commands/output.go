package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"seedphrase/internal/app"
	"seedphrase/internal/domain"
)

type mnemonicResult struct {
	Words    int             `json:"words" yaml:"words"`
	Mnemonic domain.Mnemonic `json:"mnemonic" yaml:"mnemonic"`
}

// render writes results in the chosen format. Output is built in memory
// first so a failure never leaves a partial phrase on stdout.
func render(w io.Writer, format string, results []mnemonicResult) error {
	var buf bytes.Buffer
	switch strings.ToLower(format) {
	case app.FormatJSON:
		enc := json.NewEncoder(&buf)
		var err error
		if len(results) == 1 {
			err = enc.Encode(results[0])
		} else {
			err = enc.Encode(results)
		}
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case app.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		var err error
		if len(results) == 1 {
			err = enc.Encode(results[0])
		} else {
			err = enc.Encode(results)
		}
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		for _, r := range results {
			buf.WriteString(r.Mnemonic.String())
			buf.WriteByte('\n')
		}
	}
	_, err := buf.WriteTo(w)
	return err
}
