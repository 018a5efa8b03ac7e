package app

import (
	"go.uber.org/zap"

	"seedphrase/internal/crypto"
	"seedphrase/internal/domain"
	"seedphrase/internal/mnemonic"
	"seedphrase/internal/services/generator"
)

// Wire bundles the services and shared resources for the CLI and daemon.
type Wire struct {
	Generator *generator.Service
	Wordlist  *mnemonic.Wordlist
	Log       *zap.SugaredLogger
}

// NewWire constructs the dependency graph from cfg. A nil source means the
// OS CSPRNG.
func NewWire(cfg Config, source domain.RandomSource) (*Wire, error) {
	log, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	wl, err := mnemonic.English()
	if err != nil {
		return nil, err
	}
	if source == nil {
		source = crypto.NewOSRandom()
	}
	return &Wire{
		Generator: generator.New(source, wl, log),
		Wordlist:  wl,
		Log:       log,
	}, nil
}
