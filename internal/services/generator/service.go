package generator

import (
	"fmt"

	"go.uber.org/zap"

	"seedphrase/internal/crypto"
	"seedphrase/internal/domain"
	"seedphrase/internal/mnemonic"
)

// Service generates and verifies mnemonics.
//
// It holds no per-call state: the random source and wordlist are shared and
// read-only, so one Service may serve concurrent callers.
type Service struct {
	rand  domain.RandomSource
	words *mnemonic.Wordlist
	log   *zap.SugaredLogger
}

// New returns a generator drawing entropy from rand and words from wl.
// A nil logger disables logging.
func New(rand domain.RandomSource, wl *mnemonic.Wordlist, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{rand: rand, words: wl, log: log.Named("generator")}
}

// Generate draws fresh entropy for level and encodes it.
//
// The entropy buffer is wiped before returning, on success or failure.
// Random source failures are returned as-is and never retried.
func (s *Service) Generate(level domain.SecurityLevel) (domain.Mnemonic, error) {
	if !level.Valid() {
		return domain.Mnemonic{}, fmt.Errorf("%w: unsupported level %v", domain.ErrInvalidEntropyLength, level)
	}
	entropy := make([]byte, level.EntropyBytes())
	defer crypto.Wipe(entropy)

	if err := s.rand.Fill(entropy); err != nil {
		s.log.Warnw("entropy unavailable", "level", level.String(), "err", err)
		return domain.Mnemonic{}, err
	}
	m, err := mnemonic.Encode(entropy, s.words)
	if err != nil {
		return domain.Mnemonic{}, fmt.Errorf("encode %v: %w", level, err)
	}
	s.log.Debugw("generated mnemonic", "level", level.String(), "words", m.Len())
	return m, nil
}

// MaxBatch bounds GenerateN.
const MaxBatch = 10000

// ErrBatchSize is returned by GenerateN for n outside [1, MaxBatch].
var ErrBatchSize = fmt.Errorf("batch size must be between 1 and %d", MaxBatch)

// GenerateN returns n independent mnemonics. It stops at the first failure.
func (s *Service) GenerateN(level domain.SecurityLevel, n int) ([]domain.Mnemonic, error) {
	if n < 1 || n > MaxBatch {
		return nil, fmt.Errorf("%w: got %d", ErrBatchSize, n)
	}
	var out []domain.Mnemonic
	for i := 0; i < n; i++ {
		m, err := s.Generate(level)
		if err != nil {
			return nil, fmt.Errorf("mnemonic %d of %d: %w", i+1, n, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Verify checks phrase against its checksum and reports its strength.
func (s *Service) Verify(phrase string) (domain.SecurityLevel, error) {
	level, err := mnemonic.Validate(phrase, s.words)
	if err != nil {
		s.log.Debugw("verification failed", "err", err)
		return 0, err
	}
	return level, nil
}

var (
	_ domain.Generator = (*Service)(nil)
	_ domain.Verifier  = (*Service)(nil)
)
