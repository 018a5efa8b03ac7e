package generator_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"seedphrase/internal/crypto"
	"seedphrase/internal/domain"
	"seedphrase/internal/mnemonic"
	"seedphrase/internal/services/generator"
)

// recordingSource hands out fixed bytes and keeps the buffers it filled so
// tests can check they were wiped.
type recordingSource struct {
	mu   sync.Mutex
	fill byte
	bufs [][]byte
}

func (r *recordingSource) Fill(b []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range b {
		b[i] = r.fill
	}
	r.bufs = append(r.bufs, b)
	return nil
}

type failingSource struct{ err error }

func (f failingSource) Fill([]byte) error { return f.err }

func newService(t *testing.T, src domain.RandomSource) *generator.Service {
	t.Helper()
	wl, err := mnemonic.English()
	require.NoError(t, err)
	return generator.New(src, wl, nil)
}

func TestGenerate_AllZeroEntropyVector(t *testing.T) {
	svc := newService(t, crypto.FixedSource{Entropy: make([]byte, 32)})

	m, err := svc.Generate(domain.Words24)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("abandon ", 23)+"art", m.String())
}

func TestGenerate_WordCounts(t *testing.T) {
	svc := newService(t, crypto.NewOSRandom())

	for _, level := range domain.Levels() {
		m, err := svc.Generate(level)
		require.NoError(t, err)
		assert.Equal(t, level.WordCount(), m.Len())

		got, err := svc.Verify(m.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}
}

func TestGenerate_WipesEntropy(t *testing.T) {
	src := &recordingSource{fill: 0xEE}
	svc := newService(t, src)

	_, err := svc.Generate(domain.Words12)
	require.NoError(t, err)
	require.Len(t, src.bufs, 1)
	assert.Equal(t, make([]byte, 16), src.bufs[0])
}

func TestGenerate_RandomSourceFailure(t *testing.T) {
	cause := errors.New("getrandom: no entropy")
	src := failingSource{err: errors.Join(domain.ErrRandomSourceUnavailable, cause)}

	core, logs := observer.New(zapcore.WarnLevel)
	wl, err := mnemonic.English()
	require.NoError(t, err)
	svc := generator.New(src, wl, zap.New(core).Sugar())

	m, err := svc.Generate(domain.Words12)
	require.ErrorIs(t, err, domain.ErrRandomSourceUnavailable)
	require.ErrorIs(t, err, cause)
	assert.True(t, m.IsZero())
	assert.Equal(t, 1, logs.FilterMessage("entropy unavailable").Len())
}

func TestGenerate_InvalidLevel(t *testing.T) {
	svc := newService(t, crypto.NewOSRandom())

	_, err := svc.Generate(domain.SecurityLevel(42))
	require.ErrorIs(t, err, domain.ErrInvalidEntropyLength)
}

func TestGenerate_NeverLogsSecrets(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	wl, err := mnemonic.English()
	require.NoError(t, err)
	entropy := bytes.Repeat([]byte{0x7f}, 16)
	svc := generator.New(crypto.FixedSource{Entropy: entropy}, wl, zap.New(core).Sugar())

	m, err := svc.Generate(domain.Words12)
	require.NoError(t, err)

	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			s, _ := v.(string)
			assert.NotContains(t, s, m.Words()[0])
		}
		assert.NotContains(t, entry.Message, m.String())
	}
}

func TestGenerateN(t *testing.T) {
	svc := newService(t, crypto.NewOSRandom())

	ms, err := svc.GenerateN(domain.Words18, 5)
	require.NoError(t, err)
	require.Len(t, ms, 5)

	seen := map[string]bool{}
	for _, m := range ms {
		assert.Equal(t, 18, m.Len())
		assert.False(t, seen[m.String()], "duplicate mnemonic")
		seen[m.String()] = true
	}
}

func TestGenerateN_RejectsBatchSize(t *testing.T) {
	svc := newService(t, crypto.NewOSRandom())

	for _, n := range []int{0, -1, generator.MaxBatch + 1, 1 << 50} {
		ms, err := svc.GenerateN(domain.Words12, n)
		require.ErrorIs(t, err, generator.ErrBatchSize, "n=%d", n)
		assert.Nil(t, ms)
	}

	ms, err := svc.GenerateN(domain.Words12, 1)
	require.NoError(t, err)
	assert.Len(t, ms, 1)
}

func TestGenerate_Concurrent(t *testing.T) {
	svc := newService(t, crypto.NewOSRandom())

	const workers = 16
	results := make([]string, workers*10)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				m, err := svc.Generate(domain.Words24)
				if err != nil {
					t.Errorf("Generate: %v", err)
					return
				}
				results[w*10+i] = m.String()
			}
		}(w)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, r := range results {
		require.NotEmpty(t, r)
		require.False(t, seen[r], "duplicate mnemonic across goroutines")
		seen[r] = true
	}
}

func TestVerify_RejectsTypo(t *testing.T) {
	svc := newService(t, crypto.NewOSRandom())

	_, err := svc.Verify("legal winner thank year wave sausage worth useful legal winner thank yellow")
	require.NoError(t, err)
	_, err = svc.Verify("legal winner thank year wave sausage worth useful legal winner thank year")
	require.ErrorIs(t, err, domain.ErrChecksumMismatch)
}
