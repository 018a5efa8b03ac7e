package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"seedphrase/internal/domain"
)

// maxVerifyBody bounds POST /verify; the longest valid phrase is far smaller.
const maxVerifyBody = 4 << 10

type service interface {
	domain.Generator
	domain.Verifier
}

type server struct {
	svc service
	log *zap.SugaredLogger
}

func newServer(svc service, log *zap.SugaredLogger) *server {
	return &server{svc: svc, log: log.Named("http")}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mnemonic", s.handleMnemonic)
	mux.HandleFunc("POST /verify", s.handleVerify)
	mux.HandleFunc("GET /levels", s.handleLevels)
	return s.accessLog(mux)
}

type mnemonicResponse struct {
	Words    int             `json:"words"`
	Mnemonic domain.Mnemonic `json:"mnemonic"`
}

type verifyRequest struct {
	Mnemonic string `json:"mnemonic"`
}

type verifyResponse struct {
	Valid bool   `json:"valid"`
	Words int    `json:"words,omitempty"`
	Error string `json:"error,omitempty"`
}

type levelResponse struct {
	Words        int `json:"words"`
	EntropyBits  int `json:"entropy_bits"`
	ChecksumBits int `json:"checksum_bits"`
}

func (s *server) handleMnemonic(w http.ResponseWriter, r *http.Request) {
	level := domain.DefaultLevel
	if q := r.URL.Query().Get("words"); q != "" {
		l, ok := domain.ParseSecurityLevel(q)
		if !ok {
			writeError(w, http.StatusBadRequest, "words must be one of 12, 15, 18, 21, 24")
			return
		}
		level = l
	}

	m, err := s.svc.Generate(level)
	if err != nil {
		s.log.Errorw("generate failed", "level", level.String(), "err", err)
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrRandomSourceUnavailable) {
			status = http.StatusServiceUnavailable
		}
		writeError(w, status, "mnemonic generation failed")
		return
	}
	writeJSON(w, http.StatusOK, mnemonicResponse{Words: m.Len(), Mnemonic: m})
}

func (s *server) handleVerify(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req verifyRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxVerifyBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "body must be {\"mnemonic\": \"...\"}")
		return
	}
	level, err := s.svc.Verify(req.Mnemonic)
	if err != nil {
		writeJSON(w, http.StatusOK, verifyResponse{Valid: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, verifyResponse{Valid: true, Words: level.WordCount()})
}

func (s *server) handleLevels(w http.ResponseWriter, r *http.Request) {
	out := make([]levelResponse, 0, len(domain.Levels()))
	for _, l := range domain.Levels() {
		out = append(out, levelResponse{
			Words:        l.WordCount(),
			EntropyBits:  l.EntropyBytes() * 8,
			ChecksumBits: l.ChecksumBits(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// accessLog records method, path, remote, status, bytes and duration. Query
// strings are omitted and bodies are never logged.
func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start),
		)
	})
}
