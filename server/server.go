package server

import (
	"log"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"spinwheel/appconfig"
	"spinwheel/common/safemap"
	"spinwheel/wheel"
)

type Safemap[K comparable, V any] = safemap.Safemap[K, V]

// Session is one live wheel: the current option list plus its own seeded
// rng and spin counter. Sampling itself stays stateless, the session owns
// the mutable bits on behalf of the client.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	options []wheel.Option
	rng     *rand.Rand
	spins   int
}

type Server struct {
	cfg     *appconfig.AppConfig
	wheels  Safemap[uuid.UUID, *Session]
	history *SpinHistory
	hub     *LiveHub
	seed    func() int64
}

func New(cfg *appconfig.AppConfig) *Server {
	h := &Server{
		cfg:     cfg,
		wheels:  safemap.New[uuid.UUID, *Session](),
		history: NewSpinHistory(cfg.HistoryWheels, cfg.HistoryClearRate),
		hub:     NewLiveHub(),
	}
	if cfg.RandomSeed != 0 {
		// Deterministic mode: each session gets its own derived seed.
		var n atomic.Int64
		h.seed = func() int64 { return cfg.RandomSeed + n.Add(1) }
	} else {
		h.seed = func() int64 { return time.Now().UnixNano() }
	}
	return h
}

func (h *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/wheels", h.handleCreate)
	mux.HandleFunc("GET /v1/wheels/{id}", h.handleGet)
	mux.HandleFunc("PUT /v1/wheels/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /v1/wheels/{id}", h.handleDelete)
	mux.HandleFunc("POST /v1/wheels/{id}/spin", h.handleSpin)
	mux.HandleFunc("POST /v1/wheels/{id}/simulate", h.handleSimulate)
	mux.HandleFunc("GET /v1/wheels/{id}/stats", h.handleStats)
	mux.HandleFunc("GET /v1/wheels/{id}/live", h.handleLive)
	return mux
}

func (h *Server) ListenAndServe() error {
	log.Printf("listening on %s", h.cfg.ListenAddr)
	return http.ListenAndServe(h.cfg.ListenAddr, h.Routes())
}
