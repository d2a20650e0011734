package server

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"

	"spinwheel/common/bench"
	"spinwheel/wheel"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(rw http.ResponseWriter, status int, v any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(v)
}

// Weight is a pointer so an absent field is distinguishable from zero and
// can take the default.
type optionPayload struct {
	Name   string   `json:"name"`
	Weight *float64 `json:"weight"`
}

type wheelRequest struct {
	Options []optionPayload `json:"options"`
}

type wheelResponse struct {
	ID      uuid.UUID      `json:"id"`
	Options []wheel.Option `json:"options"`
	Sectors []wheel.Sector `json:"sectors"`
	Spins   int            `json:"spins"`
}

func (h *Server) parseOptions(payload []optionPayload) ([]wheel.Option, error) {
	if len(payload) > h.cfg.MaxOptions {
		return nil, fmt.Errorf("too many options: %d, limit is %d", len(payload), h.cfg.MaxOptions)
	}
	items := make([]wheel.Option, len(payload))
	for i, p := range payload {
		w := wheel.DefaultWeight
		if p.Weight != nil {
			w = *p.Weight
		}
		items[i] = wheel.Option{Name: strings.TrimSpace(p.Name), Weight: w}
	}
	items = wheel.Normalize(items)
	if err := wheel.Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// session resolves the {id} path segment, writing the error response
// itself when the wheel cannot be found.
func (h *Server) session(rw http.ResponseWriter, r *http.Request) *Session {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(rw, http.StatusBadRequest, errorResponse{"bad wheel id"})
		return nil
	}
	s, ok := h.wheels.Get(id)
	if !ok {
		writeJSON(rw, http.StatusNotFound, errorResponse{"wheel not found"})
		return nil
	}
	return s
}

func (s *Session) response() wheelResponse {
	return wheelResponse{
		ID:      s.ID,
		Options: slices.Clone(s.options),
		Sectors: wheel.Sectors(s.options),
		Spins:   s.spins,
	}
}

func (h *Server) handleCreate(rw http.ResponseWriter, r *http.Request) {
	var req wheelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(rw, http.StatusBadRequest, errorResponse{"bad request body"})
		return
	}
	items, err := h.parseOptions(req.Options)
	if err != nil {
		writeJSON(rw, http.StatusBadRequest, errorResponse{err.Error()})
		return
	}

	s := &Session{
		ID:      uuid.New(),
		options: items,
		rng:     rand.New(rand.NewSource(h.seed())),
	}
	h.wheels.Set(s.ID, s)
	writeJSON(rw, http.StatusCreated, s.response())
}

func (h *Server) handleGet(rw http.ResponseWriter, r *http.Request) {
	s := h.session(rw, r)
	if s == nil {
		return
	}
	s.mu.Lock()
	resp := s.response()
	s.mu.Unlock()
	writeJSON(rw, http.StatusOK, resp)
}

func (h *Server) handleUpdate(rw http.ResponseWriter, r *http.Request) {
	s := h.session(rw, r)
	if s == nil {
		return
	}
	var req wheelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(rw, http.StatusBadRequest, errorResponse{"bad request body"})
		return
	}
	items, err := h.parseOptions(req.Options)
	if err != nil {
		writeJSON(rw, http.StatusBadRequest, errorResponse{err.Error()})
		return
	}

	s.mu.Lock()
	s.options = items
	resp := s.response()
	s.mu.Unlock()
	writeJSON(rw, http.StatusOK, resp)
}

func (h *Server) handleDelete(rw http.ResponseWriter, r *http.Request) {
	s := h.session(rw, r)
	if s == nil {
		return
	}
	h.wheels.Delete(s.ID)
	h.history.Forget(s.ID)
	rw.WriteHeader(http.StatusNoContent)
}

type spinResponse struct {
	Winner wheel.Option `json:"winner"`
	Angle  float64      `json:"angle"`
	Spin   int          `json:"spin"`
}

func (h *Server) handleSpin(rw http.ResponseWriter, r *http.Request) {
	s := h.session(rw, r)
	if s == nil {
		return
	}

	s.mu.Lock()
	idx, ok := wheel.SampleIndex(s.rng, s.options)
	if !ok {
		s.mu.Unlock()
		writeJSON(rw, http.StatusUnprocessableEntity, errorResponse{"wheel has no options"})
		return
	}
	winner := s.options[idx]
	angle := wheel.TargetAngle(s.options, idx, s.rng.Float64())
	s.spins++
	serial := s.spins
	s.mu.Unlock()

	h.history.Record(s.ID, winner.Name)
	h.hub.Broadcast(SpinEvent{
		WheelID: s.ID,
		Winner:  winner.Name,
		Weight:  winner.Weight,
		Angle:   angle,
		Spin:    serial,
	})
	writeJSON(rw, http.StatusOK, spinResponse{Winner: winner, Angle: angle, Spin: serial})
}

type simulateRequest struct {
	Trials int `json:"trials"`
}

type simulateResponse struct {
	Trials    int         `json:"trials"`
	ElapsedMS float64     `json:"elapsed_ms"`
	Rows      []ReportRow `json:"rows"`
}

func (h *Server) handleSimulate(rw http.ResponseWriter, r *http.Request) {
	s := h.session(rw, r)
	if s == nil {
		return
	}
	// Body is optional, an empty one means config defaults.
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(rw, http.StatusBadRequest, errorResponse{"bad request body"})
		return
	}
	trials := req.Trials
	if trials <= 0 {
		trials = h.cfg.DefaultTrials
	}
	if trials > h.cfg.MaxTrials {
		trials = h.cfg.MaxTrials
	}

	// Run on a snapshot with a derived rng so long simulations do not
	// block concurrent spins on the same wheel.
	s.mu.Lock()
	items := slices.Clone(s.options)
	seed := s.rng.Int63()
	s.mu.Unlock()
	rng := rand.New(rand.NewSource(seed))

	var runErr error
	tally, elapsed := bench.Timed(func() wheel.Tally {
		t, err := wheel.RunTrials(rng, items, trials)
		runErr = err
		return t
	})
	if runErr != nil {
		writeJSON(rw, http.StatusUnprocessableEntity, errorResponse{runErr.Error()})
		return
	}

	writeJSON(rw, http.StatusOK, simulateResponse{
		Trials:    trials,
		ElapsedMS: float64(elapsed.Microseconds()) / 1000,
		Rows:      BuildReport(items, tally, trials),
	})
}

type statsResponse struct {
	Spins int              `json:"spins"`
	Wins  map[string]int64 `json:"wins"`
}

func (h *Server) handleStats(rw http.ResponseWriter, r *http.Request) {
	s := h.session(rw, r)
	if s == nil {
		return
	}
	s.mu.Lock()
	spins := s.spins
	s.mu.Unlock()

	writeJSON(rw, http.StatusOK, statsResponse{
		Spins: spins,
		Wins:  h.history.Snapshot(s.ID),
	})
}
