package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"spinwheel/common/safemap"
)

// SpinEvent is pushed to live subscribers after every spin.
type SpinEvent struct {
	WheelID uuid.UUID `json:"wheel_id"`
	Winner  string    `json:"winner"`
	Weight  float64   `json:"weight"`
	Angle   float64   `json:"angle"`
	Spin    int       `json:"spin"`
}

type subscriber struct {
	wheelID uuid.UUID
	events  chan SpinEvent
}

// LiveHub fans spin events out to websocket subscribers. A slow consumer
// loses events instead of stalling the spin path.
type LiveHub struct {
	nextID atomic.Uint64
	subs   Safemap[uint64, *subscriber]
}

func NewLiveHub() *LiveHub {
	return &LiveHub{
		subs: safemap.New[uint64, *subscriber](),
	}
}

func (h *LiveHub) Broadcast(ev SpinEvent) {
	h.subs.Foreach(func(_ uint64, s *subscriber) {
		if s.wheelID != ev.WheelID {
			return
		}
		select {
		case s.events <- ev:
		default:
		}
	})
}

func (h *LiveHub) Subscribe(wheelID uuid.UUID) (uint64, *subscriber) {
	id := h.nextID.Add(1)
	s := &subscriber{
		wheelID: wheelID,
		events:  make(chan SpinEvent, 16),
	}
	h.subs.Set(id, s)
	return id, s
}

func (h *LiveHub) Unsubscribe(id uint64) {
	h.subs.Delete(id)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4 * 1024,
	WriteBufferSize: 4 * 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (h *Server) handleLive(rw http.ResponseWriter, r *http.Request) {
	s := h.session(rw, r)
	if s == nil {
		return
	}
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	subID, sub := h.hub.Subscribe(s.ID)
	defer h.hub.Unsubscribe(subID)

	// Reader only watches for the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-sub.events:
			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
