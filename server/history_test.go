package server_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"spinwheel/server"
)

func TestSpinHistoryRecordAndSnapshot(t *testing.T) {
	h := server.NewSpinHistory(100, 0.1)
	id := uuid.New()

	h.Record(id, "Yes")
	h.Record(id, "Yes")
	h.Record(id, "No")

	wins := h.Snapshot(id)
	assert.Equal(t, int64(2), wins["Yes"])
	assert.Equal(t, int64(1), wins["No"])

	h.Forget(id)
	assert.Empty(t, h.Snapshot(id))
}

func TestSpinHistoryPrunesIdleWheels(t *testing.T) {
	h := server.NewSpinHistory(2, 0.5)

	oldest := uuid.New()
	middle := uuid.New()
	newest := uuid.New()

	h.Record(oldest, "a")
	time.Sleep(2 * time.Millisecond)
	h.Record(middle, "a")
	time.Sleep(2 * time.Millisecond)
	// Third wheel pushes the count over the limit, the least recently
	// spun tally goes.
	h.Record(newest, "a")

	assert.Empty(t, h.Snapshot(oldest))
	assert.Equal(t, int64(1), h.Snapshot(middle)["a"])
	assert.Equal(t, int64(1), h.Snapshot(newest)["a"])
}
