package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorSessionLifecycle(t *testing.T) {
	c := NewCollector()

	c.SessionStarted("warmup")
	c.SessionStarted("warmup")
	c.SessionFinished("warmup")
	c.SessionFailed("warmup", errors.New("boom"))
	c.SessionBlocked("steady")
	c.PhaseStatusChanged("warmup", "RUNNING")
	c.PhaseStatusChanged("warmup", "FINISHED")

	snap := c.Snapshot()
	require.NotNil(t, snap.PerPhase["warmup"])
	assert.EqualValues(t, 2, snap.Started)
	assert.EqualValues(t, 1, snap.Finished)
	assert.EqualValues(t, 1, snap.Failed)
	assert.EqualValues(t, 1, snap.Blocked)
	assert.EqualValues(t, 2, snap.PerPhase["warmup"].Started)
	assert.EqualValues(t, 0, snap.PerPhase["steady"].Started)
	assert.EqualValues(t, 1, snap.PerPhase["steady"].Blocked)
	assert.Len(t, snap.StatusHistory, 2)
	assert.Equal(t, "FINISHED", snap.StatusHistory[1].Status)
}

func TestCollectorRecordLatency(t *testing.T) {
	c := NewCollector()
	for _, d := range []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
	} {
		c.RecordLatency(d)
	}

	snap := c.Snapshot()
	require.EqualValues(t, 3, snap.Latency.Count)
	assert.True(t, snap.Latency.P50 > 0, "expected a nonzero p50 latency")
	assert.True(t, snap.Latency.Max >= 30*time.Millisecond, "expected max to reflect the largest recorded sample")
}

func TestCollectorElapsedAdvances(t *testing.T) {
	c := NewCollector()
	time.Sleep(time.Millisecond)
	snap := c.Snapshot()
	assert.True(t, snap.Elapsed > 0, "expected elapsed time since NewCollector to be positive")
}
