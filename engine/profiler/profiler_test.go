package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfilerTickBelowInterval(t *testing.T) {
	p := NewProfiler()

	// With the default 1s interval, immediate ticks never log stats.
	assert.False(t, p.Tick())
	assert.False(t, p.Tick())
}

func TestProfilerTickAtInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(10 * time.Millisecond)

	p.Tick()
	time.Sleep(15 * time.Millisecond)
	assert.True(t, p.Tick())

	// The window resets after logging.
	assert.False(t, p.Tick())
}

func TestProfilerIgnoresBadInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(0)

	assert.False(t, p.Tick())
}
