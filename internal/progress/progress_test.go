package progress

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerTicksToCompletion(t *testing.T) {
	tracker := NewTracker("Computing metrics...", 4)
	for range 4 {
		tracker.Tick()
	}
	assert.Equal(t, float64(1), tracker.bar.State().CurrentPercent)
	tracker.FinishSuccess()
}

func TestTrackerConcurrentTicks(t *testing.T) {
	const total = 32
	tracker := NewTracker("Computing metrics...", total)

	var wg sync.WaitGroup
	for range total {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Tick()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(total), tracker.bar.State().CurrentNum)
	tracker.FinishSuccess()
}
