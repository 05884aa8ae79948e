package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_schedule(t *testing.T) {
	reg, clock := newTestRegistry(1)
	r, err := reg.Create(testPin, 3)
	require.NoError(t, err)

	fired := make([]string, 0)
	inLoop(r, func() {
		r.schedule("a", time.Second, func() {
			fired = append(fired, "a")
		})
	})

	step(r, clock, 500*time.Millisecond)
	assert.Empty(t, fired)

	step(r, clock, 500*time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)

	step(r, clock, time.Hour)
	assert.Equal(t, []string{"a"}, fired)
}

func TestRoom_reschedule(t *testing.T) {
	reg, clock := newTestRegistry(1)
	r, err := reg.Create(testPin, 3)
	require.NoError(t, err)

	fired := make([]string, 0)
	inLoop(r, func() {
		a := r.schedule("a", time.Second, func() {
			fired = append(fired, "a")
		})

		r.reschedule(a, "b", 2*time.Second, func() {
			fired = append(fired, "b")
		})
	})

	step(r, clock, time.Second)
	assert.Empty(t, fired)

	step(r, clock, time.Second)
	assert.Equal(t, []string{"b"}, fired)
}

func TestTask_cancelAfterFire(t *testing.T) {
	reg, clock := newTestRegistry(1)
	r, err := reg.Create(testPin, 3)
	require.NoError(t, err)

	fired := 0
	inLoop(r, func() {
		tk := r.schedule("stale", time.Second, func() {
			fired++
		})

		// the timer fires and queues its work behind this function
		clock.Advance(time.Second)
		tk.cancel()
	})

	flush(r)
	assert.Equal(t, 0, fired)

	var nilTask *task
	assert.NotPanics(t, nilTask.cancel)
}
