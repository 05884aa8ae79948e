package room

import (
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"powersuit-server/internal/config"
	"powersuit-server/internal/rng"
	"powersuit-server/pkg/playable"
)

const testPin = "1234"

// fakeClock only fires timers when the test advances it
type fakeClock struct {
	lock   sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (f *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	f.lock.Lock()
	defer f.lock.Unlock()

	t := &fakeTimer{clock: f, at: f.now + d, fn: fn}
	f.timers = append(f.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.lock.Lock()
	defer t.clock.lock.Unlock()

	if t.stopped || t.fired {
		return false
	}

	t.stopped = true
	return true
}

// Advance moves the clock forward and fires every timer that is due
func (f *fakeClock) Advance(d time.Duration) {
	f.lock.Lock()
	f.now += d

	due := make([]*fakeTimer, 0)
	pending := make([]*fakeTimer, 0, len(f.timers))
	for _, t := range f.timers {
		switch {
		case t.stopped:
		case t.at <= f.now:
			t.fired = true
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}

	f.timers = pending
	f.lock.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].at < due[j].at
	})

	for _, t := range due {
		t.fn()
	}
}

// zeroRng never produces a valid deal
type zeroRng struct{}

func (zeroRng) Intn(int) int {
	return 0
}

func newTestRegistry(seed int64) (*Registry, *fakeClock) {
	clock := &fakeClock{}
	reg := NewRegistry(config.DefaultGame())
	reg.clock = clock
	reg.codes = rng.NewSeeded(seed)
	reg.newGenerator = func() rng.Generator {
		return rng.NewSeeded(seed)
	}

	return reg, clock
}

// flush waits until everything queued on the room's run loop has run
func flush(r *Room) {
	done := make(chan bool)
	r.exec(func() {
		close(done)
	})

	select {
	case <-done:
	case <-r.close:
	}
}

// inLoop runs fn on the room's run loop and waits for it
func inLoop(r *Room, fn func()) {
	r.exec(fn)
	flush(r)
}

// step runs queued intents first so their timers are armed before the clock moves
func step(r *Room, clock *fakeClock, d time.Duration) {
	flush(r)
	clock.Advance(d)
	flush(r)
}

// drain returns every message queued for the client
func drain(c *Client) []*playable.Response {
	msgs := make([]*playable.Response, 0)
	for {
		select {
		case msg := <-c.send:
			msgs = append(msgs, msg.(*playable.Response))
		default:
			return msgs
		}
	}
}

func events(msgs []*playable.Response, key string) []*playable.Response {
	found := make([]*playable.Response, 0)
	for _, msg := range msgs {
		if msg.Key == key {
			found = append(found, msg)
		}
	}

	return found
}

func joinMessage(code, name, pin string) *playable.PayloadIn {
	return &playable.PayloadIn{
		Action: "join-room",
		AdditionalData: playable.AdditionalData{
			"roomId":       code,
			"playerName":   name,
			"hostPassword": pin,
		},
	}
}

// newFullRoom creates a room and seats capacity clients named p0, p1...
func newFullRoom(t *testing.T, capacity int) (*Registry, *fakeClock, *Room, []*Client) {
	t.Helper()

	reg, clock := newTestRegistry(1)
	r, err := reg.Create(testPin, capacity)
	require.NoError(t, err)

	clients := make([]*Client, capacity)
	for i := range clients {
		clients[i] = NewClient(nil)
		reg.ReceivedMessage(clients[i], joinMessage(r.Code, fmt.Sprintf("p%d", i), testPin))
	}

	flush(r)
	for _, c := range clients {
		require.Equal(t, r, c.Room())
		drain(c)
	}

	return reg, clock, r, clients
}

// readyAll readies every client and deals the first round
func readyAll(t *testing.T, r *Room, clock *fakeClock, clients []*Client) {
	t.Helper()

	for _, c := range clients {
		r.ReceivedMessage(c, &playable.PayloadIn{Action: "player-ready"})
	}

	step(r, clock, r.cfg.StartDelay)
	for _, c := range clients {
		require.Len(t, events(drain(c), eventRoundStarted), 1)
	}
}
