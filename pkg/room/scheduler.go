package room

import "time"

// Timer is a scheduled function that can be stopped
type Timer interface {
	Stop() bool
}

// Clock schedules functions to run after a delay
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock returns a clock backed by time.AfterFunc
func RealClock() Clock {
	return realClock{}
}

// task is a scheduled action owned by a room.
// When the timer fires the action is queued onto the room's run loop, where
// it only runs if the task was not cancelled in the meantime.
type task struct {
	name  string
	timer Timer
	done  bool
}

// cancel stops the task. A nil task is a no-op
// NOTE: must only be called from the run loop
func (t *task) cancel() {
	if t == nil || t.done {
		return
	}

	t.done = true
	t.timer.Stop()
}

// schedule runs fn on the run loop after d
// NOTE: must only be called from the run loop
func (r *Room) schedule(name string, d time.Duration, fn func()) *task {
	t := &task{name: name}
	t.timer = r.clock.AfterFunc(d, func() {
		r.exec(func() {
			// a timer that already fired may still be queued after cancel()
			if t.done {
				return
			}

			t.done = true
			r.logger.WithField("task", t.name).Trace("task fired")
			fn()
		})
	})

	return t
}

// reschedule cancels prev, then schedules fn
// NOTE: must only be called from the run loop
func (r *Room) reschedule(prev *task, name string, d time.Duration, fn func()) *task {
	prev.cancel()
	return r.schedule(name, d, fn)
}
