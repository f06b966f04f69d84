package hal

import "time"

// hostTime converts wall-clock progress into 1 ms ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64

	clock func() time.Time
	last  time.Time
	acc   time.Duration
}

const hostTickDur = time.Millisecond

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), clock: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits the ticks that elapsed since the previous call. The first call
// emits n ticks.
func (t *hostTime) step(n uint64) {
	now := t.clock()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / hostTickDur)
	if ticks == 0 {
		return
	}
	t.acc %= hostTickDur
	t.stepN(ticks)
}

func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
