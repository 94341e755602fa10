package core

import "time"

// Pacer caps the loop at one iteration per interval regardless of how long
// the update and render work takes.
type Pacer struct {
	interval time.Duration
	start    time.Time
	deadline time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer constructs a Pacer for the given frame interval. A zero interval
// never sleeps.
func NewPacer(interval time.Duration) *Pacer {
	if interval < 0 {
		interval = 0
	}
	return &Pacer{interval: interval, now: time.Now, sleep: time.Sleep}
}

// Start records the beginning of an iteration and its deadline.
func (p *Pacer) Start() {
	p.start = p.now()
	p.deadline = p.start.Add(p.interval)
}

// Wait blocks until the deadline recorded by Start and returns the wall time
// the iteration took. It returns immediately when unthrottled or when the
// deadline has already passed.
func (p *Pacer) Wait() time.Duration {
	if p.interval > 0 {
		if d := p.deadline.Sub(p.now()); d > 0 {
			p.sleep(d)
		}
	}
	return p.now().Sub(p.start)
}

// Rate converts the elapsed time of one iteration into frames per second.
// It reports false when elapsed is too small to divide by.
func Rate(elapsed time.Duration) (float64, bool) {
	if elapsed <= 0 {
		return 0, false
	}
	return float64(time.Second) / float64(elapsed), true
}
