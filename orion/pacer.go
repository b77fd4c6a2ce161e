package orion

import "time"

// Pacer limits the tick rate of the loop. Wait blocks until at least one
// frame budget has passed since the previous tick began.
type Pacer struct {
	budget time.Duration
	last   time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer creates a pacer for the given rate. A rate of zero or less
// disables pacing.
func NewPacer(targetFPS float64) *Pacer {
	var budget time.Duration
	if targetFPS > 0 {
		budget = time.Duration(float64(time.Second) / targetFPS)
	}

	return &Pacer{
		budget: budget,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

func (p *Pacer) Budget() time.Duration {
	return p.budget
}

func (p *Pacer) Wait() {
	if p.budget <= 0 {
		return
	}

	now := p.now()

	if !p.last.IsZero() {
		if elapsed := now.Sub(p.last); elapsed < p.budget {
			p.sleep(p.budget - elapsed)
			now = p.now()
		}
	}

	p.last = now
}
