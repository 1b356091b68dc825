package llm

import (
	"math/rand/v2"
	"time"
)

const (
	baseBackoff = 500 * time.Millisecond
	maxBackoff  = 8 * time.Second
)

// backoffDelay returns the wait before retry attempt n (0-based): exponential
// growth capped at maxBackoff, with ±25% jitter so concurrent missions
// hitting the same rate limit don't retry in lockstep.
func backoffDelay(attempt int) time.Duration {
	d := baseBackoff << attempt
	if d > maxBackoff || d <= 0 {
		d = maxBackoff
	}
	jitter := 0.75 + rand.Float64()*0.5
	return time.Duration(float64(d) * jitter)
}
