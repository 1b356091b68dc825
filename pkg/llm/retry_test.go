package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelay_GrowsExponentiallyWithinJitterBounds(t *testing.T) {
	for attempt := 0; attempt < 6; attempt++ {
		base := baseBackoff << attempt
		if base > maxBackoff {
			base = maxBackoff
		}
		lo := time.Duration(float64(base) * 0.75)
		hi := time.Duration(float64(base) * 1.25)

		for i := 0; i < 50; i++ {
			d := backoffDelay(attempt)
			assert.GreaterOrEqual(t, d, lo, "attempt %d", attempt)
			assert.LessOrEqual(t, d, hi, "attempt %d", attempt)
		}
	}
}

func TestBackoffDelay_CapsAtMax(t *testing.T) {
	// Shift overflow on huge attempt numbers must still land at the cap.
	d := backoffDelay(62)
	assert.LessOrEqual(t, d, time.Duration(float64(maxBackoff)*1.25))
	assert.GreaterOrEqual(t, d, time.Duration(float64(maxBackoff)*0.75))
}
