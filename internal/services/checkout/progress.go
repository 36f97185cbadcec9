package checkout

import (
	"context"
	"time"
)

// Progress caps at this value until the simulator's real result lands, then
// snaps to 100. The interpolation is cosmetic and must never finish before
// the processor does.
const progressCeiling = 90

// Phase maps a progress percentage to the overlay text shown to the user.
func Phase(progress int) string {
	switch {
	case progress < 30:
		return "Validating payment information..."
	case progress < 60:
		return "Contacting payment processor..."
	case progress < 90:
		return "Authorizing transaction..."
	default:
		return "Finalizing payment..."
	}
}

// runProgress interpolates progress from elapsed time against the method's
// fixed latency until stop closes (result arrived) or ctx is cancelled
// (session abandoned). It never reports more than progressCeiling.
func (s *Session) runProgress(ctx context.Context, stop <-chan struct{}, latency time.Duration) {
	if latency <= 0 {
		return
	}

	started := time.Now()
	ticker := time.NewTicker(s.cfg.ProgressTick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			elapsed := time.Since(started)
			p := int(float64(elapsed) / float64(latency) * 100)
			if p > progressCeiling {
				p = progressCeiling
			}
			s.mu.Lock()
			if s.processing && p > s.progress {
				s.progress = p
			}
			s.mu.Unlock()
		}
	}
}
