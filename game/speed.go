package game

import (
	"time"

	"snake-classic/constants"
)

// NextPeriod applies the speed ramp after score changed. The period shrinks by
// one step each time score lands on a multiple of SPEEDUP_EVERY while it is
// still above the floor.
func NextPeriod(score int, period time.Duration) (time.Duration, bool) {
	if score == 0 || score%constants.SPEEDUP_EVERY != 0 || period <= constants.PERIOD_FLOOR {
		return period, false
	}
	return period - constants.PERIOD_STEP, true
}
