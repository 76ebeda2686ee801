package strength

import (
	"fmt"
	"math"
)

// centuryCutoff is the estimate above which ReadableDuration stops counting years.
const centuryCutoff = 1e6 * year

// ReadableDuration renders a crack-time estimate for humans.
func ReadableDuration(seconds float64) string {
	switch {
	case math.IsNaN(seconds) || seconds >= centuryCutoff:
		return "centuries"
	case seconds < 60:
		return fmt.Sprintf("%.2f seconds", seconds)
	case seconds < hour:
		return fmt.Sprintf("%.2f minutes", seconds/60)
	case seconds < day:
		return fmt.Sprintf("%.2f hours", seconds/hour)
	case seconds < year:
		return fmt.Sprintf("%.2f days", seconds/day)
	default:
		return fmt.Sprintf("%.2f years", seconds/year)
	}
}
