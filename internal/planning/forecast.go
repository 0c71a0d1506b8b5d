package planning

import "github.com/andresuchdata/shelfpilot/backend-go/internal/domain"

// Blend weights for the auto-reorder velocity. Recent observed demand
// dominates, the manual baseline damps single-session noise.
const (
	velocityMovingWeight   = 0.65
	velocityBaselineWeight = 0.35
)

// MovingAverage returns the arithmetic mean of the sample window. The second
// return is false when the window is empty - an empty window means "no
// observed demand yet", not zero demand.
func MovingAverage(samples []float64) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, s := range samples {
		sum += s
	}

	return sum / float64(len(samples)), true
}

// PlanningForecast is the demand figure used for planner lists and exception
// detection: whichever of the manual baseline and the observed moving average
// currently signals higher demand. Favoring the max avoids under-forecasting.
func PlanningForecast(baseline float64, samples []float64) float64 {
	moving, ok := MovingAverage(samples)
	if !ok {
		moving = 0
	}
	if baseline > moving {
		return baseline
	}
	return moving
}

// BlendedVelocity is the demand figure used for auto-reorder suggestions.
// When both sources are positive they are blended 65/35 in favor of recent
// observations; otherwise the larger source wins outright.
func BlendedVelocity(baseline float64, samples []float64) float64 {
	moving, ok := MovingAverage(samples)
	if !ok {
		moving = 0
	}

	if moving > 0 && baseline > 0 {
		return velocityMovingWeight*moving + velocityBaselineWeight*baseline
	}
	if moving > baseline {
		return moving
	}
	return baseline
}

// AppendSample records one day's usage into the item's rolling window,
// evicting the oldest sample past the cap. Negative usage clamps to zero.
// The first sample ever logged also seeds AverageDailyUsage when no manual
// baseline has been set; nothing else writes that field from usage logging.
func AppendSample(item *domain.InventoryItem, usage float64) {
	if usage < 0 {
		usage = 0
	}

	item.DailyDemandSamples = append(item.DailyDemandSamples, usage)
	if len(item.DailyDemandSamples) > domain.SampleWindowSize {
		item.DailyDemandSamples = item.DailyDemandSamples[len(item.DailyDemandSamples)-domain.SampleWindowSize:]
	}

	if item.AverageDailyUsage == 0 {
		item.AverageDailyUsage = usage
	}
}
