package planning

import "github.com/andresuchdata/shelfpilot/backend-go/internal/domain"

// ScoreConfidence rates a suggestion by sample depth and forecast source
// agreement. High needs a deep window of observed demand; medium needs either
// a few samples or both sources agreeing that demand exists.
func ScoreConfidence(sampleCount int, movingDemand, baselineDemand float64) domain.Confidence {
	switch {
	case sampleCount >= 10 && movingDemand > 0:
		return domain.ConfidenceHigh
	case sampleCount >= 4:
		return domain.ConfidenceMedium
	case movingDemand > 0 && baselineDemand > 0:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
