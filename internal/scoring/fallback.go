package scoring

import (
	"time"

	"github.com/C2IHub/proCURE2/internal/domain"
)

// FallbackPolicy is what the engine reports for a supplier that has no
// requirement record. Timestamps on Compliance are overwritten per call.
type FallbackPolicy struct {
	Compliance     domain.ComplianceScore
	Certifications []string
}

// DefaultFallbackPolicy reports a missing checklist as critical with zero
// certification and documentation credit, a neutral audit score and a good
// regulatory history. The mix of worst-case and lenient values awaits a
// product decision; replace the policy with WithFallback when it is made.
func DefaultFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{
		Compliance: domain.ComplianceScore{
			Overall:           0,
			Certifications:    0,
			Audits:            50,
			Documentation:     0,
			RegulatoryHistory: 80,
			Status:            domain.Critical,
			Trend:             domain.TrendStable,
		},
		Certifications: []string{"ISO 15378"},
	}
}

func (p FallbackPolicy) compliance(now time.Time) domain.ComplianceScore {
	out := p.Compliance
	out.LastCalculated = now
	out.NextReview = now.AddDate(0, 0, reviewIntervalDays)
	return out
}

func (p FallbackPolicy) certifications() []string {
	return append([]string(nil), p.Certifications...)
}
