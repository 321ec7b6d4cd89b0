package scoring

import "github.com/C2IHub/proCURE2/internal/domain"

// DetermineSupplierRating applies the rating rules top to bottom, first match
// wins. Any compliance below 70 is restricted regardless of risk level.
func DetermineSupplierRating(compliance domain.ComplianceScore, risk domain.RiskScore) domain.SupplierRating {
	c := compliance.Overall
	switch {
	case c >= 90 && risk.Level == domain.RiskLow:
		return domain.RatingPreferred
	case c >= 90 && risk.Level == domain.RiskMedium:
		return domain.RatingApproved
	case c >= 70 && risk.Level == domain.RiskLow:
		return domain.RatingApproved
	case c >= 70 && risk.Level == domain.RiskMedium:
		return domain.RatingConditional
	case c < 70:
		return domain.RatingRestricted
	case risk.Level == domain.RiskHigh:
		return domain.RatingConditional
	default:
		return domain.RatingConditional
	}
}
