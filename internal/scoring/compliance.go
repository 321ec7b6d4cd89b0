package scoring

import (
	"time"

	"github.com/C2IHub/proCURE2/internal/domain"
)

// ComplianceFromRequirement scores a requirement checklist. It is pure: the
// audit signals, trend and clock reading are all supplied by the caller.
func ComplianceFromRequirement(req domain.ComplianceRequirement, signals AuditSignals, trend domain.ComplianceTrend, now time.Time) domain.ComplianceScore {
	cert := SubsetScore(req.Requirements, domain.RequirementCertification)
	doc := SubsetScore(req.Requirements, domain.RequirementDocumentation)
	overall := WeightedCompliance(cert, signals.Audit, doc, signals.RegulatoryHistory)
	if trend == "" {
		trend = domain.TrendStable
	}
	return domain.ComplianceScore{
		Overall:           overall,
		Certifications:    cert,
		Audits:            signals.Audit,
		Documentation:     doc,
		RegulatoryHistory: signals.RegulatoryHistory,
		Status:            ComplianceStatusFor(overall),
		Trend:             trend,
		LastCalculated:    now,
		NextReview:        now.AddDate(0, 0, reviewIntervalDays),
	}
}

// SubsetScore is the rounded percentage of items of type t that are valid.
// An empty subset earns full credit.
func SubsetScore(items []domain.RequirementItem, t domain.RequirementType) int {
	total, valid := 0, 0
	for _, it := range items {
		if it.Type != t {
			continue
		}
		total++
		if it.CurrentStatus == domain.StatusValid {
			valid++
		}
	}
	if total == 0 {
		return 100
	}
	return (200*valid + total) / (2 * total)
}

func WeightedCompliance(certifications, audits, documentation, regulatoryHistory int) int {
	return weighted(
		[2]int{certifications, WeightCertifications},
		[2]int{audits, WeightAudits},
		[2]int{documentation, WeightDocumentation},
		[2]int{regulatoryHistory, WeightRegulatoryHistory},
	)
}

func ComplianceStatusFor(overall int) domain.ComplianceStatus {
	switch {
	case overall >= CompliantThreshold:
		return domain.Compliant
	case overall >= WarningThreshold:
		return domain.Warning
	default:
		return domain.Critical
	}
}

// ComplianceTrendOf reads the trend attribute off the master record.
func ComplianceTrendOf(master domain.SupplierMaster) domain.ComplianceTrend {
	switch master.ComplianceTrend {
	case domain.TrendUp, domain.TrendDown:
		return master.ComplianceTrend
	default:
		return domain.TrendStable
	}
}
