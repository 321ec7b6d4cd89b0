package scoring

import (
	"github.com/jonboulle/clockwork"

	"github.com/C2IHub/proCURE2/internal/domain"
)

// AuditSignals are the audit and regulatory-history inputs to the compliance
// score. The system holds no real audit history, so they come from a provider.
type AuditSignals struct {
	Audit             int
	RegulatoryHistory int
}

// AuditScoreProvider derives AuditSignals for a supplier. master is nil when
// the supplier has a requirement record but no master entry.
type AuditScoreProvider interface {
	Signals(master *domain.SupplierMaster) AuditSignals
}

// HeuristicAuditProvider approximates audit standing from size and age.
type HeuristicAuditProvider struct {
	Jitter Jitter
	Clock  clockwork.Clock
}

func (h HeuristicAuditProvider) Signals(master *domain.SupplierMaster) AuditSignals {
	if master == nil {
		return AuditSignals{Audit: baseAuditScore, RegulatoryHistory: baseRegulatoryScore}
	}
	jitter := h.Jitter
	if jitter == nil {
		jitter = NoJitter{}
	}
	clock := h.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	audit := baseAuditScore + employeeTier(master.EmployeeCount) + ageBonus(clock.Now().Year()-master.EstablishedYear)
	audit += jitter.Intn(JitterSpan)
	if audit > 100 {
		audit = 100
	}

	regulatory := baseRegulatoryScore
	if master.RegulatoryHistoryFlag {
		regulatory = flaggedRegulatory
	}
	regulatory += jitter.Intn(JitterSpan)

	return AuditSignals{Audit: audit, RegulatoryHistory: regulatory}
}

func employeeTier(employees int) int {
	switch {
	case employees >= 1000:
		return 15
	case employees >= 500:
		return 10
	case employees >= 200:
		return 5
	default:
		return 0
	}
}

func ageBonus(years int) int {
	if years <= 0 {
		return 0
	}
	return min(years/2, maxAgeBonus)
}

// StaticAuditProvider returns the same signals for every supplier.
type StaticAuditProvider AuditSignals

func (s StaticAuditProvider) Signals(*domain.SupplierMaster) AuditSignals { return AuditSignals(s) }
