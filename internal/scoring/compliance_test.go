package scoring_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/C2IHub/proCURE2/internal/adapters/memory"
	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/scoring"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func req(supplierID string, items ...domain.RequirementItem) domain.ComplianceRequirement {
	return domain.ComplianceRequirement{ID: "req-" + supplierID, SupplierID: supplierID, Requirements: items}
}

func it(name string, t domain.RequirementType, status domain.RequirementStatus) domain.RequirementItem {
	return domain.RequirementItem{ID: name, Name: name, Type: t, CurrentStatus: status}
}

func TestComplianceEndToEnd(t *testing.T) {
	master := domain.SupplierMaster{ID: "S1", Name: "Acme Glass", ComplianceTrend: domain.TrendDown}
	store := memory.New([]domain.SupplierMaster{master}, []domain.ComplianceRequirement{
		req("S1",
			it("EU GMP Certification", domain.RequirementCertification, domain.StatusValid),
			it("ISO 15378 Certification", domain.RequirementCertification, domain.StatusValid),
			it("FDA Registration", domain.RequirementCertification, domain.StatusExpired),
			it("REACH Compliance", domain.RequirementDocumentation, domain.StatusValid),
		),
	})
	engine := scoring.New(store, store,
		scoring.WithClock(clockwork.NewFakeClockAt(fixedNow)),
		scoring.WithAuditProvider(scoring.StaticAuditProvider{Audit: 90, RegulatoryHistory: 85}),
	)

	score, err := engine.CalculateComplianceScore(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, 67, score.Certifications)
	assert.Equal(t, 100, score.Documentation)
	assert.Equal(t, 90, score.Audits)
	assert.Equal(t, 85, score.RegulatoryHistory)
	assert.Equal(t, 82, score.Overall)
	assert.Equal(t, domain.Warning, score.Status)
	assert.Equal(t, domain.TrendDown, score.Trend)
	assert.Equal(t, fixedNow, score.LastCalculated)
	assert.Equal(t, fixedNow.AddDate(0, 0, 30), score.NextReview)
}

func TestComplianceVacuousCertificationCredit(t *testing.T) {
	r := req("S1", it("REACH Compliance", domain.RequirementDocumentation, domain.StatusPending))
	score := scoring.ComplianceFromRequirement(r, scoring.AuditSignals{Audit: 70, RegulatoryHistory: 85}, "", fixedNow)
	assert.Equal(t, 100, score.Certifications)
	assert.Equal(t, 0, score.Documentation)
	assert.Equal(t, domain.TrendStable, score.Trend)

	empty := scoring.ComplianceFromRequirement(req("S2"), scoring.AuditSignals{}, "", fixedNow)
	assert.Equal(t, 100, empty.Certifications)
	assert.Equal(t, 100, empty.Documentation)
}

func TestComplianceMissingRequirementRecord(t *testing.T) {
	store := memory.New([]domain.SupplierMaster{{ID: "S1", Name: "Orphan"}}, nil)
	engine := scoring.New(store, store, scoring.WithClock(clockwork.NewFakeClockAt(fixedNow)))

	score, err := engine.CalculateComplianceScore(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, domain.ComplianceScore{
		Overall:           0,
		Certifications:    0,
		Audits:            50,
		Documentation:     0,
		RegulatoryHistory: 80,
		Status:            domain.Critical,
		Trend:             domain.TrendStable,
		LastCalculated:    fixedNow,
		NextReview:        fixedNow.AddDate(0, 0, 30),
	}, score)
}

func TestComplianceCustomFallback(t *testing.T) {
	store := memory.New(nil, nil)
	policy := scoring.DefaultFallbackPolicy()
	policy.Compliance.RegulatoryHistory = 0
	policy.Certifications = nil
	engine := scoring.New(store, store, scoring.WithFallback(policy))

	s, err := engine.BuildSupplier(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Compliance.RegulatoryHistory)
	assert.Empty(t, s.Certifications)
}

func TestComplianceStatusBoundaries(t *testing.T) {
	cases := []struct {
		overall int
		want    domain.ComplianceStatus
	}{
		{100, domain.Compliant},
		{85, domain.Compliant},
		{84, domain.Warning},
		{70, domain.Warning},
		{69, domain.Critical},
		{0, domain.Critical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scoring.ComplianceStatusFor(tc.overall), "overall=%d", tc.overall)
	}
}

func TestSubsetScoreRounding(t *testing.T) {
	items := []domain.RequirementItem{
		it("a", domain.RequirementCertification, domain.StatusValid),
		it("b", domain.RequirementCertification, domain.StatusExpiring),
		it("c", domain.RequirementCertification, domain.StatusExpiring),
	}
	assert.Equal(t, 33, scoring.SubsetScore(items, domain.RequirementCertification))

	items[1].CurrentStatus = domain.StatusValid
	assert.Equal(t, 67, scoring.SubsetScore(items, domain.RequirementCertification))
	assert.Equal(t, 100, scoring.SubsetScore(items, domain.RequirementDocumentation))
}

func TestHeuristicAuditProvider(t *testing.T) {
	clock := clockwork.NewFakeClockAt(fixedNow)
	master := domain.SupplierMaster{EmployeeCount: 1200, EstablishedYear: 1998}

	got := scoring.HeuristicAuditProvider{Jitter: scoring.NoJitter{}, Clock: clock}.Signals(&master)
	// 70 base, +15 for size, +14 for 28 years
	assert.Equal(t, scoring.AuditSignals{Audit: 99, RegulatoryHistory: 85}, got)

	got = scoring.HeuristicAuditProvider{Jitter: scoring.FixedJitter(9), Clock: clock}.Signals(&master)
	assert.Equal(t, 100, got.Audit)
	assert.Equal(t, 94, got.RegulatoryHistory)

	young := domain.SupplierMaster{EmployeeCount: 250, EstablishedYear: 2022, RegulatoryHistoryFlag: true}
	got = scoring.HeuristicAuditProvider{Clock: clock}.Signals(&young)
	assert.Equal(t, scoring.AuditSignals{Audit: 77, RegulatoryHistory: 65}, got)

	assert.Equal(t, scoring.AuditSignals{Audit: 70, RegulatoryHistory: 85}, scoring.HeuristicAuditProvider{}.Signals(nil))
}
