package scoring_test

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/C2IHub/proCURE2/internal/adapters/memory"
	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/scoring"
)

func TestWeightsSumToOne(t *testing.T) {
	assert.Equal(t, 100, scoring.WeightCertifications+scoring.WeightAudits+scoring.WeightDocumentation+scoring.WeightRegulatoryHistory)
	assert.Equal(t, 100, scoring.WeightFinancial+scoring.WeightOperational+scoring.WeightQualityTrend+scoring.WeightSupplyChain+scoring.WeightRegulatory)
}

func TestScoringProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	score := gen.IntRange(0, 100)
	factor := gen.IntRange(0, 80)

	properties.Property("compliance overall stays within [0,100]", prop.ForAll(
		func(c, a, d, r int) bool {
			o := scoring.WeightedCompliance(c, a, d, r)
			return o >= 0 && o <= 100
		},
		score, score, score, score,
	))

	properties.Property("compliance overall is bounded by its sub-scores", prop.ForAll(
		func(c, a, d, r int) bool {
			o := scoring.WeightedCompliance(c, a, d, r)
			return o >= min(c, a, d, r) && o <= max(c, a, d, r)
		},
		score, score, score, score,
	))

	properties.Property("risk overall stays within [0,80]", prop.ForAll(
		func(f, o, q, s, r int) bool {
			v := scoring.WeightedRisk(domain.RiskFactors{Financial: f, Operational: o, QualityTrend: q, SupplyChain: s, Regulatory: r})
			return v >= 0 && v <= 80
		},
		factor, factor, factor, factor, factor,
	))

	properties.Property("exactly one compliance status applies", prop.ForAll(
		func(o int) bool {
			st := scoring.ComplianceStatusFor(o)
			matches := 0
			if o >= 85 && st == domain.Compliant {
				matches++
			}
			if o >= 70 && o < 85 && st == domain.Warning {
				matches++
			}
			if o < 70 && st == domain.Critical {
				matches++
			}
			return matches == 1
		},
		score,
	))

	properties.Property("exactly one risk level applies", prop.ForAll(
		func(o int) bool {
			lv := scoring.RiskLevelFor(o)
			matches := 0
			if o <= 30 && lv == domain.RiskLow {
				matches++
			}
			if o > 30 && o <= 60 && lv == domain.RiskMedium {
				matches++
			}
			if o > 60 && lv == domain.RiskHigh {
				matches++
			}
			return matches == 1
		},
		score,
	))

	properties.Property("probability is 0.8 of overall capped at 95", prop.ForAll(
		func(o int) bool {
			p := scoring.RiskProbability(o)
			return p <= 95 && p >= 0 && (o > 118 || p == (o*8+5)/10)
		},
		gen.IntRange(0, 200),
	))

	properties.Property("jittered factors stay clamped", prop.ForAll(
		func(seed int64, employees, year, facilities int) bool {
			fs := make([]string, facilities)
			m := domain.SupplierMaster{EmployeeCount: employees, EstablishedYear: year, Facilities: fs, Region: "Asia Pacific", Category: "APIs"}
			f := scoring.RiskFactorsFor(m, scoring.NewJitter(seed))
			for _, v := range []int{f.Financial, f.Operational, f.QualityTrend, f.SupplyChain, f.Regulatory} {
				if v < 0 || v > 80 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(0, 5000), gen.IntRange(1900, 2030), gen.IntRange(0, 4),
	))

	properties.Property("same seed and clock give the same scores", prop.ForAll(
		func(seed int64) bool {
			ctx := context.Background()
			build := func() []domain.Supplier {
				store := memory.NewSeeded()
				e := scoring.New(store, store,
					scoring.WithClock(clockwork.NewFakeClockAt(fixedNow)),
					scoring.WithJitter(scoring.NewJitter(seed)),
				)
				out, err := e.BuildSuppliers(ctx)
				if err != nil {
					return nil
				}
				return out
			}
			a, b := build(), build()
			return a != nil && assert.ObjectsAreEqual(a, b)
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
