package scoring

import (
	"time"

	"github.com/C2IHub/proCURE2/internal/domain"
)

const (
	regionAsiaPacific = "Asia Pacific"
	categoryAPIs      = "APIs"
)

// RiskFactorsFor derives the five clamped risk factors. Jitter is drawn once
// per factor in field order.
func RiskFactorsFor(master domain.SupplierMaster, jitter Jitter) domain.RiskFactors {
	if jitter == nil {
		jitter = NoJitter{}
	}
	facilities := len(master.Facilities)

	financial := baseRisk
	switch {
	case master.EmployeeCount < 100:
		financial += 20
	case master.EmployeeCount < 200:
		financial += 10
	}

	operational := baseRisk
	switch facilities {
	case 1:
		operational += 25
	case 2:
		operational += 15
	}

	quality := baseRisk
	switch {
	case master.EstablishedYear > 2015:
		quality += 15
	case master.EstablishedYear > 2010:
		quality += 5
	}

	supply := baseRisk
	switch {
	case master.Region == regionAsiaPacific:
		supply += 10
	case facilities == 1:
		supply += 20
	}

	regulatory := baseRisk
	switch {
	case master.Category == categoryAPIs:
		regulatory += 15
	case master.Region == regionAsiaPacific:
		regulatory += 10
	}

	return domain.RiskFactors{
		Financial:    clampFactor(financial + jitter.Intn(JitterSpan)),
		Operational:  clampFactor(operational + jitter.Intn(JitterSpan)),
		QualityTrend: clampFactor(quality + jitter.Intn(JitterSpan)),
		SupplyChain:  clampFactor(supply + jitter.Intn(JitterSpan)),
		Regulatory:   clampFactor(regulatory + jitter.Intn(JitterSpan)),
	}
}

func clampFactor(v int) int {
	return max(0, min(v, maxRiskFactor))
}

// RiskFromFactors assembles a RiskScore from already computed factors.
func RiskFromFactors(f domain.RiskFactors, trend domain.RiskTrend, now time.Time) domain.RiskScore {
	overall := WeightedRisk(f)
	if trend == "" {
		trend = domain.RiskStable
	}
	return domain.RiskScore{
		Overall:        overall,
		Level:          RiskLevelFor(overall),
		Factors:        f,
		Probability:    RiskProbability(overall),
		Trend:          trend,
		LastCalculated: now,
		NextAssessment: now.AddDate(0, 0, assessmentIntervalDays),
	}
}

// RiskFromMaster scores a supplier master record.
func RiskFromMaster(master domain.SupplierMaster, jitter Jitter, now time.Time) domain.RiskScore {
	return RiskFromFactors(RiskFactorsFor(master, jitter), RiskTrendOf(master), now)
}

func WeightedRisk(f domain.RiskFactors) int {
	return weighted(
		[2]int{f.Financial, WeightFinancial},
		[2]int{f.Operational, WeightOperational},
		[2]int{f.QualityTrend, WeightQualityTrend},
		[2]int{f.SupplyChain, WeightSupplyChain},
		[2]int{f.Regulatory, WeightRegulatory},
	)
}

func RiskLevelFor(overall int) domain.RiskLevel {
	switch {
	case overall <= LowRiskCeiling:
		return domain.RiskLow
	case overall <= MediumRiskCeiling:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

// RiskProbability is round(min(overall*0.8, 95)).
func RiskProbability(overall int) int {
	if overall < 0 {
		overall = 0
	}
	return min((overall*8+5)/10, maxProbability)
}

func RiskTrendOf(master domain.SupplierMaster) domain.RiskTrend {
	switch master.RiskTrend {
	case domain.RiskImproving, domain.RiskDeteriorating:
		return master.RiskTrend
	default:
		return domain.RiskStable
	}
}

// DefaultRiskScore is returned for suppliers missing from the directory.
func DefaultRiskScore(now time.Time) domain.RiskScore {
	return domain.RiskScore{
		Overall: 50,
		Level:   domain.RiskMedium,
		Factors: domain.RiskFactors{
			Financial:    50,
			Operational:  50,
			QualityTrend: 50,
			SupplyChain:  50,
			Regulatory:   50,
		},
		Probability:    40,
		Trend:          domain.RiskStable,
		LastCalculated: now,
		NextAssessment: now.AddDate(0, 0, assessmentIntervalDays),
	}
}
