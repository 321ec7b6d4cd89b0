package scoring

// Compliance sub-score weights, in percent. They must sum to 100.
const (
	WeightCertifications    = 40
	WeightAudits            = 30
	WeightDocumentation     = 20
	WeightRegulatoryHistory = 10
)

// Risk factor weights, in percent. They must sum to 100.
const (
	WeightFinancial    = 25
	WeightOperational  = 25
	WeightQualityTrend = 20
	WeightSupplyChain  = 15
	WeightRegulatory   = 15
)

// Status and level bands. Each compliance band includes its lower bound,
// each risk band includes its upper bound.
const (
	CompliantThreshold = 85
	WarningThreshold   = 70

	LowRiskCeiling    = 30
	MediumRiskCeiling = 60
)

const (
	// JitterSpan bounds the random perturbation: offsets fall in [0, JitterSpan).
	JitterSpan = 10

	baseRisk      = 20
	maxRiskFactor = 80

	baseAuditScore      = 70
	maxAgeBonus         = 15
	baseRegulatoryScore = 85
	flaggedRegulatory   = 65

	maxProbability = 95

	reviewIntervalDays     = 30
	assessmentIntervalDays = 7
)

// weighted returns round(sum(value*weight)/100) for non-negative inputs
// without going through floating point.
func weighted(pairs ...[2]int) int {
	sum := 0
	for _, p := range pairs {
		sum += p[0] * p[1]
	}
	return (sum + 50) / 100
}
