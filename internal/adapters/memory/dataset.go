package memory

import (
	"time"

	"github.com/C2IHub/proCURE2/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

// SeedSuppliers is the supplier master directory the dashboard ships with.
// SUP004 and SUP012 have no requirement record on purpose.
func SeedSuppliers() []domain.SupplierMaster {
	return []domain.SupplierMaster{
		{ID: "SUP001", Name: "MedTech Solutions", Category: "Primary Packaging", Region: "Europe", EstablishedYear: 1998, EmployeeCount: 1200, Facilities: []string{"Basel", "Lyon", "Porto"}, Status: "active", Website: "https://www.medtech-solutions.eu", ComplianceTrend: domain.TrendUp, RiskTrend: domain.RiskImproving},
		{ID: "SUP002", Name: "GlobalPack Ltd", Category: "Primary Packaging", Region: "Europe", EstablishedYear: 2005, EmployeeCount: 640, Facilities: []string{"Manchester", "Leeds"}, Status: "active", Website: "https://globalpack.co.uk", ComplianceTrend: domain.TrendUp},
		{ID: "SUP003", Name: "NorthStar Vials Inc", Category: "Primary Packaging", Region: "North America", EstablishedYear: 2012, EmployeeCount: 310, Facilities: []string{"Toronto", "Buffalo"}, Status: "active", Website: "https://northstarvials.com"},
		{ID: "SUP004", Name: "Lumen Closures GmbH", Category: "Primary Packaging", Region: "Europe", EstablishedYear: 2019, EmployeeCount: 85, Facilities: []string{"Dresden"}, Status: "onboarding", Website: "https://lumen-closures.de"},
		{ID: "SUP005", Name: "European Containers Co", Category: "Secondary Packaging", Region: "Europe", EstablishedYear: 1987, EmployeeCount: 2100, Facilities: []string{"Rotterdam", "Antwerp", "Hamburg"}, Status: "active", Website: "https://www.eurocontainers.nl", ComplianceTrend: domain.TrendUp},
		{ID: "SUP008", Name: "ABC Pharma Supply", Category: "Raw Materials", Region: "North America", EstablishedYear: 2014, EmployeeCount: 150, Facilities: []string{"Newark"}, Status: "under_review", Website: "https://abcpharmasupply.com", RegulatoryHistoryFlag: true, ComplianceTrend: domain.TrendDown, RiskTrend: domain.RiskDeteriorating},
		{ID: "SUP010", Name: "Helvetia API Works", Category: "APIs", Region: "Europe", EstablishedYear: 1975, EmployeeCount: 900, Facilities: []string{"Visp", "Monthey"}, Status: "active", Website: "https://helvetia-api.ch"},
		{ID: "SUP012", Name: "Pacific Synthesis Co", Category: "APIs", Region: "Asia Pacific", EstablishedYear: 2017, EmployeeCount: 420, Facilities: []string{"Hyderabad"}, Status: "onboarding", Website: "https://pacific-synthesis.co.in", RiskTrend: domain.RiskDeteriorating},
		{ID: "SUP013", Name: "Precision Process Equipment", Category: "Equipment", Region: "Europe", EstablishedYear: 2001, EmployeeCount: 530, Facilities: []string{"Milan", "Bologna"}, Status: "active", Website: "https://ppe-machines.it"},
		{ID: "SUP018", Name: "Nordic Analytical Labs", Category: "Testing Services", Region: "Europe", EstablishedYear: 2009, EmployeeCount: 180, Facilities: []string{"Uppsala"}, Status: "active", Website: "https://nordic-labs.se"},
		{ID: "SUP020", Name: "ColdChain Logistics BV", Category: "Logistics", Region: "Europe", EstablishedYear: 2011, EmployeeCount: 760, Facilities: []string{"Venlo", "Eindhoven", "Liege"}, Status: "active", Website: "https://coldchain-logistics.nl", RiskTrend: domain.RiskImproving},
	}
}

func item(id, name string, t domain.RequirementType, mandatory bool, desc string, validity, notice int, body string, status domain.RequirementStatus, expiry, verified string) domain.RequirementItem {
	return domain.RequirementItem{
		ID:             id,
		Name:           name,
		Type:           t,
		Mandatory:      mandatory,
		Description:    desc,
		ValidityPeriod: validity,
		RenewalNotice:  notice,
		RegulatoryBody: body,
		CurrentStatus:  status,
		ExpiryDate:     dayPtr(expiry),
		LastVerified:   dayPtr(verified),
	}
}

const (
	cert = domain.RequirementCertification
	doc  = domain.RequirementDocumentation
)

// SeedRequirements is the requirement checklist mapping for the seeded suppliers.
func SeedRequirements() []domain.ComplianceRequirement {
	return []domain.ComplianceRequirement{
		{
			ID: "req-SUP001", SupplierID: "SUP001", Category: "Primary Packaging", Region: "Europe", LastUpdated: day("2024-01-15"),
			Requirements: []domain.RequirementItem{
				item("req-SUP001-1", "EU GMP Certification", cert, true, "Good Manufacturing Practice certification for pharmaceutical packaging", 36, 90, "EMA", domain.StatusValid, "2025-06-15", "2024-01-15"),
				item("req-SUP001-2", "ISO 15378 Certification", cert, true, "Primary packaging materials for medicinal products", 36, 90, "ISO", domain.StatusValid, "2025-09-30", "2024-01-10"),
				item("req-SUP001-3", "REACH Compliance", doc, true, "Registration, Evaluation, Authorisation and Restriction of Chemicals", 12, 60, "ECHA", domain.StatusValid, "2024-12-31", "2024-01-05"),
				item("req-SUP001-4", "USP <661> Compliance", doc, true, "Plastic materials and components for pharmaceutical use", 24, 60, "USP", domain.StatusValid, "2025-01-15", "2024-01-01"),
			},
		},
		{
			ID: "req-SUP002", SupplierID: "SUP002", Category: "Primary Packaging", Region: "Europe", LastUpdated: day("2024-01-20"),
			Requirements: []domain.RequirementItem{
				item("req-SUP002-1", "EU GMP Certification", cert, true, "Good Manufacturing Practice certification for pharmaceutical packaging", 36, 90, "EMA", domain.StatusExpiring, "2024-03-15", "2023-12-01"),
				item("req-SUP002-2", "ISO 15378 Certification", cert, true, "Primary packaging materials for medicinal products", 36, 90, "ISO", domain.StatusValid, "2025-08-20", "2024-01-05"),
				item("req-SUP002-3", "MHRA Registration", cert, true, "UK Medicines and Healthcare products Regulatory Agency registration", 24, 60, "MHRA", domain.StatusValid, "2025-01-20", "2024-01-01"),
			},
		},
		{
			ID: "req-SUP003", SupplierID: "SUP003", Category: "Primary Packaging", Region: "North America", LastUpdated: day("2024-01-10"),
			Requirements: []domain.RequirementItem{
				item("req-SUP003-1", "FDA Registration", cert, true, "FDA facility registration for pharmaceutical packaging", 24, 90, "FDA", domain.StatusValid, "2025-09-10", "2024-01-10"),
				item("req-SUP003-2", "ISO 15378 Certification", cert, true, "Primary packaging materials for medicinal products", 36, 90, "ISO", domain.StatusValid, "2025-12-01", "2024-01-08"),
				item("req-SUP003-3", "Health Canada License", cert, true, "Health Canada medical device license", 36, 90, "Health Canada", domain.StatusValid, "2026-06-15", "2024-01-05"),
			},
		},
		{
			ID: "req-SUP010", SupplierID: "SUP010", Category: "APIs", Region: "Europe", LastUpdated: day("2024-01-15"),
			Requirements: []domain.RequirementItem{
				item("req-SUP010-1", "EU GMP Certification", cert, true, "Good Manufacturing Practice for Active Pharmaceutical Ingredients", 36, 120, "EMA", domain.StatusValid, "2025-01-15", "2024-01-01"),
				item("req-SUP010-2", "CEP Certificate", cert, true, "Certificate of Suitability to the European Pharmacopoeia", 60, 180, "EDQM", domain.StatusValid, "2026-01-15", "2024-01-01"),
				item("req-SUP010-3", "REACH Registration", doc, true, "REACH registration for chemical substances", 120, 180, "ECHA", domain.StatusValid, "2028-01-15", "2024-01-01"),
			},
		},
		{
			ID: "req-SUP008", SupplierID: "SUP008", Category: "Raw Materials", Region: "North America", LastUpdated: day("2024-01-10"),
			Requirements: []domain.RequirementItem{
				item("req-SUP008-1", "FDA Registration", cert, true, "FDA facility registration for raw material manufacturing", 24, 90, "FDA", domain.StatusExpiring, "2024-02-15", "2023-12-15"),
				item("req-SUP008-2", "ISO 9001 Certification", cert, true, "Quality management systems certification", 36, 90, "ISO", domain.StatusValid, "2025-06-10", "2024-01-01"),
				item("req-SUP008-3", "TSCA Compliance", doc, true, "Toxic Substances Control Act compliance", 12, 60, "EPA", domain.StatusPending, "2024-06-10", "2023-12-01"),
			},
		},
		{
			ID: "req-SUP005", SupplierID: "SUP005", Category: "Secondary Packaging", Region: "Europe", LastUpdated: day("2024-01-25"),
			Requirements: []domain.RequirementItem{
				item("req-SUP005-1", "EU Packaging Directive Compliance", doc, true, "Compliance with EU Directive 94/62/EC on packaging and packaging waste", 12, 60, "EU Commission", domain.StatusValid, "2024-12-31", "2024-01-01"),
				item("req-SUP005-2", "FSC Certification", cert, false, "Forest Stewardship Council certification for sustainable packaging", 60, 90, "FSC", domain.StatusValid, "2026-11-25", "2024-01-01"),
				item("req-SUP005-3", "ISO 14001 Certification", cert, false, "Environmental management systems certification", 36, 90, "ISO", domain.StatusValid, "2025-11-25", "2024-01-01"),
			},
		},
		{
			ID: "req-SUP013", SupplierID: "SUP013", Category: "Equipment", Region: "Europe", LastUpdated: day("2024-01-30"),
			Requirements: []domain.RequirementItem{
				item("req-SUP013-1", "CE Marking", cert, true, "CE marking for medical device equipment", 60, 120, "EU Notified Body", domain.StatusValid, "2026-05-30", "2024-01-01"),
				item("req-SUP013-2", "ISO 13485 Certification", cert, true, "Medical devices quality management systems", 36, 90, "ISO", domain.StatusValid, "2025-05-30", "2024-01-01"),
				item("req-SUP013-3", "IQ/OQ/PQ Documentation", doc, true, "Installation, Operational, and Performance Qualification protocols", 24, 60, "Internal QA", domain.StatusValid, "2025-05-30", "2024-01-01"),
			},
		},
		{
			ID: "req-SUP018", SupplierID: "SUP018", Category: "Testing Services", Region: "Europe", LastUpdated: day("2024-02-28"),
			Requirements: []domain.RequirementItem{
				item("req-SUP018-1", "ISO 17025 Accreditation", cert, true, "General requirements for the competence of testing and calibration laboratories", 48, 120, "National Accreditation Body", domain.StatusValid, "2026-02-28", "2024-01-01"),
				item("req-SUP018-2", "GLP Certification", cert, true, "Good Laboratory Practice certification", 36, 90, "National GLP Authority", domain.StatusValid, "2025-02-28", "2024-01-01"),
				item("req-SUP018-3", "OECD GLP Compliance", doc, true, "OECD Good Laboratory Practice compliance", 36, 90, "OECD", domain.StatusValid, "2025-02-28", "2024-01-01"),
			},
		},
		{
			ID: "req-SUP020", SupplierID: "SUP020", Category: "Logistics", Region: "Europe", LastUpdated: day("2024-01-15"),
			Requirements: []domain.RequirementItem{
				item("req-SUP020-1", "GDP Certification", cert, true, "Good Distribution Practice for pharmaceutical products", 36, 90, "National Medicines Agency", domain.StatusValid, "2025-06-15", "2024-01-01"),
				item("req-SUP020-2", "ISO 9001 Certification", cert, true, "Quality management systems certification", 36, 90, "ISO", domain.StatusValid, "2025-06-15", "2024-01-01"),
				item("req-SUP020-3", "Temperature Mapping Validation", doc, true, "Cold chain temperature mapping and validation studies", 12, 60, "Internal QA", domain.StatusValid, "2024-06-15", "2024-01-01"),
			},
		},
	}
}

// SeedAuditEvents is the initial audit trail, newest first.
func SeedAuditEvents() []domain.AuditEvent {
	return []domain.AuditEvent{
		{ID: "5b1d7f5e-7c1a-4c3e-9d1e-0f6a2b9c1a01", Timestamp: time.Date(2024, 1, 25, 10, 30, 0, 0, time.UTC), Type: domain.EventComplianceCheck, Description: "Automated compliance check completed for MedTech Solutions", SupplierID: "SUP001", SupplierName: "MedTech Solutions", Severity: domain.SeverityLow, Status: domain.EventCompleted},
		{ID: "5b1d7f5e-7c1a-4c3e-9d1e-0f6a2b9c1a02", Timestamp: time.Date(2024, 1, 25, 9, 15, 0, 0, time.UTC), Type: domain.EventAlert, Description: "Warning: ABC Pharma Supply compliance score dropped below threshold", SupplierID: "SUP008", SupplierName: "ABC Pharma Supply", Severity: domain.SeverityMedium, Status: domain.EventPending},
		{ID: "5b1d7f5e-7c1a-4c3e-9d1e-0f6a2b9c1a03", Timestamp: time.Date(2024, 1, 24, 16, 45, 0, 0, time.UTC), Type: domain.EventDocumentUpload, Description: "New certification documents uploaded by GlobalPack Ltd", SupplierID: "SUP002", SupplierName: "GlobalPack Ltd", Severity: domain.SeverityLow, Status: domain.EventCompleted},
	}
}
