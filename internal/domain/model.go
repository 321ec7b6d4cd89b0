package domain

import "time"

// Core domain models used internally. API envelopes live in internal/api;
// these carry json tags because the dashboard consumes them as-is.

type SupplierMaster struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Category              string          `json:"category"`
	Region                string          `json:"region"`
	EstablishedYear       int             `json:"establishedYear"`
	EmployeeCount         int             `json:"employeeCount"`
	Facilities            []string        `json:"facilities"`
	Status                string          `json:"status"`
	Website               string          `json:"website,omitempty"`
	RegulatoryHistoryFlag bool            `json:"regulatoryHistoryFlag"`
	ComplianceTrend       ComplianceTrend `json:"complianceTrend,omitempty"`
	RiskTrend             RiskTrend       `json:"riskTrend,omitempty"`
}

type RequirementType string

const (
	RequirementCertification RequirementType = "certification"
	RequirementDocumentation RequirementType = "documentation"
)

type RequirementStatus string

const (
	StatusValid    RequirementStatus = "valid"
	StatusExpiring RequirementStatus = "expiring"
	StatusExpired  RequirementStatus = "expired"
	StatusPending  RequirementStatus = "pending"
)

type RequirementItem struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           RequirementType   `json:"type"`
	Mandatory      bool              `json:"mandatory"`
	Description    string            `json:"description,omitempty"`
	ValidityPeriod int               `json:"validityPeriod"` // months
	RenewalNotice  int               `json:"renewalNotice"`  // days
	RegulatoryBody string            `json:"regulatoryBody,omitempty"`
	CurrentStatus  RequirementStatus `json:"currentStatus"`
	ExpiryDate     *time.Time        `json:"expiryDate,omitempty"`
	LastVerified   *time.Time        `json:"lastVerified,omitempty"`
}

// ComplianceRequirement is the per-supplier checklist. One record per supplier.
type ComplianceRequirement struct {
	ID           string            `json:"id"`
	SupplierID   string            `json:"supplierId"`
	Category     string            `json:"category"`
	Region       string            `json:"region"`
	Requirements []RequirementItem `json:"requirements"`
	LastUpdated  time.Time         `json:"lastUpdated"`
}

type ComplianceStatus string

const (
	Compliant ComplianceStatus = "compliant"
	Warning   ComplianceStatus = "warning"
	Critical  ComplianceStatus = "critical"
)

type ComplianceTrend string

const (
	TrendUp     ComplianceTrend = "up"
	TrendDown   ComplianceTrend = "down"
	TrendStable ComplianceTrend = "stable"
)

type ComplianceScore struct {
	Overall           int              `json:"overall"`
	Certifications    int              `json:"certifications"`
	Audits            int              `json:"audits"`
	Documentation     int              `json:"documentation"`
	RegulatoryHistory int              `json:"regulatoryHistory"`
	Status            ComplianceStatus `json:"status"`
	Trend             ComplianceTrend  `json:"trend"`
	LastCalculated    time.Time        `json:"lastCalculated"`
	NextReview        time.Time        `json:"nextReview"`
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type RiskTrend string

const (
	RiskImproving     RiskTrend = "improving"
	RiskStable        RiskTrend = "stable"
	RiskDeteriorating RiskTrend = "deteriorating"
)

type RiskFactors struct {
	Financial    int `json:"financial"`
	Operational  int `json:"operational"`
	QualityTrend int `json:"qualityTrend"`
	SupplyChain  int `json:"supplyChain"`
	Regulatory   int `json:"regulatory"`
}

type RiskScore struct {
	Overall        int         `json:"overall"`
	Level          RiskLevel   `json:"level"`
	Factors        RiskFactors `json:"factors"`
	Probability    int         `json:"probability"`
	Trend          RiskTrend   `json:"trend"`
	LastCalculated time.Time   `json:"lastCalculated"`
	NextAssessment time.Time   `json:"nextAssessment"`
}

type SupplierRating string

const (
	RatingPreferred   SupplierRating = "preferred"
	RatingApproved    SupplierRating = "approved"
	RatingConditional SupplierRating = "conditional"
	RatingRestricted  SupplierRating = "restricted"
)

// Supplier is the aggregate view handed to the dashboard. Rebuilt on every read.
type Supplier struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Region          string          `json:"region"`
	Status          string          `json:"status"`
	EstablishedYear int             `json:"establishedYear,omitempty"`
	EmployeeCount   int             `json:"employeeCount,omitempty"`
	Facilities      []string        `json:"facilities,omitempty"`
	Website         string          `json:"website,omitempty"`
	Compliance      ComplianceScore `json:"compliance"`
	Risk            RiskScore       `json:"risk"`
	Rating          SupplierRating  `json:"rating"`
	Certifications  []string        `json:"certifications"`
}

type AuditEventType string

const (
	EventComplianceCheck AuditEventType = "compliance_check"
	EventRiskAssessment  AuditEventType = "risk_assessment"
	EventDocumentUpload  AuditEventType = "document_upload"
	EventScoreUpdate     AuditEventType = "score_update"
	EventAlert           AuditEventType = "alert"
	EventApproval        AuditEventType = "approval"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventCompleted EventStatus = "completed"
	EventFailed    EventStatus = "failed"
)

type AuditEvent struct {
	ID           string         `json:"id"`
	Timestamp    time.Time      `json:"timestamp"`
	Type         AuditEventType `json:"type"`
	Description  string         `json:"description"`
	SupplierID   string         `json:"supplierId,omitempty"`
	SupplierName string         `json:"supplierName,omitempty"`
	Severity     Severity       `json:"severity"`
	Status       EventStatus    `json:"status"`
	Details      map[string]any `json:"details,omitempty"`
}

// ScoreSnapshot records one reassessment of a supplier.
type ScoreSnapshot struct {
	SupplierID        string           `json:"supplierId"`
	ComplianceOverall int              `json:"complianceOverall"`
	ComplianceStatus  ComplianceStatus `json:"complianceStatus"`
	RiskOverall       int              `json:"riskOverall"`
	RiskLevel         RiskLevel        `json:"riskLevel"`
	Rating            SupplierRating   `json:"rating"`
	CalculatedAt      time.Time        `json:"calculatedAt"`
}
