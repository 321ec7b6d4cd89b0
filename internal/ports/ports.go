package ports

import (
	"context"

	"github.com/C2IHub/proCURE2/internal/domain"
)

// Scorer is the scoring engine surface consumed by services and workers.
type Scorer interface {
	CalculateComplianceScore(ctx context.Context, supplierID string) (domain.ComplianceScore, error)
	CalculateRiskScore(ctx context.Context, supplierID string) (domain.RiskScore, error)
	BuildSupplier(ctx context.Context, supplierID string) (domain.Supplier, error)
	BuildSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// AuditRecorder appends events to the audit trail.
type AuditRecorder interface {
	Record(ctx context.Context, ev domain.AuditEvent) (domain.AuditEvent, error)
}
