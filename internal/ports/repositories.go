package ports

import (
	"context"

	"github.com/C2IHub/proCURE2/internal/domain"
)

// SupplierRepository is the read-only supplier master directory.
type SupplierRepository interface {
	Get(ctx context.Context, id string) (master domain.SupplierMaster, found bool, err error)
	List(ctx context.Context) ([]domain.SupplierMaster, error)
	// FindByDomain matches the registrable domain (eTLD+1) of the supplier website.
	FindByDomain(ctx context.Context, registrable string) (master domain.SupplierMaster, found bool, err error)
}

// ComplianceRequirementRepository is the per-supplier checklist directory.
type ComplianceRequirementRepository interface {
	FindBySupplierID(ctx context.Context, supplierID string) (req domain.ComplianceRequirement, found bool, err error)
	ListRequirements(ctx context.Context) ([]domain.ComplianceRequirement, error)
}

// AuditRepository stores the append-only audit trail, newest first on read.
type AuditRepository interface {
	Append(ctx context.Context, ev domain.AuditEvent) error
	ListEvents(ctx context.Context, offset, limit int) (events []domain.AuditEvent, total int, err error)
}

// SnapshotRepository keeps reassessment results per supplier.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snap domain.ScoreSnapshot) error
	LatestSnapshot(ctx context.Context, supplierID string) (snap domain.ScoreSnapshot, found bool, err error)
	History(ctx context.Context, supplierID string, limit int) ([]domain.ScoreSnapshot, error)
}
