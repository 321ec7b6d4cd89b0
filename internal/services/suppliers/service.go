package suppliers

import (
	"context"
	"errors"

	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/ports"
	"github.com/C2IHub/proCURE2/internal/webdomain"
)

// ErrNotFound is returned for ids that are not in the supplier directory.
// The scoring engine itself never fails for missing data; this boundary does.
var ErrNotFound = errors.New("supplier not found")

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

type Service struct {
	directory ports.SupplierRepository
	scorer    ports.Scorer
	snapshots ports.SnapshotRepository
}

func New(directory ports.SupplierRepository, scorer ports.Scorer, snapshots ports.SnapshotRepository) *Service {
	return &Service{directory: directory, scorer: scorer, snapshots: snapshots}
}

func (s *Service) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.scorer.BuildSuppliers(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Supplier, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return domain.Supplier{}, err
	}
	return s.scorer.BuildSupplier(ctx, id)
}

func (s *Service) Compliance(ctx context.Context, id string) (domain.ComplianceScore, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return domain.ComplianceScore{}, err
	}
	return s.scorer.CalculateComplianceScore(ctx, id)
}

func (s *Service) Risk(ctx context.Context, id string) (domain.RiskScore, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return domain.RiskScore{}, err
	}
	return s.scorer.CalculateRiskScore(ctx, id)
}

// History returns the latest reassessment snapshots, newest first.
func (s *Service) History(ctx context.Context, id string, limit int) ([]domain.ScoreSnapshot, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	return s.snapshots.History(ctx, id, limit)
}

// Lookup resolves a supplier from any URL on its website.
func (s *Service) Lookup(ctx context.Context, rawurl string) (domain.Supplier, error) {
	registrable, err := webdomain.Registrable(rawurl)
	if err != nil {
		return domain.Supplier{}, err
	}
	master, found, err := s.directory.FindByDomain(ctx, registrable)
	if err != nil {
		return domain.Supplier{}, err
	}
	if !found {
		return domain.Supplier{}, ErrNotFound
	}
	return s.scorer.BuildSupplier(ctx, master.ID)
}

func (s *Service) mustExist(ctx context.Context, id string) error {
	_, found, err := s.directory.Get(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
