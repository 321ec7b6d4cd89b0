// Package memory holds the in-process data set. The supplier and requirement
// directories are read-only after construction; the audit trail and score
// snapshots accept writes.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/ports"
	"github.com/C2IHub/proCURE2/internal/webdomain"
)

type Store struct {
	suppliers    []domain.SupplierMaster
	byID         map[string]int
	byDomain     map[string]int
	requirements []domain.ComplianceRequirement
	reqBySupp    map[string]int

	mu        sync.RWMutex
	events    []domain.AuditEvent // oldest first
	snapshots map[string][]domain.ScoreSnapshot
}

var (
	_ ports.SupplierRepository              = (*Store)(nil)
	_ ports.ComplianceRequirementRepository = (*Store)(nil)
	_ ports.AuditRepository                 = (*Store)(nil)
	_ ports.SnapshotRepository              = (*Store)(nil)
)

// New builds a store over the given records. Later duplicates of an id are ignored.
func New(suppliers []domain.SupplierMaster, requirements []domain.ComplianceRequirement) *Store {
	s := &Store{
		byID:      make(map[string]int, len(suppliers)),
		byDomain:  make(map[string]int, len(suppliers)),
		reqBySupp: make(map[string]int, len(requirements)),
		snapshots: make(map[string][]domain.ScoreSnapshot),
	}
	for _, m := range suppliers {
		if _, dup := s.byID[m.ID]; dup {
			continue
		}
		s.byID[m.ID] = len(s.suppliers)
		if reg, err := webdomain.Registrable(m.Website); err == nil {
			if _, taken := s.byDomain[reg]; !taken {
				s.byDomain[reg] = len(s.suppliers)
			}
		}
		s.suppliers = append(s.suppliers, cloneMaster(m))
	}
	for _, r := range requirements {
		if _, dup := s.reqBySupp[r.SupplierID]; dup {
			continue
		}
		s.reqBySupp[r.SupplierID] = len(s.requirements)
		s.requirements = append(s.requirements, cloneRequirement(r))
	}
	return s
}

// NewSeeded returns a store loaded with the bundled data set and audit trail.
func NewSeeded() *Store {
	s := New(SeedSuppliers(), SeedRequirements())
	for _, ev := range slices.Backward(SeedAuditEvents()) {
		s.events = append(s.events, ev)
	}
	return s
}

func cloneMaster(m domain.SupplierMaster) domain.SupplierMaster {
	m.Facilities = slices.Clone(m.Facilities)
	return m
}

func cloneRequirement(r domain.ComplianceRequirement) domain.ComplianceRequirement {
	r.Requirements = slices.Clone(r.Requirements)
	return r
}

// SupplierRepository

func (s *Store) Get(_ context.Context, id string) (domain.SupplierMaster, bool, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.SupplierMaster{}, false, nil
	}
	return cloneMaster(s.suppliers[i]), true, nil
}

func (s *Store) List(_ context.Context) ([]domain.SupplierMaster, error) {
	out := make([]domain.SupplierMaster, len(s.suppliers))
	for i, m := range s.suppliers {
		out[i] = cloneMaster(m)
	}
	return out, nil
}

func (s *Store) FindByDomain(_ context.Context, registrable string) (domain.SupplierMaster, bool, error) {
	i, ok := s.byDomain[registrable]
	if !ok {
		return domain.SupplierMaster{}, false, nil
	}
	return cloneMaster(s.suppliers[i]), true, nil
}

// ComplianceRequirementRepository

func (s *Store) FindBySupplierID(_ context.Context, supplierID string) (domain.ComplianceRequirement, bool, error) {
	i, ok := s.reqBySupp[supplierID]
	if !ok {
		return domain.ComplianceRequirement{}, false, nil
	}
	return cloneRequirement(s.requirements[i]), true, nil
}

func (s *Store) ListRequirements(_ context.Context) ([]domain.ComplianceRequirement, error) {
	out := make([]domain.ComplianceRequirement, len(s.requirements))
	for i, r := range s.requirements {
		out[i] = cloneRequirement(r)
	}
	return out, nil
}

// AuditRepository

func (s *Store) Append(_ context.Context, ev domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *Store) ListEvents(_ context.Context, offset, limit int) ([]domain.AuditEvent, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := len(s.events)
	out := []domain.AuditEvent{}
	if offset < 0 || offset >= total {
		return out, total, nil
	}
	for i := total - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.events[i])
	}
	return out, total, nil
}

// SnapshotRepository

func (s *Store) SaveSnapshot(_ context.Context, snap domain.ScoreSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snap.SupplierID] = append(s.snapshots[snap.SupplierID], snap)
	return nil
}

func (s *Store) LatestSnapshot(_ context.Context, supplierID string) (domain.ScoreSnapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h := s.snapshots[supplierID]
	if len(h) == 0 {
		return domain.ScoreSnapshot{}, false, nil
	}
	return h[len(h)-1], true, nil
}

// History returns up to limit snapshots, newest first.
func (s *Store) History(_ context.Context, supplierID string, limit int) ([]domain.ScoreSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h := s.snapshots[supplierID]
	out := []domain.ScoreSnapshot{}
	for i := len(h) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, h[i])
	}
	return out, nil
}
