package requirements

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/ports"
)

const DefaultExpiryWindowDays = 90

type Expiring struct {
	SupplierID      string    `json:"supplierId"`
	RequirementID   string    `json:"requirementId"`
	RequirementName string    `json:"requirementName"`
	ExpiryDate      time.Time `json:"expiryDate"`
	DaysUntilExpiry int       `json:"daysUntilExpiry"`
	Mandatory       bool      `json:"mandatory"`
	RegulatoryBody  string    `json:"regulatoryBody,omitempty"`
}

type Statistics struct {
	Total          int `json:"total"`
	Valid          int `json:"valid"`
	Expiring       int `json:"expiring"`
	Expired        int `json:"expired"`
	Pending        int `json:"pending"`
	ComplianceRate int `json:"complianceRate"`
}

type Service struct {
	repo  ports.ComplianceRequirementRepository
	clock clockwork.Clock
}

func New(repo ports.ComplianceRequirementRepository, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{repo: repo, clock: clock}
}

// Filter returns the records matching category and region. Empty filters
// match everything.
func (s *Service) Filter(ctx context.Context, category, region string) ([]domain.ComplianceRequirement, error) {
	all, err := s.repo.ListRequirements(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.ComplianceRequirement{}
	for _, r := range all {
		if category != "" && r.Category != category {
			continue
		}
		if region != "" && r.Region != region {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Expiring lists items whose expiry falls on or before now+daysAhead, already
// expired ones included, soonest first.
func (s *Service) Expiring(ctx context.Context, daysAhead int) ([]Expiring, error) {
	if daysAhead <= 0 {
		daysAhead = DefaultExpiryWindowDays
	}
	all, err := s.repo.ListRequirements(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	cutoff := now.AddDate(0, 0, daysAhead)

	out := []Expiring{}
	for _, r := range all {
		for _, it := range r.Requirements {
			if it.ExpiryDate == nil || it.ExpiryDate.After(cutoff) {
				continue
			}
			out = append(out, Expiring{
				SupplierID:      r.SupplierID,
				RequirementID:   it.ID,
				RequirementName: it.Name,
				ExpiryDate:      *it.ExpiryDate,
				DaysUntilExpiry: int(math.Ceil(it.ExpiryDate.Sub(now).Hours() / 24)),
				Mandatory:       it.Mandatory,
				RegulatoryBody:  it.RegulatoryBody,
			})
		}
	}
	slices.SortStableFunc(out, func(a, b Expiring) int { return a.DaysUntilExpiry - b.DaysUntilExpiry })
	return out, nil
}

func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	all, err := s.repo.ListRequirements(ctx)
	if err != nil {
		return Statistics{}, err
	}
	var st Statistics
	for _, r := range all {
		for _, it := range r.Requirements {
			st.Total++
			switch it.CurrentStatus {
			case domain.StatusValid:
				st.Valid++
			case domain.StatusExpiring:
				st.Expiring++
			case domain.StatusExpired:
				st.Expired++
			case domain.StatusPending:
				st.Pending++
			}
		}
	}
	if st.Total > 0 {
		st.ComplianceRate = (200*st.Valid + st.Total) / (2 * st.Total)
	}
	return st, nil
}
