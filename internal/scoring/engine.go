// Package scoring derives compliance scores, risk scores and supplier ratings
// from the supplier master directory and requirement checklists.
//
// The engine holds no state between calls. Randomness and wall-clock reads go
// through an injected Jitter and clockwork.Clock, so a seeded jitter source
// and a fake clock make every result reproducible.
package scoring

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/ports"
)

type Engine struct {
	suppliers    ports.SupplierRepository
	requirements ports.ComplianceRequirementRepository
	audits       AuditScoreProvider
	jitter       Jitter
	clock        clockwork.Clock
	fallback     FallbackPolicy
}

type Option func(*Engine)

func WithClock(c clockwork.Clock) Option { return func(e *Engine) { e.clock = c } }

// WithJitter sets the perturbation source for risk factors and, unless
// WithAuditProvider is also given, for the heuristic audit provider.
func WithJitter(j Jitter) Option { return func(e *Engine) { e.jitter = j } }

func WithAuditProvider(p AuditScoreProvider) Option { return func(e *Engine) { e.audits = p } }

func WithFallback(p FallbackPolicy) Option { return func(e *Engine) { e.fallback = p } }

func New(suppliers ports.SupplierRepository, requirements ports.ComplianceRequirementRepository, opts ...Option) *Engine {
	e := &Engine{
		suppliers:    suppliers,
		requirements: requirements,
		jitter:       NoJitter{},
		clock:        clockwork.NewRealClock(),
		fallback:     DefaultFallbackPolicy(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.audits == nil {
		e.audits = HeuristicAuditProvider{Jitter: e.jitter, Clock: e.clock}
	}
	return e
}

var _ ports.Scorer = (*Engine)(nil)

// CalculateComplianceScore never fails for missing data; errors come only
// from the repositories.
func (e *Engine) CalculateComplianceScore(ctx context.Context, supplierID string) (domain.ComplianceScore, error) {
	master, found, err := e.suppliers.Get(ctx, supplierID)
	if err != nil {
		return domain.ComplianceScore{}, err
	}
	var mp *domain.SupplierMaster
	if found {
		mp = &master
	}
	score, _, err := e.compliance(ctx, supplierID, mp)
	return score, err
}

func (e *Engine) compliance(ctx context.Context, supplierID string, master *domain.SupplierMaster) (domain.ComplianceScore, []string, error) {
	req, found, err := e.requirements.FindBySupplierID(ctx, supplierID)
	if err != nil {
		return domain.ComplianceScore{}, nil, err
	}
	now := e.clock.Now()
	if !found {
		return e.fallback.compliance(now), e.fallback.certifications(), nil
	}
	trend := domain.TrendStable
	if master != nil {
		trend = ComplianceTrendOf(*master)
	}
	score := ComplianceFromRequirement(req, e.audits.Signals(master), trend, now)
	return score, CertificationNames(req), nil
}

// DefaultRiskScore is the neutral score reported for unknown suppliers.
func (e *Engine) DefaultRiskScore() domain.RiskScore { return DefaultRiskScore(e.clock.Now()) }

func (e *Engine) CalculateRiskScore(ctx context.Context, supplierID string) (domain.RiskScore, error) {
	master, found, err := e.suppliers.Get(ctx, supplierID)
	if err != nil {
		return domain.RiskScore{}, err
	}
	if !found {
		return DefaultRiskScore(e.clock.Now()), nil
	}
	return RiskFromMaster(master, e.jitter, e.clock.Now()), nil
}

// BuildSupplier assembles the dashboard view for one supplier. An id missing
// from the directory still yields a view built from the fallbacks.
func (e *Engine) BuildSupplier(ctx context.Context, supplierID string) (domain.Supplier, error) {
	master, found, err := e.suppliers.Get(ctx, supplierID)
	if err != nil {
		return domain.Supplier{}, err
	}
	if !found {
		return e.build(ctx, supplierID, nil)
	}
	return e.build(ctx, supplierID, &master)
}

// BuildSuppliers builds every supplier in directory order.
func (e *Engine) BuildSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	masters, err := e.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Supplier, 0, len(masters))
	for i := range masters {
		s, err := e.build(ctx, masters[i].ID, &masters[i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (e *Engine) build(ctx context.Context, supplierID string, master *domain.SupplierMaster) (domain.Supplier, error) {
	compliance, certs, err := e.compliance(ctx, supplierID, master)
	if err != nil {
		return domain.Supplier{}, err
	}
	risk := DefaultRiskScore(e.clock.Now())
	if master != nil {
		risk = RiskFromMaster(*master, e.jitter, e.clock.Now())
	}
	return Assemble(supplierID, master, compliance, risk, certs), nil
}
