package reassess

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"

	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/logger"
	"github.com/C2IHub/proCURE2/internal/ports"
)

// Processor re-scores a single supplier.
type Processor interface {
	Process(ctx context.Context, supplierID string) error
}

// SnapshotProcessor records each reassessment as a snapshot plus an audit event.
// Calls for the same supplier never overlap: a call arriving while another is
// in flight shares its result, so the previous-snapshot read and the save stay
// paired.
type SnapshotProcessor struct {
	scorer    ports.Scorer
	snapshots ports.SnapshotRepository
	audit     ports.AuditRecorder
	inflight  singleflight.Group
}

// NewSnapshotProcessor wires a processor. audit may be nil.
func NewSnapshotProcessor(scorer ports.Scorer, snapshots ports.SnapshotRepository, audit ports.AuditRecorder) *SnapshotProcessor {
	return &SnapshotProcessor{scorer: scorer, snapshots: snapshots, audit: audit}
}

func (p *SnapshotProcessor) Process(ctx context.Context, supplierID string) error {
	_, err, _ := p.inflight.Do(supplierID, func() (any, error) {
		return nil, p.process(ctx, supplierID)
	})
	return err
}

func (p *SnapshotProcessor) process(ctx context.Context, supplierID string) error {
	s, err := p.scorer.BuildSupplier(ctx, supplierID)
	if err != nil {
		return err
	}
	prev, hadPrev, err := p.snapshots.LatestSnapshot(ctx, supplierID)
	if err != nil {
		return err
	}
	snap := domain.ScoreSnapshot{
		SupplierID:        supplierID,
		ComplianceOverall: s.Compliance.Overall,
		ComplianceStatus:  s.Compliance.Status,
		RiskOverall:       s.Risk.Overall,
		RiskLevel:         s.Risk.Level,
		Rating:            s.Rating,
		CalculatedAt:      s.Compliance.LastCalculated,
	}
	if err := p.snapshots.SaveSnapshot(ctx, snap); err != nil {
		return err
	}
	if p.audit == nil {
		return nil
	}
	var prevPtr *domain.ScoreSnapshot
	if hadPrev {
		prevPtr = &prev
	}
	_, err = p.audit.Record(ctx, eventFor(s, prevPtr))
	return err
}

func eventFor(s domain.Supplier, prev *domain.ScoreSnapshot) domain.AuditEvent {
	ev := domain.AuditEvent{
		Type:         domain.EventScoreUpdate,
		SupplierID:   s.ID,
		SupplierName: s.Name,
		Severity:     domain.SeverityLow,
		Status:       domain.EventCompleted,
		Description:  fmt.Sprintf("Reassessed %s: compliance %d (%s), risk %s, rating %s", label(s), s.Compliance.Overall, s.Compliance.Status, s.Risk.Level, s.Rating),
		Details: map[string]any{
			"complianceOverall": s.Compliance.Overall,
			"riskOverall":       s.Risk.Overall,
			"rating":            string(s.Rating),
		},
	}
	if prev == nil || prev.Rating == s.Rating {
		return ev
	}
	ev.Details["previousRating"] = string(prev.Rating)
	ev.Severity = domain.SeverityMedium
	ev.Description = fmt.Sprintf("Rating for %s changed from %s to %s", label(s), prev.Rating, s.Rating)
	if s.Rating == domain.RatingRestricted {
		ev.Type = domain.EventAlert
		ev.Severity = domain.SeverityHigh
		ev.Status = domain.EventPending
	}
	return ev
}

func label(s domain.Supplier) string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Run starts a dispatcher that lists suppliers on every tick and N workers that
// process them. The returned channel closes once every worker has exited.
func Run(ctx context.Context, directory ports.SupplierRepository, processor Processor, concurrency int, interval time.Duration, clock clockwork.Clock, log *logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if concurrency < 1 || interval <= 0 {
		close(done)
		return done
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	idsCh := make(chan string, concurrency)

	// dispatcher loop
	go func() {
		ticker := clock.NewTicker(interval)
		defer ticker.Stop()
		defer close(idsCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				masters, err := directory.List(ctx)
				if err != nil {
					log.Error("reassess list error", "error", err)
					continue
				}
				for _, m := range masters {
					select {
					case idsCh <- m.ID:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	// workers
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for id := range idsCh {
				if err := processor.Process(ctx, id); err != nil {
					log.Warn("reassess failed", "worker", idx, "supplier", id, "error", err)
				}
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}

// ProcessInline reassesses every supplier synchronously with the same
// processor the workers use. It keeps going past failures and returns how many
// suppliers succeeded along with the combined errors.
func ProcessInline(ctx context.Context, directory ports.SupplierRepository, processor Processor) (int, error) {
	masters, err := directory.List(ctx)
	if err != nil {
		return 0, err
	}
	var errs error
	ok := 0
	for _, m := range masters {
		if err := ctx.Err(); err != nil {
			return ok, multierr.Append(errs, err)
		}
		if err := processor.Process(ctx, m.ID); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("supplier %s: %w", m.ID, err))
			continue
		}
		ok++
	}
	return ok, errs
}
