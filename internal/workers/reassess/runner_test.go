package reassess

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/C2IHub/proCURE2/internal/adapters/memory"
	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/scoring"
	"github.com/C2IHub/proCURE2/internal/services/audit"
)

var now = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func setup() (*memory.Store, *SnapshotProcessor, *audit.Service) {
	store := memory.NewSeeded()
	clock := clockwork.NewFakeClockAt(now)
	engine := scoring.New(store, store, scoring.WithClock(clock))
	auditSvc := audit.New(store, clock)
	return store, NewSnapshotProcessor(engine, store, auditSvc), auditSvc
}

func TestProcessInline(t *testing.T) {
	store, proc, auditSvc := setup()
	ctx := context.Background()

	n, err := ProcessInline(ctx, store, proc)
	require.NoError(t, err)
	assert.Equal(t, len(memory.SeedSuppliers()), n)

	snap, found, err := store.LatestSnapshot(ctx, "SUP001")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.RatingPreferred, snap.Rating)
	assert.Equal(t, now, snap.CalculatedAt)

	page, err := auditSvc.List(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, len(memory.SeedAuditEvents())+n, page.Total)
	assert.Equal(t, domain.EventScoreUpdate, page.Events[0].Type)
}

type failOn struct {
	Processor
	id string
}

func (f failOn) Process(ctx context.Context, id string) error {
	if id == f.id {
		return errors.New("scoring backend down")
	}
	return f.Processor.Process(ctx, id)
}

func TestProcessInlineCollectsErrors(t *testing.T) {
	store, proc, _ := setup()
	n, err := ProcessInline(context.Background(), store, failOn{Processor: proc, id: "SUP005"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supplier SUP005")
	assert.Equal(t, len(memory.SeedSuppliers())-1, n)
}

func TestEventForRatingChange(t *testing.T) {
	s := domain.Supplier{ID: "SUP008", Name: "ABC Pharma Supply", Rating: domain.RatingRestricted}

	ev := eventFor(s, nil)
	assert.Equal(t, domain.EventScoreUpdate, ev.Type)
	assert.Equal(t, domain.SeverityLow, ev.Severity)

	ev = eventFor(s, &domain.ScoreSnapshot{Rating: domain.RatingConditional})
	assert.Equal(t, domain.EventAlert, ev.Type)
	assert.Equal(t, domain.SeverityHigh, ev.Severity)
	assert.Equal(t, domain.EventPending, ev.Status)
	assert.Equal(t, "conditional", ev.Details["previousRating"])
	assert.Equal(t, "Rating for ABC Pharma Supply changed from conditional to restricted", ev.Description)

	up := domain.Supplier{ID: "SUP009", Rating: domain.RatingApproved}
	ev = eventFor(up, &domain.ScoreSnapshot{Rating: domain.RatingConditional})
	assert.Equal(t, domain.EventScoreUpdate, ev.Type)
	assert.Equal(t, domain.SeverityMedium, ev.Severity)
	assert.Contains(t, ev.Description, "SUP009")
}

func TestRunOnTicks(t *testing.T) {
	store, proc, _ := setup()
	clock := clockwork.NewFakeClockAt(now)
	ctx, cancel := context.WithCancel(context.Background())

	done := Run(ctx, store, proc, 3, time.Minute, clock, nil)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Minute)

	require.Eventually(t, func() bool {
		h, err := store.History(ctx, "SUP020", 10)
		return err == nil && len(h) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestRunDisabled(t *testing.T) {
	store, proc, _ := setup()
	done := Run(context.Background(), store, proc, 0, time.Minute, nil, nil)
	select {
	case <-done:
	default:
		t.Fatal("disabled runner should be done immediately")
	}
}

// slowSnapshots holds every LatestSnapshot call open briefly and tracks how
// many run at once.
type slowSnapshots struct {
	*memory.Store
	active, peak atomic.Int32
}

func (s *slowSnapshots) LatestSnapshot(ctx context.Context, id string) (domain.ScoreSnapshot, bool, error) {
	n := s.active.Add(1)
	defer s.active.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	return s.Store.LatestSnapshot(ctx, id)
}

func TestProcessSameSupplierNeverOverlaps(t *testing.T) {
	store := memory.NewSeeded()
	clock := clockwork.NewFakeClockAt(now)
	engine := scoring.New(store, store, scoring.WithClock(clock))
	snaps := &slowSnapshots{Store: store}
	proc := NewSnapshotProcessor(engine, snaps, audit.New(store, clock))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, proc.Process(context.Background(), "SUP001"))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), snaps.peak.Load())
	h, err := store.History(context.Background(), "SUP001", 100)
	require.NoError(t, err)
	assert.NotEmpty(t, h)
	assert.LessOrEqual(t, len(h), 8)
}
