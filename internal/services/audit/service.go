package audit

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/ports"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrInvalidEvent = errors.New("audit event needs a type and description")

type Page struct {
	Events   []domain.AuditEvent
	Total    int
	Page     int
	PageSize int
	HasNext  bool
}

type Service struct {
	repo  ports.AuditRepository
	clock clockwork.Clock
}

func New(repo ports.AuditRepository, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{repo: repo, clock: clock}
}

var _ ports.AuditRecorder = (*Service)(nil)

// Record fills in id, timestamp, severity and status when unset and appends the event.
func (s *Service) Record(ctx context.Context, ev domain.AuditEvent) (domain.AuditEvent, error) {
	if ev.Type == "" || ev.Description == "" {
		return domain.AuditEvent{}, ErrInvalidEvent
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = s.clock.Now().UTC()
	}
	if ev.Severity == "" {
		ev.Severity = domain.SeverityLow
	}
	if ev.Status == "" {
		ev.Status = domain.EventCompleted
	}
	if err := s.repo.Append(ctx, ev); err != nil {
		return domain.AuditEvent{}, err
	}
	return ev, nil
}

// List pages the trail newest first. Out-of-range arguments are clamped.
func (s *Service) List(ctx context.Context, page, pageSize int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)
	page = min(page, math.MaxInt/pageSize)

	offset := (page - 1) * pageSize
	events, total, err := s.repo.ListEvents(ctx, offset, pageSize)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Events:   events,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasNext:  offset+len(events) < total,
	}, nil
}
