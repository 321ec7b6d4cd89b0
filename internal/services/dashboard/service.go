// Package dashboard derives the command-center tiles from the supplier views
// and the audit trail. Nothing here is stored; every call recomputes.
package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/ports"
)

const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 50

	// upper bound on events read when counting pending reviews
	maxScannedEvents = 10000
	scanPage         = 100
)

type Metric struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Value    string `json:"value"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Category string `json:"category"`
}

// Distribution counts suppliers per compliance status. Percentages are of
// Total, rounded half up.
type Distribution struct {
	Compliant        int `json:"compliant"`
	Warning          int `json:"warning"`
	Critical         int `json:"critical"`
	Total            int `json:"total"`
	CompliantPercent int `json:"compliantPercent"`
	WarningPercent   int `json:"warningPercent"`
	CriticalPercent  int `json:"criticalPercent"`
}

type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // alert|approval|update|upload
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	SupplierID  string    `json:"supplierId,omitempty"`
	Priority    string    `json:"priority"` // low|medium|high
}

type Service struct {
	scorer ports.Scorer
	events ports.AuditRepository
}

func New(scorer ports.Scorer, events ports.AuditRepository) *Service {
	return &Service{scorer: scorer, events: events}
}

// Metrics returns the four headline tiles: suppliers in critical compliance,
// compliant suppliers, pending audit items and the mean compliance score.
func (s *Service) Metrics(ctx context.Context) ([]Metric, error) {
	views, err := s.scorer.BuildSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	dist := distribution(views)
	pending, err := s.pendingReviews(ctx)
	if err != nil {
		return nil, err
	}

	alertColor := "green"
	if dist.Critical > 0 {
		alertColor = "red"
	}
	return []Metric{
		{ID: "critical-alerts", Title: "Critical Alerts", Value: strconv.Itoa(dist.Critical), Icon: "AlertTriangle", Color: alertColor, Category: "compliance"},
		{ID: "compliant-suppliers", Title: "Compliant Suppliers", Value: strconv.Itoa(dist.Compliant), Icon: "CheckCircle", Color: "green", Category: "compliance"},
		{ID: "pending-reviews", Title: "Pending Reviews", Value: strconv.Itoa(pending), Icon: "Clock", Color: "yellow", Category: "compliance"},
		{ID: "avg-compliance", Title: "Avg. Compliance Score", Value: averagePercent(views), Icon: "TrendingUp", Color: "blue", Category: "compliance"},
	}, nil
}

func (s *Service) ComplianceDistribution(ctx context.Context) (Distribution, error) {
	views, err := s.scorer.BuildSuppliers(ctx)
	if err != nil {
		return Distribution{}, err
	}
	return distribution(views), nil
}

// RecentActivity maps the newest audit events onto activity-feed items.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]Activity, error) {
	if limit < 1 {
		limit = DefaultActivityLimit
	}
	limit = min(limit, MaxActivityLimit)
	events, _, err := s.events.ListEvents(ctx, 0, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Activity, 0, len(events))
	for _, ev := range events {
		out = append(out, activityFor(ev))
	}
	return out, nil
}

func (s *Service) pendingReviews(ctx context.Context) (int, error) {
	pending := 0
	for offset := 0; offset < maxScannedEvents; offset += scanPage {
		events, total, err := s.events.ListEvents(ctx, offset, scanPage)
		if err != nil {
			return 0, err
		}
		for _, ev := range events {
			if ev.Status == domain.EventPending {
				pending++
			}
		}
		if len(events) == 0 || offset+len(events) >= total {
			break
		}
	}
	return pending, nil
}

func distribution(views []domain.Supplier) Distribution {
	var d Distribution
	for _, v := range views {
		switch v.Compliance.Status {
		case domain.Compliant:
			d.Compliant++
		case domain.Warning:
			d.Warning++
		default:
			d.Critical++
		}
	}
	d.Total = len(views)
	if d.Total > 0 {
		d.CompliantPercent = percent(d.Compliant, d.Total)
		d.WarningPercent = percent(d.Warning, d.Total)
		d.CriticalPercent = percent(d.Critical, d.Total)
	}
	return d
}

func percent(n, total int) int { return (200*n + total) / (2 * total) }

// averagePercent renders the mean overall score with one decimal, e.g. "92.3%".
func averagePercent(views []domain.Supplier) string {
	if len(views) == 0 {
		return "0.0%"
	}
	sum := 0
	for _, v := range views {
		sum += v.Compliance.Overall
	}
	n := len(views)
	tenths := (20*sum + n) / (2 * n)
	return fmt.Sprintf("%d.%d%%", tenths/10, tenths%10)
}

func activityFor(ev domain.AuditEvent) Activity {
	a := Activity{
		ID:          ev.ID,
		Type:        "update",
		Description: ev.Description,
		Timestamp:   ev.Timestamp,
		SupplierID:  ev.SupplierID,
		Priority:    "low",
	}
	switch ev.Type {
	case domain.EventAlert:
		a.Type, a.Title = "alert", "Compliance Alert"
	case domain.EventApproval:
		a.Type, a.Title = "approval", "Approval Recorded"
	case domain.EventDocumentUpload:
		a.Type, a.Title = "upload", "Documents Uploaded"
	case domain.EventComplianceCheck:
		a.Title = "Compliance Check"
	case domain.EventRiskAssessment:
		a.Title = "Risk Assessment"
	default:
		a.Title = "Score Updated"
	}
	switch ev.Severity {
	case domain.SeverityHigh, domain.SeverityCritical:
		a.Priority = "high"
	case domain.SeverityMedium:
		a.Priority = "medium"
	}
	return a
}
