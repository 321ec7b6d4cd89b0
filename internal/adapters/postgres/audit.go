package postgres

import (
	"context"
	"fmt"

	"github.com/C2IHub/proCURE2/internal/domain"
)

// AuditRepository
func (db *DB) Append(ctx context.Context, ev domain.AuditEvent) error {
	details := ev.Details
	if details == nil {
		details = map[string]any{}
	}
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO audit_events (id, occurred_at, type, description, supplier_id, supplier_name, severity, status, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, ev.ID, ev.Timestamp, string(ev.Type), ev.Description, ev.SupplierID, ev.SupplierName,
		string(ev.Severity), string(ev.Status), details)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (db *DB) ListEvents(ctx context.Context, offset, limit int) ([]domain.AuditEvent, int, error) {
	offset = max(offset, 0)
	var total int
	if err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM audit_events`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit events: %w", err)
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT id, occurred_at, type, description, supplier_id, supplier_name, severity, status, details
		FROM audit_events
		ORDER BY seq DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()
	out := []domain.AuditEvent{}
	for rows.Next() {
		var ev domain.AuditEvent
		var typ, sev, status string
		if err := rows.Scan(&ev.ID, &ev.Timestamp, &typ, &ev.Description, &ev.SupplierID, &ev.SupplierName,
			&sev, &status, &ev.Details); err != nil {
			return nil, 0, err
		}
		ev.Type = domain.AuditEventType(typ)
		ev.Severity = domain.Severity(sev)
		ev.Status = domain.EventStatus(status)
		if len(ev.Details) == 0 {
			ev.Details = nil
		}
		out = append(out, ev)
	}
	return out, total, rows.Err()
}
