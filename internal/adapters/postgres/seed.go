package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/C2IHub/proCURE2/internal/domain"
	"github.com/C2IHub/proCURE2/internal/webdomain"
)

// Seed loads the directories and the audit trail when the supplier table is
// empty. It reports whether anything was written. Events are given newest first.
func (db *DB) Seed(ctx context.Context, suppliers []domain.SupplierMaster, requirements []domain.ComplianceRequirement, events []domain.AuditEvent) (seeded bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil || !seeded {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var n int
	if err = tx.QueryRow(ctx, `SELECT count(*) FROM suppliers`).Scan(&n); err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	batch := &pgx.Batch{}
	for _, m := range suppliers {
		var reg *string
		if r, rerr := webdomain.Registrable(m.Website); rerr == nil {
			reg = &r
		}
		facilities := m.Facilities
		if facilities == nil {
			facilities = []string{}
		}
		batch.Queue(`
			INSERT INTO suppliers (id, name, category, region, established_year, employee_count, facilities,
				status, website, registrable_domain, regulatory_history_flag, compliance_trend, risk_trend)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO NOTHING
		`, m.ID, m.Name, m.Category, m.Region, m.EstablishedYear, m.EmployeeCount, facilities,
			m.Status, m.Website, reg, m.RegulatoryHistoryFlag, string(m.ComplianceTrend), string(m.RiskTrend))
	}
	for _, r := range requirements {
		batch.Queue(`
			INSERT INTO compliance_requirements (id, supplier_id, category, region, last_updated)
			VALUES ($1, $2, $3, $4, $5)
		`, r.ID, r.SupplierID, r.Category, r.Region, r.LastUpdated)
		for pos, it := range r.Requirements {
			batch.Queue(`
				INSERT INTO requirement_items (id, requirement_id, position, name, type, mandatory, description,
					validity_period, renewal_notice, regulatory_body, current_status, expiry_date, last_verified)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			`, it.ID, r.ID, pos, it.Name, string(it.Type), it.Mandatory, it.Description,
				it.ValidityPeriod, it.RenewalNotice, it.RegulatoryBody, string(it.CurrentStatus), it.ExpiryDate, it.LastVerified)
		}
	}
	// seq is assigned in insert order, so oldest goes in first
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		details := ev.Details
		if details == nil {
			details = map[string]any{}
		}
		batch.Queue(`
			INSERT INTO audit_events (id, occurred_at, type, description, supplier_id, supplier_name, severity, status, details)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, ev.ID, ev.Timestamp, string(ev.Type), ev.Description, ev.SupplierID, ev.SupplierName,
			string(ev.Severity), string(ev.Status), details)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	seeded = true
	return seeded, nil
}
