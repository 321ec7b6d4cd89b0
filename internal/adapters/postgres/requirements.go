package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/C2IHub/proCURE2/internal/domain"
)

const itemColumns = `requirement_id, id, name, type, mandatory, description, validity_period,
	renewal_notice, regulatory_body, current_status, expiry_date, last_verified`

func scanItem(row pgx.Row) (string, domain.RequirementItem, error) {
	var reqID, typ, status string
	var it domain.RequirementItem
	err := row.Scan(&reqID, &it.ID, &it.Name, &typ, &it.Mandatory, &it.Description, &it.ValidityPeriod,
		&it.RenewalNotice, &it.RegulatoryBody, &status, &it.ExpiryDate, &it.LastVerified)
	it.Type = domain.RequirementType(typ)
	it.CurrentStatus = domain.RequirementStatus(status)
	return reqID, it, err
}

// ComplianceRequirementRepository
func (db *DB) FindBySupplierID(ctx context.Context, supplierID string) (domain.ComplianceRequirement, bool, error) {
	var r domain.ComplianceRequirement
	err := db.Pool.QueryRow(ctx, `
		SELECT id, supplier_id, category, region, COALESCE(last_updated, '0001-01-01'::date)
		FROM compliance_requirements WHERE supplier_id = $1
	`, supplierID).Scan(&r.ID, &r.SupplierID, &r.Category, &r.Region, &r.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return r, false, nil
	}
	if err != nil {
		return r, false, fmt.Errorf("find requirements for %s: %w", supplierID, err)
	}

	rows, err := db.Pool.Query(ctx, `SELECT `+itemColumns+` FROM requirement_items WHERE requirement_id = $1 ORDER BY position`, r.ID)
	if err != nil {
		return r, false, fmt.Errorf("requirement items for %s: %w", supplierID, err)
	}
	defer rows.Close()
	r.Requirements = []domain.RequirementItem{}
	for rows.Next() {
		_, it, err := scanItem(rows)
		if err != nil {
			return r, false, err
		}
		r.Requirements = append(r.Requirements, it)
	}
	if err := rows.Err(); err != nil {
		return r, false, err
	}
	return r, true, nil
}

func (db *DB) ListRequirements(ctx context.Context) ([]domain.ComplianceRequirement, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, supplier_id, category, region, COALESCE(last_updated, '0001-01-01'::date)
		FROM compliance_requirements ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	out := []domain.ComplianceRequirement{}
	index := map[string]int{}
	for rows.Next() {
		var r domain.ComplianceRequirement
		if err := rows.Scan(&r.ID, &r.SupplierID, &r.Category, &r.Region, &r.LastUpdated); err != nil {
			rows.Close()
			return nil, err
		}
		r.Requirements = []domain.RequirementItem{}
		index[r.ID] = len(out)
		out = append(out, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := db.Pool.Query(ctx, `SELECT `+itemColumns+` FROM requirement_items ORDER BY requirement_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list requirement items: %w", err)
	}
	defer items.Close()
	for items.Next() {
		reqID, it, err := scanItem(items)
		if err != nil {
			return nil, err
		}
		if i, ok := index[reqID]; ok {
			out[i].Requirements = append(out[i].Requirements, it)
		}
	}
	return out, items.Err()
}
