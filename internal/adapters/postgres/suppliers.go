package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/C2IHub/proCURE2/internal/domain"
)

const supplierColumns = `id, name, category, region, established_year, employee_count, facilities,
	status, website, regulatory_history_flag, compliance_trend, risk_trend`

func scanSupplier(row pgx.Row) (domain.SupplierMaster, error) {
	var m domain.SupplierMaster
	var compTrend, riskTrend string
	err := row.Scan(&m.ID, &m.Name, &m.Category, &m.Region, &m.EstablishedYear, &m.EmployeeCount,
		&m.Facilities, &m.Status, &m.Website, &m.RegulatoryHistoryFlag, &compTrend, &riskTrend)
	m.ComplianceTrend = domain.ComplianceTrend(compTrend)
	m.RiskTrend = domain.RiskTrend(riskTrend)
	return m, err
}

// SupplierRepository
func (db *DB) Get(ctx context.Context, id string) (domain.SupplierMaster, bool, error) {
	m, err := scanSupplier(db.Pool.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SupplierMaster{}, false, nil
	}
	if err != nil {
		return domain.SupplierMaster{}, false, fmt.Errorf("get supplier %s: %w", id, err)
	}
	return m, true, nil
}

func (db *DB) List(ctx context.Context) ([]domain.SupplierMaster, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	out := []domain.SupplierMaster{}
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (db *DB) FindByDomain(ctx context.Context, registrable string) (domain.SupplierMaster, bool, error) {
	m, err := scanSupplier(db.Pool.QueryRow(ctx, `
		SELECT `+supplierColumns+` FROM suppliers
		WHERE registrable_domain = $1
		ORDER BY position
		LIMIT 1
	`, strings.ToLower(registrable)))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SupplierMaster{}, false, nil
	}
	if err != nil {
		return domain.SupplierMaster{}, false, fmt.Errorf("find supplier by domain %s: %w", registrable, err)
	}
	return m, true, nil
}
