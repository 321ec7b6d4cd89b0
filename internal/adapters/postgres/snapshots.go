package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/C2IHub/proCURE2/internal/domain"
)

const snapshotColumns = `supplier_id, compliance_overall, compliance_status, risk_overall, risk_level, rating, calculated_at`

func scanSnapshot(row pgx.Row) (domain.ScoreSnapshot, error) {
	var s domain.ScoreSnapshot
	var status, level, rating string
	err := row.Scan(&s.SupplierID, &s.ComplianceOverall, &status, &s.RiskOverall, &level, &rating, &s.CalculatedAt)
	s.ComplianceStatus = domain.ComplianceStatus(status)
	s.RiskLevel = domain.RiskLevel(level)
	s.Rating = domain.SupplierRating(rating)
	return s, err
}

// SnapshotRepository
func (db *DB) SaveSnapshot(ctx context.Context, s domain.ScoreSnapshot) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO score_snapshots (`+snapshotColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.SupplierID, s.ComplianceOverall, string(s.ComplianceStatus), s.RiskOverall, string(s.RiskLevel),
		string(s.Rating), s.CalculatedAt)
	if err != nil {
		return fmt.Errorf("save snapshot for %s: %w", s.SupplierID, err)
	}
	return nil
}

func (db *DB) LatestSnapshot(ctx context.Context, supplierID string) (domain.ScoreSnapshot, bool, error) {
	s, err := scanSnapshot(db.Pool.QueryRow(ctx, `
		SELECT `+snapshotColumns+` FROM score_snapshots
		WHERE supplier_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, supplierID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ScoreSnapshot{}, false, nil
	}
	if err != nil {
		return domain.ScoreSnapshot{}, false, fmt.Errorf("latest snapshot for %s: %w", supplierID, err)
	}
	return s, true, nil
}

func (db *DB) History(ctx context.Context, supplierID string, limit int) ([]domain.ScoreSnapshot, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+snapshotColumns+` FROM score_snapshots
		WHERE supplier_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, supplierID, limit)
	if err != nil {
		return nil, fmt.Errorf("snapshot history for %s: %w", supplierID, err)
	}
	defer rows.Close()
	out := []domain.ScoreSnapshot{}
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
