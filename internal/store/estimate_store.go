package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/engine"
)

// ErrNotFound is returned when a write targets an estimate that does not exist.
var ErrNotFound = errors.New("estimate not found")

// Estimate is one issued deposit retention estimate as kept in the ledger.
type Estimate struct {
	ID          string                `json:"id"`
	PropertyRef string                `json:"property_ref"`
	Report      engine.EstimateReport `json:"report"`
	CreatedAt   time.Time             `json:"created_at"`
}

// EstimateSummary is the ledger row without the full report.
type EstimateSummary struct {
	ID          string          `json:"id"`
	PropertyRef string          `json:"property_ref"`
	EntryDate   *time.Time      `json:"entry_date,omitempty"`
	ExitDate    time.Time       `json:"exit_date"`
	Currency    string          `json:"currency,omitempty"`
	Deposit     decimal.Decimal `json:"deposit"`
	Total       decimal.Decimal `json:"total"`
	Returnable  decimal.Decimal `json:"returnable"`
	CreatedAt   time.Time       `json:"created_at"`
}

type EstimateStore struct {
	db *sql.DB
}

func NewEstimateStore(db *sql.DB) *EstimateStore {
	return &EstimateStore{db: db}
}

func (s *EstimateStore) Create(ctx context.Context, id, propertyRef string, report engine.EstimateReport) (*Estimate, error) {
	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	var entryDate sql.NullTime
	if report.EntryDate != nil {
		entryDate = sql.NullTime{Time: report.EntryDate.UTC(), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO estimates (id, property_ref, entry_date, exit_date, currency, deposit, total, returnable, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, propertyRef, entryDate, report.ExitDate.UTC(), report.Currency,
		report.Deposit.String(), report.Total.String(), report.Returnable.String(), string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create estimate: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID returns nil, nil when no estimate has that id.
func (s *EstimateStore) GetByID(ctx context.Context, id string) (*Estimate, error) {
	est := &Estimate{}
	var body string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, property_ref, report, created_at FROM estimates WHERE id = ?
	`, id).Scan(&est.ID, &est.PropertyRef, &body, &est.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get estimate: %w", err)
	}

	if err := json.Unmarshal([]byte(body), &est.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report for estimate %s: %w", id, err)
	}
	return est, nil
}

// ListByProperty returns the ledger rows for a property, newest first.
func (s *EstimateStore) ListByProperty(ctx context.Context, propertyRef string) ([]*EstimateSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, property_ref, entry_date, exit_date, currency, deposit, total, returnable, created_at
		FROM estimates WHERE property_ref = ? ORDER BY rowid DESC
	`, propertyRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}
	defer rows.Close()

	var estimates []*EstimateSummary
	for rows.Next() {
		sum := &EstimateSummary{}
		var entryDate sql.NullTime
		if err := rows.Scan(&sum.ID, &sum.PropertyRef, &entryDate, &sum.ExitDate, &sum.Currency,
			&sum.Deposit, &sum.Total, &sum.Returnable, &sum.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan estimate: %w", err)
		}
		if entryDate.Valid {
			t := entryDate.Time
			sum.EntryDate = &t
		}
		estimates = append(estimates, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating estimates: %w", err)
	}

	return estimates, nil
}

func (s *EstimateStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM estimates WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete estimate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
