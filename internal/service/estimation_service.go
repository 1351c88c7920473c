package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/domain"
	"github.com/vbonduro/movecheck/internal/engine"
	"github.com/vbonduro/movecheck/internal/store"
)

var (
	ErrNotExitInspection  = errors.New("exit snapshot is not an exit inspection")
	ErrNotEntryInspection = errors.New("entry snapshot is not an entry inspection")
	ErrNegativeDeposit    = errors.New("deposit must not be negative")
	ErrEstimateNotFound   = errors.New("estimate not found")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
	ErrNoLedger           = errors.New("no estimate ledger configured")
)

// estimateRepository is the subset of store.EstimateStore that EstimationService requires.
//
//go:generate mockgen -source=estimation_service.go -destination=mock_repository_test.go -package=service
type estimateRepository interface {
	Create(ctx context.Context, id, propertyRef string, report engine.EstimateReport) (*store.Estimate, error)
	GetByID(ctx context.Context, id string) (*store.Estimate, error)
	ListByProperty(ctx context.Context, propertyRef string) ([]*store.EstimateSummary, error)
	Delete(ctx context.Context, id string) error
}

type EstimationService struct {
	estimates estimateRepository
	tariffs   engine.Tariffs
	logger    *slog.Logger
	newID     func() string
}

// NewEstimationService wires the engine to a tariff grid and the estimate
// ledger. estimates may be nil when nothing needs to be recorded; the ledger
// operations then fail with ErrNoLedger.
func NewEstimationService(estimates estimateRepository, tariffs engine.Tariffs, logger *slog.Logger) *EstimationService {
	return &EstimationService{
		estimates: estimates,
		tariffs:   tariffs,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// EstimateRequest carries everything needed to price one move-out.
type EstimateRequest struct {
	PropertyRef string
	Entry       *domain.Snapshot
	Exit        domain.Snapshot
	Deposit     decimal.Decimal
}

func (s *EstimationService) Tariffs() engine.Tariffs {
	return s.tariffs
}

// Compare validates both inspections and returns the money-free comparison.
func (s *EstimationService) Compare(ctx context.Context, entry *domain.Snapshot, exit domain.Snapshot) (engine.Comparison, error) {
	if err := validatePair(entry, exit); err != nil {
		return engine.Comparison{}, err
	}
	s.logDuplicates(ctx, entry, exit)

	cmp := engine.Compare(entry, exit)
	s.logger.InfoContext(ctx, "comparison computed",
		"items", cmp.Stats.Total, "degraded", cmp.Stats.Degraded, "improved", cmp.Stats.Improved,
		"has_entry", entry != nil)
	return cmp, nil
}

// Calculate validates the request and runs the estimation without recording it.
func (s *EstimationService) Calculate(ctx context.Context, req EstimateRequest) (engine.EstimateReport, error) {
	if req.Deposit.IsNegative() {
		return engine.EstimateReport{}, fmt.Errorf("%w: %s", ErrNegativeDeposit, req.Deposit)
	}
	if err := validatePair(req.Entry, req.Exit); err != nil {
		return engine.EstimateReport{}, err
	}
	s.logDuplicates(ctx, req.Entry, req.Exit)

	report := engine.Estimate(engine.EstimateInput{
		Entry:   req.Entry,
		Exit:    req.Exit,
		Tariffs: s.tariffs,
		Deposit: req.Deposit,
	})
	s.logFallbacks(ctx, req.PropertyRef, report)
	return report, nil
}

// Estimate calculates the retention and records it in the ledger.
func (s *EstimationService) Estimate(ctx context.Context, req EstimateRequest) (*store.Estimate, error) {
	report, err := s.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.estimates == nil {
		return nil, ErrNoLedger
	}

	id := s.newID()
	est, err := s.estimates.Create(ctx, id, req.PropertyRef, report)
	if err != nil {
		return nil, fmt.Errorf("failed to record estimate: %w", err)
	}

	s.logger.InfoContext(ctx, "estimate recorded",
		"estimate_id", est.ID,
		"property_ref", req.PropertyRef,
		"degradations", report.Summary.DegradationCount,
		"missing_keys", report.Summary.MissingKeys,
		"total", report.Total.StringFixed(2),
		"deposit", report.Deposit.StringFixed(2),
		"returnable", report.Returnable.StringFixed(2))
	return est, nil
}

func (s *EstimationService) GetEstimate(ctx context.Context, id string) (*store.Estimate, error) {
	if s.estimates == nil {
		return nil, ErrNoLedger
	}
	est, err := s.estimates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, fmt.Errorf("%w: %s", ErrEstimateNotFound, id)
	}
	return est, nil
}

func (s *EstimationService) ListEstimates(ctx context.Context, propertyRef string) ([]*store.EstimateSummary, error) {
	if s.estimates == nil {
		return nil, ErrNoLedger
	}
	list, err := s.estimates.ListByProperty(ctx, propertyRef)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*store.EstimateSummary{}
	}
	return list, nil
}

func (s *EstimationService) DeleteEstimate(ctx context.Context, id string) error {
	if _, err := s.GetEstimate(ctx, id); err != nil {
		return err
	}
	if err := s.estimates.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrEstimateNotFound, id)
		}
		return fmt.Errorf("failed to delete estimate %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "estimate deleted", "estimate_id", id)
	return nil
}

// logDuplicates reports identity triples that occur more than once in a
// snapshot. The engine keeps the last occurrence.
func (s *EstimationService) logDuplicates(ctx context.Context, entry *domain.Snapshot, exit domain.Snapshot) {
	if entry != nil {
		for _, k := range engine.IndexItems(entry.Items).Duplicates() {
			s.logger.WarnContext(ctx, "duplicate item in snapshot, last occurrence kept",
				"role", entry.Role, "room", k.Room, "item", k.Item, "category", k.Category)
		}
	}
	for _, k := range engine.IndexItems(exit.Items).Duplicates() {
		s.logger.WarnContext(ctx, "duplicate item in snapshot, last occurrence kept",
			"role", exit.Role, "room", k.Room, "item", k.Item, "category", k.Category)
	}
}

func (s *EstimationService) logFallbacks(ctx context.Context, propertyRef string, report engine.EstimateReport) {
	for _, line := range report.Degradations {
		if line.TariffFallback {
			s.logger.WarnContext(ctx, "no tariff for item, fallback price used",
				"property_ref", propertyRef, "category", line.Category, "tier", line.Tier,
				"room", line.Room, "item", line.Item, "price", line.GridCost.String())
		}
	}
	for _, line := range report.KeyShortfalls {
		if line.Fallback {
			s.logger.WarnContext(ctx, "no tariff for key type, fallback price used",
				"property_ref", propertyRef, "key_type", line.KeyType, "price", line.UnitCost.String())
		}
	}
}
