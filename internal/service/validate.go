package service

import (
	"fmt"

	"github.com/vbonduro/movecheck/internal/domain"
)

// validatePair enforces the preconditions the engine relies on: roles match
// their slot, every enum value is known and the exit does not predate the entry.
func validatePair(entry *domain.Snapshot, exit domain.Snapshot) error {
	if exit.Role != domain.RoleExit {
		return fmt.Errorf("%w: got role %q", ErrNotExitInspection, exit.Role)
	}
	if err := validateSnapshot(exit); err != nil {
		return fmt.Errorf("exit: %w", err)
	}
	if entry == nil {
		return nil
	}
	if entry.Role != domain.RoleEntry {
		return fmt.Errorf("%w: got role %q", ErrNotEntryInspection, entry.Role)
	}
	if err := validateSnapshot(*entry); err != nil {
		return fmt.Errorf("entry: %w", err)
	}
	if exit.Date.Before(entry.Date) {
		return fmt.Errorf("%w: exit date %s precedes entry date %s",
			ErrInvalidSnapshot, exit.Date.Format("2006-01-02"), entry.Date.Format("2006-01-02"))
	}
	return nil
}

func validateSnapshot(s domain.Snapshot) error {
	if s.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidSnapshot)
	}
	for i, it := range s.Items {
		switch {
		case it.Room == "":
			return fmt.Errorf("%w: items[%d]: missing room", ErrInvalidSnapshot, i)
		case it.Item == "":
			return fmt.Errorf("%w: items[%d]: missing item name", ErrInvalidSnapshot, i)
		case !it.Category.Valid():
			return fmt.Errorf("%w: items[%d]: unknown category %q", ErrInvalidSnapshot, i, it.Category)
		case !it.Grade.Valid():
			return fmt.Errorf("%w: items[%d]: unknown grade %q", ErrInvalidSnapshot, i, it.Grade)
		case it.CostOverride != nil && it.CostOverride.IsNegative():
			return fmt.Errorf("%w: items[%d]: negative cost override", ErrInvalidSnapshot, i)
		}
	}
	for i, k := range s.Keys {
		if !k.Type.Valid() {
			return fmt.Errorf("%w: keys[%d]: unknown key type %q", ErrInvalidSnapshot, i, k.Type)
		}
		if k.Quantity < 0 {
			return fmt.Errorf("%w: keys[%d]: negative quantity", ErrInvalidSnapshot, i)
		}
	}
	for i, m := range s.Meters {
		if !m.Type.Valid() {
			return fmt.Errorf("%w: meters[%d]: unknown meter type %q", ErrInvalidSnapshot, i, m.Type)
		}
	}
	return nil
}
