package cart

import (
	"context"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
)

// AddLineInput captures a new cart line request. The unit price is a
// snapshot supplied by the caller; the store never looks the product
// up and does not verify it exists.
type AddLineInput struct {
	SessionID string
	ProductID int64
	Quantity  decimal.Decimal
	Weight    *decimal.Decimal
	UnitPrice decimal.Decimal
}

// Store owns cart lines grouped by session. Implementations must be
// safe under concurrent use and must preserve per-session insertion
// order for summary iteration.
type Store interface {
	// AddLine creates a new line with a server-computed total price.
	AddLine(ctx context.Context, input AddLineInput) (Line, error)
	// UpdateQuantity recomputes the line's total from the new
	// quantity. A quantity of zero or less removes the line instead;
	// removed reports which path was taken, and the returned line is
	// the final state either way.
	UpdateQuantity(ctx context.Context, lineID string, quantity decimal.Decimal) (line Line, removed bool, err error)
	// RemoveLine deletes a line if it exists. Missing lines are a
	// no-op, not an error.
	RemoveLine(ctx context.Context, lineID string) (bool, error)
	// ClearSession removes every line for the session.
	ClearSession(ctx context.Context, sessionID string) error
	// GetSummary recomputes the session's summary from its current lines.
	GetSummary(ctx context.Context, sessionID string) (Summary, error)
}

// Notifier receives store mutations for push delivery. The store is
// the source of truth; the notifier is strictly downstream and its
// failures never surface to mutation callers.
type Notifier interface {
	ItemAdded(ctx context.Context, sessionID string, line Line)
	CartChanged(ctx context.Context, sessionID string, summary Summary)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) ItemAdded(context.Context, string, Line)       {}
func (NopNotifier) CartChanged(context.Context, string, Summary) {}

func validateAddLine(input AddLineInput) error {
	if input.SessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if input.UnitPrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unit price must not be negative")
	}
	if input.Quantity.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	if input.Weight != nil && !input.Weight.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "weight must be positive when present")
	}
	if input.Weight == nil && input.Quantity.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity or weight is required")
	}
	return nil
}

func errLineNotFound(lineID string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found").
		WithDetails(map[string]string{"lineId": lineID})
}
