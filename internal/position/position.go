package position

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartaisle/smartcart-backend/pkg/enums"
	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
)

// Position is the latest reported location for a session. A new
// report replaces the prior one; no history is kept.
type Position struct {
	SessionID string          `json:"sessionId"`
	Section   enums.Section   `json:"section"`
	X         decimal.Decimal `json:"x"`
	Y         decimal.Decimal `json:"y"`
	Timestamp time.Time       `json:"timestamp"`
}

// ReportInput carries a raw position report before section validation.
type ReportInput struct {
	SessionID string
	Section   string
	X         decimal.Decimal
	Y         decimal.Decimal
}

// Store owns the live position per session, last-write-wins.
type Store interface {
	Report(ctx context.Context, input ReportInput) (Position, error)
	// Get returns the session's position and whether one exists.
	Get(ctx context.Context, sessionID string) (Position, bool, error)
}

// Notifier receives successful reports for fan-out. Downstream only;
// its failures never surface to the reporter.
type Notifier interface {
	PositionUpdated(ctx context.Context, pos Position)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) PositionUpdated(context.Context, Position) {}

func validateReport(input ReportInput) (enums.Section, error) {
	if input.SessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	section, err := enums.ParseSection(input.Section)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown store section").
			WithDetails(map[string]string{"section": input.Section})
	}
	return section, nil
}
