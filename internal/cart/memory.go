package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemoryStore keeps cart lines in process memory. It is the default
// backend and the one the test suite runs against.
type MemoryStore struct {
	mu       sync.Mutex
	lines    map[string]Line
	order    map[string][]string
	pricing  Pricing
	notifier Notifier
	now      func() time.Time
}

// NewMemoryStore builds an empty in-memory cart store. A nil notifier
// disables push notifications.
func NewMemoryStore(pricing Pricing, notifier Notifier) *MemoryStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &MemoryStore{
		lines:    make(map[string]Line),
		order:    make(map[string][]string),
		pricing:  pricing,
		notifier: notifier,
		now:      time.Now,
	}
}

// SetNotifier replaces the downstream notifier. Used at wiring time
// when the hub is constructed after the store.
func (s *MemoryStore) SetNotifier(notifier Notifier) {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	s.mu.Lock()
	s.notifier = notifier
	s.mu.Unlock()
}

func (s *MemoryStore) AddLine(ctx context.Context, input AddLineInput) (Line, error) {
	if err := validateAddLine(input); err != nil {
		return Line{}, err
	}

	s.mu.Lock()
	line := Line{
		ID:        uuid.NewString(),
		SessionID: input.SessionID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Weight:    input.Weight,
		UnitPrice: input.UnitPrice,
		CreatedAt: s.now(),
	}
	line.TotalPrice = lineTotal(line.UnitPrice, line.EffectiveQuantity())
	s.lines[line.ID] = line
	s.order[line.SessionID] = append(s.order[line.SessionID], line.ID)
	summary := s.summarizeLocked(line.SessionID)
	notifier := s.notifier
	s.mu.Unlock()

	notifier.ItemAdded(ctx, line.SessionID, line)
	notifier.CartChanged(ctx, line.SessionID, summary)
	return line, nil
}

func (s *MemoryStore) UpdateQuantity(ctx context.Context, lineID string, quantity decimal.Decimal) (Line, bool, error) {
	if quantity.Sign() <= 0 {
		line, existed, err := s.removeLine(ctx, lineID)
		if err != nil {
			return Line{}, false, err
		}
		if !existed {
			return Line{}, false, errLineNotFound(lineID)
		}
		return line, true, nil
	}

	s.mu.Lock()
	line, ok := s.lines[lineID]
	if !ok {
		s.mu.Unlock()
		return Line{}, false, errLineNotFound(lineID)
	}
	line.Quantity = quantity
	// A quantity update converts a weighed line back to unit pricing.
	line.Weight = nil
	line.TotalPrice = lineTotal(line.UnitPrice, quantity)
	s.lines[lineID] = line
	summary := s.summarizeLocked(line.SessionID)
	notifier := s.notifier
	s.mu.Unlock()

	notifier.CartChanged(ctx, line.SessionID, summary)
	return line, false, nil
}

func (s *MemoryStore) RemoveLine(ctx context.Context, lineID string) (bool, error) {
	_, existed, err := s.removeLine(ctx, lineID)
	return existed, err
}

func (s *MemoryStore) removeLine(ctx context.Context, lineID string) (Line, bool, error) {
	s.mu.Lock()
	line, ok := s.lines[lineID]
	if !ok {
		s.mu.Unlock()
		return Line{}, false, nil
	}
	delete(s.lines, lineID)
	ids := s.order[line.SessionID]
	for i, id := range ids {
		if id == lineID {
			s.order[line.SessionID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(s.order[line.SessionID]) == 0 {
		delete(s.order, line.SessionID)
	}
	summary := s.summarizeLocked(line.SessionID)
	notifier := s.notifier
	s.mu.Unlock()

	notifier.CartChanged(ctx, line.SessionID, summary)
	return line, true, nil
}

func (s *MemoryStore) ClearSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	for _, id := range s.order[sessionID] {
		delete(s.lines, id)
	}
	delete(s.order, sessionID)
	summary := s.summarizeLocked(sessionID)
	notifier := s.notifier
	s.mu.Unlock()

	notifier.CartChanged(ctx, sessionID, summary)
	return nil
}

func (s *MemoryStore) GetSummary(ctx context.Context, sessionID string) (Summary, error) {
	s.mu.Lock()
	summary := s.summarizeLocked(sessionID)
	s.mu.Unlock()
	return summary, nil
}

// SessionSummaries returns a summary for every session that currently
// holds at least one line. Feeds the analytics rollup.
func (s *MemoryStore) SessionSummaries(ctx context.Context) ([]Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summaries := make([]Summary, 0, len(s.order))
	for sessionID := range s.order {
		summaries = append(summaries, s.summarizeLocked(sessionID))
	}
	return summaries, nil
}

func (s *MemoryStore) summarizeLocked(sessionID string) Summary {
	ids := s.order[sessionID]
	lines := make([]Line, 0, len(ids))
	for _, id := range ids {
		if line, ok := s.lines[id]; ok {
			lines = append(lines, line)
		}
	}
	return s.pricing.Summarize(sessionID, lines)
}
