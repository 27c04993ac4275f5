package position

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps live positions in process memory.
type MemoryStore struct {
	mu        sync.RWMutex
	positions map[string]Position
	notifier  Notifier
	now       func() time.Time
}

// NewMemoryStore builds an empty in-memory position store. A nil
// notifier disables push notifications.
func NewMemoryStore(notifier Notifier) *MemoryStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &MemoryStore{
		positions: make(map[string]Position),
		notifier:  notifier,
		now:       time.Now,
	}
}

// SetNotifier replaces the downstream notifier.
func (s *MemoryStore) SetNotifier(notifier Notifier) {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	s.mu.Lock()
	s.notifier = notifier
	s.mu.Unlock()
}

func (s *MemoryStore) Report(ctx context.Context, input ReportInput) (Position, error) {
	section, err := validateReport(input)
	if err != nil {
		return Position{}, err
	}

	s.mu.Lock()
	pos := Position{
		SessionID: input.SessionID,
		Section:   section,
		X:         input.X,
		Y:         input.Y,
		Timestamp: s.now(),
	}
	s.positions[input.SessionID] = pos
	notifier := s.notifier
	s.mu.Unlock()

	notifier.PositionUpdated(ctx, pos)
	return pos, nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (Position, bool, error) {
	s.mu.RLock()
	pos, ok := s.positions[sessionID]
	s.mu.RUnlock()
	return pos, ok, nil
}
