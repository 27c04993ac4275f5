package position

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
	pkgredis "github.com/smartaisle/smartcart-backend/pkg/redis"
)

// redisCommander is the slice of pkg/redis the store needs.
type redisCommander interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	PositionKey(sessionID string) string
}

// RedisStore keeps one JSON position value per session. A plain SET
// gives the last-write-wins contract for free.
type RedisStore struct {
	client   redisCommander
	notifier Notifier
	now      func() time.Time
}

// NewRedisStore builds a position store backed by the given redis client.
func NewRedisStore(client redisCommander, notifier Notifier) *RedisStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RedisStore{
		client:   client,
		notifier: notifier,
		now:      time.Now,
	}
}

// SetNotifier replaces the downstream notifier.
func (s *RedisStore) SetNotifier(notifier Notifier) {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	s.notifier = notifier
}

func (s *RedisStore) Report(ctx context.Context, input ReportInput) (Position, error) {
	section, err := validateReport(input)
	if err != nil {
		return Position{}, err
	}

	pos := Position{
		SessionID: input.SessionID,
		Section:   section,
		X:         input.X,
		Y:         input.Y,
		Timestamp: s.now(),
	}
	raw, err := json.Marshal(pos)
	if err != nil {
		return Position{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode position")
	}
	if err := s.client.Set(ctx, s.client.PositionKey(pos.SessionID), string(raw), 0); err != nil {
		return Position{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store position")
	}

	s.notifier.PositionUpdated(ctx, pos)
	return pos, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (Position, bool, error) {
	raw, err := s.client.Get(ctx, s.client.PositionKey(sessionID))
	if err != nil {
		if pkgredis.IsNil(err) {
			return Position{}, false, nil
		}
		return Position{}, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load position")
	}
	var pos Position
	if err := json.Unmarshal([]byte(raw), &pos); err != nil {
		return Position{}, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode position")
	}
	return pos, true, nil
}
