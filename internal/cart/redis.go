package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgerrors "github.com/smartaisle/smartcart-backend/pkg/errors"
	pkgredis "github.com/smartaisle/smartcart-backend/pkg/redis"
)

// redisCommander is the slice of pkg/redis the store needs. Kept
// narrow so tests can fake it.
type redisCommander interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	MGet(ctx context.Context, keys ...string) ([]any, error)
	Del(ctx context.Context, keys ...string) error
	RPush(ctx context.Context, key string, values ...any) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LRem(ctx context.Context, key string, count int64, value any) error
	ScanKeys(ctx context.Context, pattern string) ([]string, error)
	CartLineKey(lineID string) string
	CartSessionKey(sessionID string) string
	CartSessionPattern() string
	SessionIDFromKey(key string) string
}

// RedisStore keeps cart lines in Redis: one JSON value per line and a
// per-session list of line ids for insertion order. Adds touch
// distinct keys, so concurrent adds for one session cannot lose
// writes; the session list append is a single RPUSH.
type RedisStore struct {
	client   redisCommander
	pricing  Pricing
	notifier Notifier
	now      func() time.Time
}

// NewRedisStore builds a cart store backed by the given redis client.
func NewRedisStore(client redisCommander, pricing Pricing, notifier Notifier) *RedisStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RedisStore{
		client:   client,
		pricing:  pricing,
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

func (s *RedisStore) AddLine(ctx context.Context, input AddLineInput) (Line, error) {
	if err := validateAddLine(input); err != nil {
		return Line{}, err
	}

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

	if err := s.writeLine(ctx, line); err != nil {
		return Line{}, err
	}
	if err := s.client.RPush(ctx, s.client.CartSessionKey(line.SessionID), line.ID); err != nil {
		return Line{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append cart line id")
	}

	summary, err := s.GetSummary(ctx, line.SessionID)
	if err != nil {
		return Line{}, err
	}
	s.notifier.ItemAdded(ctx, line.SessionID, line)
	s.notifier.CartChanged(ctx, line.SessionID, summary)
	return line, nil
}

func (s *RedisStore) UpdateQuantity(ctx context.Context, lineID string, quantity decimal.Decimal) (Line, bool, error) {
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

	line, err := s.readLine(ctx, lineID)
	if err != nil {
		return Line{}, false, err
	}

	line.Quantity = quantity
	line.Weight = nil
	line.TotalPrice = lineTotal(line.UnitPrice, quantity)
	if err := s.writeLine(ctx, line); err != nil {
		return Line{}, false, err
	}

	summary, err := s.GetSummary(ctx, line.SessionID)
	if err != nil {
		return Line{}, false, err
	}
	s.notifier.CartChanged(ctx, line.SessionID, summary)
	return line, false, nil
}

func (s *RedisStore) RemoveLine(ctx context.Context, lineID string) (bool, error) {
	_, existed, err := s.removeLine(ctx, lineID)
	return existed, err
}

func (s *RedisStore) removeLine(ctx context.Context, lineID string) (Line, bool, error) {
	line, err := s.readLine(ctx, lineID)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return Line{}, false, nil
		}
		return Line{}, false, err
	}

	if err := s.client.Del(ctx, s.client.CartLineKey(lineID)); err != nil {
		return Line{}, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart line")
	}
	if err := s.client.LRem(ctx, s.client.CartSessionKey(line.SessionID), 0, lineID); err != nil {
		return Line{}, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "unlink cart line id")
	}

	summary, err := s.GetSummary(ctx, line.SessionID)
	if err != nil {
		return Line{}, false, err
	}
	s.notifier.CartChanged(ctx, line.SessionID, summary)
	return line, true, nil
}

func (s *RedisStore) ClearSession(ctx context.Context, sessionID string) error {
	sessionKey := s.client.CartSessionKey(sessionID)
	ids, err := s.client.LRange(ctx, sessionKey, 0, -1)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart line ids")
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, s.client.CartLineKey(id))
	}
	keys = append(keys, sessionKey)
	if err := s.client.Del(ctx, keys...); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart session")
	}

	s.notifier.CartChanged(ctx, sessionID, s.pricing.Summarize(sessionID, nil))
	return nil
}

func (s *RedisStore) GetSummary(ctx context.Context, sessionID string) (Summary, error) {
	ids, err := s.client.LRange(ctx, s.client.CartSessionKey(sessionID), 0, -1)
	if err != nil {
		return Summary{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart line ids")
	}
	if len(ids) == 0 {
		return s.pricing.Summarize(sessionID, nil), nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.client.CartLineKey(id)
	}
	values, err := s.client.MGet(ctx, keys...)
	if err != nil {
		return Summary{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart lines")
	}

	lines := make([]Line, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Dangling id: the line key expired or was deleted
			// between the LRANGE and the MGET.
			continue
		}
		var line Line
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			return Summary{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode cart line")
		}
		lines = append(lines, line)
	}
	return s.pricing.Summarize(sessionID, lines), nil
}

// SessionSummaries scans the session keys and summarizes each one.
func (s *RedisStore) SessionSummaries(ctx context.Context) ([]Summary, error) {
	keys, err := s.client.ScanKeys(ctx, s.client.CartSessionPattern())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "scan cart sessions")
	}
	summaries := make([]Summary, 0, len(keys))
	for _, key := range keys {
		summary, err := s.GetSummary(ctx, s.client.SessionIDFromKey(key))
		if err != nil {
			return nil, err
		}
		if len(summary.Items) == 0 {
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *RedisStore) readLine(ctx context.Context, lineID string) (Line, error) {
	raw, err := s.client.Get(ctx, s.client.CartLineKey(lineID))
	if err != nil {
		if pkgredis.IsNil(err) {
			return Line{}, errLineNotFound(lineID)
		}
		return Line{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart line")
	}
	var line Line
	if err := json.Unmarshal([]byte(raw), &line); err != nil {
		return Line{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode cart line")
	}
	return line, nil
}

func (s *RedisStore) writeLine(ctx context.Context, line Line) error {
	raw, err := json.Marshal(line)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart line")
	}
	if err := s.client.Set(ctx, s.client.CartLineKey(line.ID), string(raw), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store cart line")
	}
	return nil
}
