package store

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/aqala-site/aqala/internal/models"
)

// AggregateKey is the fixed key the entire domain aggregate lives under.
const AggregateKey = "aqala-data-v1"

// AggregateStore serializes the whole aggregate to a single KV entry. Saves
// are best-effort: a broken medium must never surface as a domain error, so
// failures are logged and swallowed.
type AggregateStore struct {
	kv  KV
	key string
	log *logrus.Logger
}

func NewAggregateStore(kv KV, log *logrus.Logger) *AggregateStore {
	return &AggregateStore{kv: kv, key: AggregateKey, log: log}
}

// Load returns the persisted aggregate, or nil when absent or unreadable.
// Version checking is the caller's concern; an old version is re-seeded, not
// migrated.
func (s *AggregateStore) Load() *models.Aggregate {
	raw, ok := s.kv.Get(s.key)
	if !ok {
		return nil
	}
	var agg models.Aggregate
	if err := json.Unmarshal([]byte(raw), &agg); err != nil {
		if s.log != nil {
			s.log.WithError(err).Warn("stored aggregate is unreadable, discarding")
		}
		return nil
	}
	return &agg
}

// Save rewrites the aggregate in full.
func (s *AggregateStore) Save(agg *models.Aggregate) {
	raw, err := json.Marshal(agg)
	if err == nil {
		err = s.kv.Set(s.key, string(raw))
	}
	if err != nil && s.log != nil {
		s.log.WithError(err).Warn("persisting aggregate failed")
	}
}
