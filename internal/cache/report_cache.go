package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const genKey = "reports:gen"

// ReportCache guarda resumos de relatório no Redis por janela de
// período. A invalidação é por geração: em vez de varrer chaves,
// Invalidate incrementa um contador que entra no nome da chave.
// Receptor nulo desliga o cache (sem REDIS_URL configurada).
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(redisURL string, ttl time.Duration) *ReportCache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logrus.WithError(err).Warn("invalid REDIS_URL, report cache disabled")
		return nil
	}

	return &ReportCache{
		rdb: redis.NewClient(opts),
		ttl: ttl,
	}
}

func (c *ReportCache) key(ctx context.Context, suffix string) string {
	gen, err := c.rdb.Get(ctx, genKey).Int64()
	if err != nil {
		gen = 0
	}
	return fmt.Sprintf("reports:%d:%s", gen, suffix)
}

func (c *ReportCache) Get(ctx context.Context, suffix string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, c.key(ctx, suffix)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *ReportCache) Set(ctx context.Context, suffix string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(ctx, suffix), raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).Debug("report cache set failed")
	}
}

func (c *ReportCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Incr(ctx, genKey).Err(); err != nil {
		logrus.WithError(err).Debug("report cache invalidate failed")
	}
}
