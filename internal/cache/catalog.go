package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamevault/internal/model"

	"github.com/redis/go-redis/v9"
)

// Listing is the result of a catalog cache read. On a miss, Generation must be
// handed back to Set so a fill racing an invalidation is dropped.
type Listing struct {
	Games      []*model.VideoGame
	Hit        bool
	Generation string
}

// CatalogCache holds the catalog listing between stock changes.
type CatalogCache interface {
	Get(ctx context.Context) (Listing, error)
	// Set stores games only while the cache is still at generation
	Set(ctx context.Context, generation string, games []*model.VideoGame) error
	Invalidate(ctx context.Context) error
}

// setIfGenerationScript writes the listing only when the generation counter
// still holds the value the reader saw before loading from the database.
var setIfGenerationScript = redis.NewScript(`
	local current = redis.call('GET', KEYS[2])
	if current == false then
		current = '0'
	end
	if current ~= ARGV[1] then
		return 0
	end
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
	return 1
`)

type RedisCatalogCache struct {
	client        *redis.Client
	key           string
	generationKey string
	ttl           time.Duration
}

// NewCatalogCache returns a Redis backed cache, or a noop cache when client is nil.
func NewCatalogCache(client *redis.Client, prefix string, ttl time.Duration) CatalogCache {
	if client == nil {
		return NoopCatalogCache{}
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCatalogCache{
		client:        client,
		key:           prefix + ":catalog",
		generationKey: prefix + ":catalog:generation",
		ttl:           ttl,
	}
}

func (c *RedisCatalogCache) Get(ctx context.Context) (Listing, error) {
	vals, err := c.client.MGet(ctx, c.key, c.generationKey).Result()
	if err != nil {
		return Listing{}, fmt.Errorf("get catalog: %w", err)
	}

	listing := Listing{Generation: "0"}
	if gen, ok := vals[1].(string); ok {
		listing.Generation = gen
	}

	raw, ok := vals[0].(string)
	if !ok {
		return listing, nil
	}
	if err := json.Unmarshal([]byte(raw), &listing.Games); err != nil {
		return listing, fmt.Errorf("decode catalog: %w", err)
	}
	listing.Hit = true
	return listing, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, generation string, games []*model.VideoGame) error {
	bs, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	keys := []string{c.key, c.generationKey}
	if err := setIfGenerationScript.Run(ctx, c.client, keys, generation, bs, c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("set catalog: %w", err)
	}
	return nil
}

// Invalidate bumps the generation and drops the listing in one MULTI block
func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey)
		pipe.Del(ctx, c.key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate catalog: %w", err)
	}
	return nil
}

type NoopCatalogCache struct{}

func (NoopCatalogCache) Get(context.Context) (Listing, error) {
	return Listing{}, nil
}

func (NoopCatalogCache) Set(context.Context, string, []*model.VideoGame) error {
	return nil
}

func (NoopCatalogCache) Invalidate(context.Context) error {
	return nil
}
