// Package cached wraps a catalog with a redis read-through cache
package cached

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/redis"
)

const (
	indexKeyFormat    = "compendium:%s:index"
	documentKeyFormat = "compendium:%s:doc:%s"
	defaultTTL        = 24 * time.Hour
)

// Config holds the dependencies for the cached catalog
type Config struct {
	Catalog compendium.Catalog
	Client  redis.Client
	// TTL applies to index and document keys (optional, defaults to 24 hours)
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// Catalog caches another catalog's index and documents in redis.
// Redis failures fall through to the wrapped catalog.
type Catalog struct {
	inner  compendium.Catalog
	client redis.Client
	ttl    time.Duration
}

// New wraps a catalog
func New(cfg *Config) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Catalog{
		inner:  cfg.Catalog,
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

// IndexedCatalog is a cached catalog whose wrapped catalog answers name
// lookups itself. Lookups go straight to the wrapped catalog; documents are
// still served through the cache.
type IndexedCatalog struct {
	*Catalog
	indexed compendium.IndexedCatalog
}

// Wrap wraps a catalog, keeping compendium.IndexedCatalog when the wrapped
// catalog implements it
func Wrap(cfg *Config) (compendium.Catalog, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if indexed, ok := cfg.Catalog.(compendium.IndexedCatalog); ok {
		return &IndexedCatalog{Catalog: c, indexed: indexed}, nil
	}
	return c, nil
}

// Lookup implements compendium.IndexedCatalog
func (c *IndexedCatalog) Lookup(ctx context.Context, name, itemType string) (*compendium.IndexEntry, error) {
	return c.indexed.Lookup(ctx, name, itemType)
}

// Name implements compendium.Catalog
func (c *Catalog) Name() string {
	return c.inner.Name()
}

// GetIndex implements compendium.Catalog
func (c *Catalog) GetIndex(ctx context.Context, fields []string) ([]compendium.IndexEntry, error) {
	key := fmt.Sprintf(indexKeyFormat, c.inner.Name())

	var idx []compendium.IndexEntry
	if c.read(ctx, key, &idx) {
		return idx, nil
	}

	idx, err := c.inner.GetIndex(ctx, fields)
	if err != nil {
		return nil, err
	}

	c.write(ctx, key, idx)
	return idx, nil
}

// GetDocument implements compendium.Catalog
func (c *Catalog) GetDocument(ctx context.Context, id string) (*actor.Item, error) {
	key := fmt.Sprintf(documentKeyFormat, c.inner.Name(), id)

	var item actor.Item
	if c.read(ctx, key, &item) {
		return &item, nil
	}

	doc, err := c.inner.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	c.write(ctx, key, doc)
	return doc, nil
}

// Invalidate drops the cached index and every cached document for the catalog
func (c *Catalog) Invalidate(ctx context.Context) error {
	pattern := fmt.Sprintf(documentKeyFormat, c.inner.Name(), "*")
	keys := []string{fmt.Sprintf(indexKeyFormat, c.inner.Name())}

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan cached documents")
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cached catalog keys")
	}
	return nil
}

func (c *Catalog) read(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !stderrors.Is(err, redis.Nil) {
			slog.Warn("Catalog cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		slog.Warn("Discarding malformed catalog cache entry", "key", key, "error", err)
		return false
	}
	return true
}

func (c *Catalog) write(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Failed to encode catalog cache entry", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("Catalog cache write failed", "key", key, "error", err)
	}
}

var (
	_ compendium.Catalog        = (*Catalog)(nil)
	_ compendium.IndexedCatalog = (*IndexedCatalog)(nil)
)
