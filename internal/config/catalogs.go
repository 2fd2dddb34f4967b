package config

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/compendium/cached"
	"github.com/KirkDiggler/rpg-companion/internal/compendium/pack"
	"github.com/KirkDiggler/rpg-companion/internal/compendium/sqlite"
	"github.com/KirkDiggler/rpg-companion/internal/compendium/srd"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/redis"
)

// Catalogs holds the opened catalog sources in search order
type Catalogs struct {
	List    []compendium.Catalog
	closers []io.Closer
}

// Close releases any catalog that holds a file handle
func (c *Catalogs) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}

// OpenCatalogs opens every configured catalog source in order.
// client may be nil, in which case cache flags are ignored.
func (c *Config) OpenCatalogs(client redis.Client) (*Catalogs, error) {
	out := &Catalogs{}

	for i, src := range c.Catalogs {
		catalog, closer, err := c.openSource(src)
		if err != nil {
			_ = out.Close()
			return nil, errors.Wrapf(err, "failed to open catalog %d (%s)", i, src.Kind)
		}
		if closer != nil {
			out.closers = append(out.closers, closer)
		}

		if src.Cache && client != nil {
			catalog, err = cached.Wrap(&cached.Config{
				Catalog: catalog,
				Client:  client,
				TTL:     c.Redis.CacheTTL.Std(),
			})
			if err != nil {
				_ = out.Close()
				return nil, err
			}
		}

		slog.Debug("Opened catalog", "kind", src.Kind, "name", catalog.Name(), "cached", src.Cache && client != nil)
		out.List = append(out.List, catalog)
	}

	return out, nil
}

func (c *Config) openSource(src CatalogSource) (compendium.Catalog, io.Closer, error) {
	switch src.Kind {
	case SourcePack:
		catalog, err := pack.Load(src.Path)
		return catalog, nil, err
	case SourceSQLite:
		catalog, err := sqlite.Open(src.Path)
		if err != nil {
			return nil, nil, err
		}
		return catalog, catalog, nil
	case SourceSRD:
		catalog, err := srd.New(&srd.Config{
			BaseURL:     c.SRD.BaseURL,
			HTTPTimeout: c.SRD.HTTPTimeout.Std(),
			CacheTTL:    c.SRD.CacheTTL.Std(),
		})
		return catalog, nil, err
	default:
		return nil, nil, errors.InvalidArgumentf("unknown catalog kind %q", src.Kind)
	}
}
