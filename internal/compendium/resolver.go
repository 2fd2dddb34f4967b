package compendium

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
)

// Config holds the dependencies for the compendium service
type Config struct {
	// Catalogs are searched in order; the first hit wins
	Catalogs []Catalog

	// External is consulted after every catalog misses (optional)
	External ExternalProvider

	// ExternalTypes limits which type hints reach the external provider.
	// Defaults to spells only.
	ExternalTypes []string
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	for i, catalog := range c.Catalogs {
		if catalog == nil {
			vb.Fieldf("Catalogs", "entry %d is nil", i)
		}
	}
	return vb.Build()
}

// Service resolves names across catalogs without caching
type Service struct {
	catalogs      []Catalog
	external      ExternalProvider
	externalTypes map[string]bool
}

// New creates a compendium service
func New(cfg *Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	types := cfg.ExternalTypes
	if len(types) == 0 {
		types = []string{actor.ItemTypeSpell}
	}
	externalTypes := make(map[string]bool, len(types))
	for _, t := range types {
		externalTypes[t] = true
	}

	return &Service{
		catalogs:      cfg.Catalogs,
		external:      cfg.External,
		externalTypes: externalTypes,
	}, nil
}

// Resolve implements Resolver
func (s *Service) Resolve(ctx context.Context, name, itemType string) (*actor.Item, error) {
	return s.resolve(ctx, name, itemType, nil)
}

// Session returns a resolver that memoises catalog indexes for its lifetime.
// Use one session per import; catalogs are assumed not to change during it.
func (s *Service) Session() Resolver {
	return &session{
		service: s,
		indexes: make(map[int][]IndexEntry),
	}
}

// Catalogs returns the configured catalogs in search order
func (s *Service) Catalogs() []Catalog {
	return s.catalogs
}

type session struct {
	service *Service

	mu      sync.Mutex
	indexes map[int][]IndexEntry
}

func (s *session) Resolve(ctx context.Context, name, itemType string) (*actor.Item, error) {
	return s.service.resolve(ctx, name, itemType, s)
}

func (s *session) index(ctx context.Context, pos int, catalog Catalog) ([]IndexEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.indexes[pos]; ok {
		return idx, nil
	}

	idx, err := catalog.GetIndex(ctx, IndexFields)
	if err != nil {
		return nil, err
	}
	s.indexes[pos] = idx
	return idx, nil
}

func (s *Service) resolve(ctx context.Context, name, itemType string, sess *session) (*actor.Item, error) {
	if name == "" {
		return nil, nil
	}

	folded := FoldName(name)
	for pos, catalog := range s.catalogs {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "resolution canceled")
		}

		entry, err := s.find(ctx, pos, catalog, folded, name, itemType, sess)
		if err != nil {
			slog.Warn("Catalog lookup failed, skipping catalog",
				"catalog", catalog.Name(), "name", name, "type", itemType, "error", err)
			continue
		}
		if entry == nil {
			continue
		}

		doc, err := catalog.GetDocument(ctx, entry.ID)
		if err != nil {
			slog.Warn("Failed to load catalog document, skipping catalog",
				"catalog", catalog.Name(), "id", entry.ID, "error", err)
			continue
		}
		if doc == nil {
			continue
		}

		slog.Debug("Resolved item from catalog",
			"catalog", catalog.Name(), "name", name, "type", itemType, "id", entry.ID)
		return doc.Clone(), nil
	}

	return s.resolveExternal(ctx, name, itemType)
}

func (s *Service) find(
	ctx context.Context, pos int, catalog Catalog,
	folded, name, itemType string, sess *session,
) (*IndexEntry, error) {
	if indexed, ok := catalog.(IndexedCatalog); ok {
		return indexed.Lookup(ctx, name, itemType)
	}

	var (
		idx []IndexEntry
		err error
	)
	if sess != nil {
		idx, err = sess.index(ctx, pos, catalog)
	} else {
		idx, err = catalog.GetIndex(ctx, IndexFields)
	}
	if err != nil {
		return nil, err
	}

	for i := range idx {
		if Matches(idx[i], folded, itemType) {
			entry := idx[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (s *Service) resolveExternal(ctx context.Context, name, itemType string) (*actor.Item, error) {
	if s.external == nil || !s.externalTypes[itemType] {
		return nil, nil
	}

	item, err := s.external.TryResolveExternal(ctx, name, itemType)
	if err != nil {
		slog.Warn("External provider lookup failed", "name", name, "type", itemType, "error", err)
		return nil, nil
	}
	if item == nil {
		return nil, nil
	}

	slog.Debug("Resolved item from external provider", "name", name, "type", itemType)
	return item.Clone(), nil
}

var _ Resolver = (*Service)(nil)
