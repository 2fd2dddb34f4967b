// Package srd exposes the D&D 5e SRD API as a compendium catalog
package srd

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
)

// ID prefixes for index entries
const (
	prefixRace      = "RACE"
	prefixClass     = "CLASS"
	prefixSpell     = "SPELL"
	prefixEquipment = "EQUIPMENT"
)

// CatalogName is reported in logs and search results
const CatalogName = "srd"

// equipmentCategories maps SRD equipment categories to item types
var equipmentCategories = []struct {
	category string
	itemType string
}{
	{category: "weapon", itemType: actor.ItemTypeWeapon},
	{category: "armor", itemType: actor.ItemTypeEquipment},
	{category: "adventuring-gear", itemType: actor.ItemTypeLoot},
	{category: "tools", itemType: actor.ItemTypeTool},
}

// Config contains configuration options for the SRD catalog.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Client overrides the API client (optional, used by tests)
	Client dnd5e.Interface
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// Catalog reads SRD records from the D&D 5e API
type Catalog struct {
	client dnd5e.Interface
}

// New creates a new SRD catalog with the given configuration.
func New(cfg *Config) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Client != nil {
		return &Catalog{client: cfg.Client}, nil
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &Catalog{client: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)}, nil
}

// Name implements compendium.Catalog
func (c *Catalog) Name() string {
	return CatalogName
}

// GetIndex implements compendium.Catalog
func (c *Catalog) GetIndex(ctx context.Context, _ []string) ([]compendium.IndexEntry, error) {
	var out []compendium.IndexEntry

	races, err := c.client.ListRaces()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list races")
	}
	out = appendRefs(out, races, prefixRace, actor.ItemTypeRace)

	classes, err := c.client.ListClasses()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list classes")
	}
	out = appendRefs(out, classes, prefixClass, actor.ItemTypeClass)

	spells, err := c.client.ListSpells(&dnd5e.ListSpellsInput{})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list spells")
	}
	out = appendRefs(out, spells, prefixSpell, actor.ItemTypeSpell)

	for _, ec := range equipmentCategories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		category, err := c.client.GetEquipmentCategory(ec.category)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable,
				"failed to get equipment category %s", ec.category)
		}
		if category == nil {
			continue
		}
		out = appendRefs(out, category.Equipment, prefixEquipment, ec.itemType)
	}

	slog.Debug("Built SRD index", "entries", len(out))
	return out, nil
}

// GetDocument implements compendium.Catalog
func (c *Catalog) GetDocument(_ context.Context, id string) (*actor.Item, error) {
	prefix, key, ok := strings.Cut(id, "_")
	if !ok || key == "" {
		return nil, errors.InvalidArgumentf("malformed SRD id %q", id)
	}
	apiID := toAPIFormat(key)

	switch prefix {
	case prefixRace:
		race, err := c.client.GetRace(apiID)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get race %s", apiID)
		}
		return raceToItem(id, race), nil
	case prefixClass:
		class, err := c.client.GetClass(apiID)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get class %s", apiID)
		}
		return classToItem(id, class), nil
	case prefixSpell:
		spell, err := c.client.GetSpell(apiID)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get spell %s", apiID)
		}
		return spellToItem(id, spell), nil
	case prefixEquipment:
		equipment, err := c.client.GetEquipment(apiID)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get equipment %s", apiID)
		}
		item := equipmentToItem(id, equipment)
		if item == nil {
			return nil, errors.NotFoundf("equipment %s not found", apiID)
		}
		return item, nil
	default:
		return nil, errors.InvalidArgumentf("unknown SRD record kind %q", prefix)
	}
}

func appendRefs(out []compendium.IndexEntry, refs []*entities.ReferenceItem, prefix, itemType string) []compendium.IndexEntry {
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		out = append(out, compendium.IndexEntry{
			ID:   fromAPIFormat(ref.Key, prefix),
			Name: ref.Name,
			Type: itemType,
		})
	}
	return out
}

// toAPIFormat converts an index key to API format
// e.g., "HALF_ELF" -> "half-elf"
func toAPIFormat(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", "-"))
}

// fromAPIFormat converts API format to an index ID
// e.g., "half-elf" -> "RACE_HALF_ELF"
func fromAPIFormat(apiID, prefix string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(apiID, "-", "_"))
}

var _ compendium.Catalog = (*Catalog)(nil)
