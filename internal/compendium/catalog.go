// Package compendium resolves item names against an ordered list of reference catalogs
package compendium

//go:generate mockgen -destination=mock/mock_catalog.go -package=compendiummock github.com/KirkDiggler/rpg-companion/internal/compendium Catalog,IndexedCatalog,ExternalProvider,Resolver

import (
	"context"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
)

// Index fields requested from catalogs
const (
	FieldName = "name"
	FieldType = "type"
)

// IndexFields is the field set the resolver asks every catalog to index
var IndexFields = []string{FieldName, FieldType}

// IndexEntry is one row of a catalog index
type IndexEntry struct {
	ID   string
	Name string
	Type string
}

// Catalog is a read-only collection of pre-authored item records
type Catalog interface {
	// Name identifies the catalog in logs
	Name() string

	// GetIndex lists every record in the catalog with at least the requested fields populated
	GetIndex(ctx context.Context, fields []string) ([]IndexEntry, error)

	// GetDocument returns the full record for an index ID
	// Returns errors.NotFound if the ID is not in the catalog
	GetDocument(ctx context.Context, id string) (*actor.Item, error)
}

// IndexedCatalog is a catalog that can answer a name lookup without a full index scan
type IndexedCatalog interface {
	Catalog

	// Lookup returns the first entry whose name matches case-insensitively and,
	// when itemType is not empty, whose type equals it. Returns nil when nothing matches.
	Lookup(ctx context.Context, name, itemType string) (*IndexEntry, error)
}

// ExternalProvider is an optional lookup consulted after every catalog misses
type ExternalProvider interface {
	// TryResolveExternal returns a record for the name and type, or nil when it has none
	TryResolveExternal(ctx context.Context, name, itemType string) (*actor.Item, error)
}

// Resolver resolves item names to catalog records
type Resolver interface {
	// Resolve returns a deep copy of the first matching catalog record, or nil when
	// no catalog has one. A miss is not an error; the only errors are context errors.
	Resolve(ctx context.Context, name, itemType string) (*actor.Item, error)
}

// FoldName normalises a name for case-insensitive comparison
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// Matches reports whether an index entry satisfies a name and optional type constraint
func Matches(entry IndexEntry, foldedName, itemType string) bool {
	if itemType != "" && entry.Type != itemType {
		return false
	}
	return FoldName(entry.Name) == foldedName
}
