// Package character defines the interface for companion character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-companion/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet"
)

// Service defines the interface for companion character operations
type Service interface {
	// Conversion
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)
	ExportCharacter(ctx context.Context, input *ExportCharacterInput) (*ExportCharacterOutput, error)
	ProjectSheet(ctx context.Context, input *ProjectSheetInput) (*ProjectSheetOutput, error)

	// Stored characters
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Catalog lookups
	ResolveItem(ctx context.Context, input *ResolveItemInput) (*ResolveItemOutput, error)
}

// Conversion types

// ImportCharacterInput defines the request for importing an export document
type ImportCharacterInput struct {
	// Data is the raw export JSON
	Data []byte
}

// ImportCharacterOutput defines the response for importing an export document
type ImportCharacterOutput struct {
	Character *actor.Character
	Items     []*actor.Item

	// Unresolved lists the item names that became placeholders
	Unresolved []string
}

// ExportCharacterInput defines the request for exporting a stored character
type ExportCharacterInput struct {
	CharacterID string
}

// ExportCharacterOutput defines the response for exporting a stored character
type ExportCharacterOutput struct {
	Export *companion.Export

	// Data is the pretty-printed export JSON
	Data     []byte
	Filename string
}

// ProjectSheetInput defines the request for projecting a stored character onto a sheet
type ProjectSheetInput struct {
	CharacterID string
	PlayerName  string
}

// ProjectSheetOutput defines the response for projecting a stored character onto a sheet
type ProjectSheetOutput struct {
	Fields        *sheet.Fields
	CharacterName string
}

// Stored character types

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *actor.Character
	Items     []*actor.Item
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	Limit int
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*actor.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// Catalog lookup types

// ResolveItemInput defines the request for resolving a name against the catalogs
type ResolveItemInput struct {
	Name string
	Type string // Optional
}

// ResolveItemOutput defines the response for resolving a name against the catalogs
type ResolveItemOutput struct {
	// Item is nil when no catalog matched
	Item *actor.Item
}
