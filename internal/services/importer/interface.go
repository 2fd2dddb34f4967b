// Package importer maps companion-app exports onto tabletop characters and items
package importer

//go:generate mockgen -destination=mock/mock_importer.go -package=importermock github.com/KirkDiggler/rpg-companion/internal/services/importer Importer

import (
	"context"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
)

// Event types published while importing
const (
	EventItemUnresolved = "companion.item.unresolved"
	EventSkillUnmapped  = "companion.skill.unmapped"
)

// Event context keys
const (
	EventKeyName     = "name"
	EventKeyItemType = "item_type"
	EventKeySkill    = "skill"
)

// Importer maps an export document to a character and its items
type Importer interface {
	// ImportCharacter builds the character and every item it owns. Items are
	// returned in creation order and have no IDs; the caller persists them.
	// Returns errors.InvalidArgument when the export is missing
	// Returns the context error if the context ends during catalog resolution
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)
}

// ImportCharacterInput defines the input for an import
type ImportCharacterInput struct {
	Export *companion.Export
}

// ImportCharacterOutput defines the output for an import
type ImportCharacterOutput struct {
	Character *actor.Character
	Items     []*actor.Item

	// Unresolved lists the item names that became placeholders
	Unresolved []string
}
