// Package exporter maps tabletop characters and their items back to companion-app exports
package exporter

//go:generate mockgen -destination=mock/mock_exporter.go -package=exportermock github.com/KirkDiggler/rpg-companion/internal/services/exporter Exporter

import (
	"context"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
)

// Exporter maps a character and its items to an export document
type Exporter interface {
	// ExportCharacter builds the export document. The mapping is lossy: expertise
	// saves collapse to a boolean and only bucketed item types are listed.
	// Returns errors.InvalidArgument when the character is missing
	ExportCharacter(ctx context.Context, input *ExportCharacterInput) (*ExportCharacterOutput, error)
}

// ExportCharacterInput defines the input for an export
type ExportCharacterInput struct {
	Character *actor.Character
	Items     []*actor.Item
}

// ExportCharacterOutput defines the output for an export
type ExportCharacterOutput struct {
	Export *companion.Export

	// Filename is the suggested download name, e.g. "thorin.cah"
	Filename string
}
