// Package sheet projects a character onto the named fields of a fillable character sheet
package sheet

//go:generate mockgen -destination=mock/mock_sheet.go -package=sheetmock github.com/KirkDiggler/rpg-companion/internal/services/sheet Projector,FieldSink

import (
	"context"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
)

// Projector computes sheet field values for a character
type Projector interface {
	// ProjectSheet never mutates its input. Derived values the character lacks
	// (modifiers, saves, spell DC) are computed from the raw scores.
	// Returns errors.InvalidArgument when the character is missing
	ProjectSheet(ctx context.Context, input *ProjectSheetInput) (*ProjectSheetOutput, error)
}

// ProjectSheetInput defines the input for a projection
type ProjectSheetInput struct {
	Character  *actor.Character
	Items      []*actor.Item
	PlayerName string
}

// ProjectSheetOutput defines the output for a projection
type ProjectSheetOutput struct {
	Fields *Fields
}

// FieldSink is a document with named fields.
// Both methods are no-ops for names the document does not have; an error
// means the document itself could not be written.
type FieldSink interface {
	SetText(name, value string) error
	SetChecked(name string) error
}
