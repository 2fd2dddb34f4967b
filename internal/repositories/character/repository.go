// Package character provides the host store for imported characters and their items
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-companion/internal/repositories/character Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
)

// Repository defines the interface for character persistence
type Repository interface {
	// CreateCharacter stores a new character, assigning an ID when it has none
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	// Returns errors.Internal for storage failures
	CreateCharacter(ctx context.Context, input CreateCharacterInput) (*CreateCharacterOutput, error)

	// AttachItems stores items owned by a character in one transaction.
	// Items without an ID are assigned one; order is preserved.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	AttachItems(ctx context.Context, input AttachItemsInput) (*AttachItemsOutput, error)

	// Get retrieves a character and its items by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns stored characters, oldest first
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a character and its items
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// FindItem returns the first stored item with the given name and type, or nil.
	// Name comparison is case-insensitive.
	// Returns errors.Internal for storage failures
	FindItem(ctx context.Context, input FindItemInput) (*FindItemOutput, error)
}

// CreateCharacterInput defines the input for creating a character
type CreateCharacterInput struct {
	Character *actor.Character
}

// CreateCharacterOutput defines the output for creating a character
type CreateCharacterOutput struct {
	Character *actor.Character
	CreatedAt time.Time
}

// AttachItemsInput defines the input for attaching items to a character
type AttachItemsInput struct {
	CharacterID string
	Items       []*actor.Item
}

// AttachItemsOutput defines the output for attaching items to a character
type AttachItemsOutput struct {
	Items []*actor.Item
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *actor.Character
	Items     []*actor.Item
}

// ListInput defines the input for listing characters
type ListInput struct {
	// Limit caps the number of characters returned; 0 means no limit
	Limit int
}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*actor.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// FindItemInput defines the input for finding a stored item
type FindItemInput struct {
	Name string
	Type string
}

// FindItemOutput defines the output for finding a stored item
type FindItemOutput struct {
	// Item is nil when nothing matched
	Item *actor.Item
}
