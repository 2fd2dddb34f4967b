// Package mocks provides mock expectation helpers for common testing patterns.
// Contexts are matched with gomock.Any() because traced callers derive their own.
package mocks

import (
	"context"
	"fmt"

	"go.uber.org/mock/gomock"

	compendiummock "github.com/KirkDiggler/rpg-companion/internal/compendium/mock"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	characterrepo "github.com/KirkDiggler/rpg-companion/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/rpg-companion/internal/repositories/character/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading a character with its items
func ExpectCharacterGet(
	mockRepo *characterrepomock.MockRepository,
	characterID string, char *actor.Character, items []*actor.Item, err error,
) {
	if err != nil {
		mockRepo.EXPECT().
			Get(gomock.Any(), characterrepo.GetInput{ID: characterID}).
			Return(nil, err)
		return
	}
	mockRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: characterID}).
		Return(&characterrepo.GetOutput{Character: char, Items: items}, nil)
}

// ExpectCharacterCreate sets up a mock expectation for storing a character.
// The repository is simulated by assigning characterID.
func ExpectCharacterCreate(mockRepo *characterrepomock.MockRepository, characterID string) *gomock.Call {
	return mockRepo.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ context.Context, input characterrepo.CreateCharacterInput,
		) (*characterrepo.CreateCharacterOutput, error) {
			stored := *input.Character
			stored.ID = characterID
			return &characterrepo.CreateCharacterOutput{Character: &stored}, nil
		})
}

// ExpectItemsAttach sets up a mock expectation for attaching items to a character.
// The repository is simulated by giving every item a sequential ID.
func ExpectItemsAttach(mockRepo *characterrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		AttachItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ context.Context, input characterrepo.AttachItemsInput,
		) (*characterrepo.AttachItemsOutput, error) {
			stored := make([]*actor.Item, len(input.Items))
			for i, item := range input.Items {
				clone := item.Clone()
				clone.ID = fmt.Sprintf("%s-item-%d", input.CharacterID, i+1)
				stored[i] = clone
			}
			return &characterrepo.AttachItemsOutput{Items: stored}, nil
		})
}

// ExpectResolve sets up a mock expectation for a resolver lookup
func ExpectResolve(
	mockResolver *compendiummock.MockResolver, name, itemType string, item *actor.Item,
) *gomock.Call {
	return mockResolver.EXPECT().
		Resolve(gomock.Any(), name, itemType).
		Return(item, nil)
}
