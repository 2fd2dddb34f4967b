package testutils

import (
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"

	// TestCharacterID is the ID the fixtures carry once stored
	TestCharacterID = "char-test-001"
)

// CreateTestCharacter creates a stored level 3 dwarf fighter with sensible defaults
func CreateTestCharacter() *actor.Character {
	char := actor.NewCharacter(TestCharacterName)
	char.ID = TestCharacterID

	for code, score := range CreateTestAbilityScores() {
		char.System.Abilities[code] = &actor.Ability{Value: score}
	}
	char.System.Abilities[actor.AbilityStr].Proficient = actor.ProficiencyProficient
	char.System.Abilities[actor.AbilityCon].Proficient = actor.ProficiencyProficient
	char.System.Skills[actor.SkillAthletics] = &actor.Skill{Value: actor.ProficiencyProficient}
	char.System.Skills[actor.SkillIntimidation] = &actor.Skill{Value: actor.ProficiencyProficient}

	char.System.Attributes.HP = actor.HitPoints{Value: 28, Max: 28}
	flat := 16
	char.System.Attributes.AC = actor.ArmorClass{Flat: &flat, Calc: actor.CalcFlat}
	char.System.Attributes.Movement = &actor.Movement{Walk: 25}
	char.System.Details.Background = "soldier"
	char.System.Details.Alignment = "lawful-good"
	char.System.Details.XP.Value = 900
	char.System.Currency = actor.Currency{GP: 15, SP: 4}

	return char
}

// CreateTestItems creates the items owned by the test character
func CreateTestItems() []*actor.Item {
	return []*actor.Item{
		{ID: "item-race", Name: "Dwarf (Mountain Dwarf)", Type: actor.ItemTypeRace},
		{ID: "item-class", Name: "Fighter", Type: actor.ItemTypeClass, System: map[string]any{"levels": 3}},
		{
			ID:     "item-weapon",
			Name:   "Warhammer",
			Type:   actor.ItemTypeWeapon,
			System: map[string]any{"quantity": 1},
			Labels: map[string]string{"toHit": "+5", "damage": "1d8+3", "damageTypes": "bludgeoning"},
		},
		{
			ID:     "item-armor",
			Name:   "Chain Mail",
			Type:   actor.ItemTypeEquipment,
			System: map[string]any{"armor": map[string]any{"type": "heavy", "value": 16}},
		},
		{ID: "item-rope", Name: "Rope, Hempen (50 feet)", Type: actor.ItemTypeLoot, System: map[string]any{"quantity": 1}},
	}
}

// CreateTestAbilityScores creates standard array ability scores keyed by ability code
func CreateTestAbilityScores() map[string]int {
	return map[string]int{
		actor.AbilityStr: 15,
		actor.AbilityDex: 10,
		actor.AbilityCon: 14,
		actor.AbilityInt: 8,
		actor.AbilityWis: 12,
		actor.AbilityCha: 13,
	}
}
