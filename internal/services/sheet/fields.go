package sheet

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
)

// Field names of the fillable 5e character sheet. The odd spacing is part of the name.
const (
	FieldCharacterName = "CharacterName"
	FieldPlayerName    = "PlayerName"
	FieldBackground    = "Background"
	FieldRace          = "Race "
	FieldAlignment     = "Alignment"
	FieldXP            = "XP"
	FieldClassLevel    = "ClassLevel"

	FieldHPMax      = "HPMax"
	FieldHPCurrent  = "HPCurrent"
	FieldAC         = "AC"
	FieldInitiative = "Initiative"
	FieldSpeed      = "Speed"
	FieldPassive    = "Passive"
	FieldProfBonus  = "ProfBonus"
	FieldEquipment  = "Equipment"

	FieldSpellcastingAbility = "SpellcastingAbility 2"
	FieldSpellcastingClass   = "Spellcasting Class 2"
	FieldSpellSaveDC         = "SpellSaveDC  2"
	FieldSpellAtkBonus       = "SpellAtkBonus 2"
)

const (
	maxWeapons        = 3
	maxSpellsPerLevel = 9
	maxSpellLevel     = 9
)

type abilitySlot struct {
	display string
	score   string
	mod     string
	save    string
	saveBox string
}

var abilitySlots = map[string]abilitySlot{
	actor.AbilityStr: {"Strength", "STR", "STRmod", "ST Strength", "Check Box 11"},
	actor.AbilityDex: {"Dexterity", "DEX", "DEXmod ", "ST Dexterity", "Check Box 18"},
	actor.AbilityCon: {"Constitution", "CON", "CONmod", "ST Constitution", "Check Box 19"},
	actor.AbilityInt: {"Intelligence", "INT", "INTmod", "ST Intelligence", "Check Box 20"},
	actor.AbilityWis: {"Wisdom", "WIS", "WISmod", "ST Wisdom", "Check Box 21"},
	actor.AbilityCha: {"Charisma", "CHA", "CHamod", "ST Charisma", "Check Box 22"},
}

type skillSlot struct {
	total string
	box   string
}

var skillSlots = map[string]skillSlot{
	actor.SkillAcrobatics:     {"Acrobatics", "Check Box 23"},
	actor.SkillAnimalHandling: {"Animal", "Check Box 24"},
	actor.SkillArcana:         {"Arcana", "Check Box 25"},
	actor.SkillAthletics:      {"Athletics", "Check Box 26"},
	actor.SkillDeception:      {"Deception ", "Check Box 27"},
	actor.SkillHistory:        {"History ", "Check Box 28"},
	actor.SkillInsight:        {"Insight", "Check Box 29"},
	actor.SkillIntimidation:   {"Intimidation", "Check Box 30"},
	actor.SkillInvestigation:  {"Investigation ", "Check Box 31"},
	actor.SkillMedicine:       {"Medicine", "Check Box 32"},
	actor.SkillNature:         {"Nature", "Check Box 33"},
	actor.SkillPerception:     {"Perception ", "Check Box 34"},
	actor.SkillPerformance:    {"Performance", "Check Box 35"},
	actor.SkillPersuasion:     {"Persuasion", "Check Box 36"},
	actor.SkillReligion:       {"Religion", "Check Box 37"},
	actor.SkillSleightOfHand:  {"SleightofHand", "Check Box 38"},
	actor.SkillStealth:        {"Stealth ", "Check Box 39"},
	actor.SkillSurvival:       {"Survival", "Check Box 40"},
}

type weaponSlot struct {
	name   string
	attack string
	damage string
}

var weaponSlots = [maxWeapons]weaponSlot{
	{"Wpn Name", "Wpn1 AtkBonus", "Wpn1 Damage"},
	{"Wpn Name 2", "Wpn2 AtkBonus ", "Wpn2 Damage "},
	{"Wpn Name 3", "Wpn3 AtkBonus  ", "Wpn3 Damage "},
}

// currencySlots lists denominations in sheet order
var currencySlots = []struct {
	field string
	value func(actor.Currency) int
}{
	{"CP", func(c actor.Currency) int { return c.CP }},
	{"SP", func(c actor.Currency) int { return c.SP }},
	{"EP", func(c actor.Currency) int { return c.EP }},
	{"GP", func(c actor.Currency) int { return c.GP }},
	{"PP", func(c actor.Currency) int { return c.PP }},
}

// cantripSlots is the sheet's cantrip field order; the last printed slot is 1015
var cantripSlots = [maxSpellsPerLevel]int{1014, 1016, 1017, 1018, 1019, 1020, 1021, 1022, 1015}

// spellLevelStart is the first spell field of each level
var spellLevelStart = [maxSpellLevel + 1]int{0, 1023, 1032, 1041, 1050, 1059, 1068, 1077, 1086, 1095}

// spellcastingAbilities maps class name fragments to their casting ability, first match wins
var spellcastingAbilities = []struct {
	class   string
	ability string
}{
	{"wizard", actor.AbilityInt},
	{"artificer", actor.AbilityInt},
	{"bard", actor.AbilityCha},
	{"sorcerer", actor.AbilityCha},
	{"paladin", actor.AbilityCha},
	{"warlock", actor.AbilityCha},
	{"cleric", actor.AbilityWis},
	{"druid", actor.AbilityWis},
	{"ranger", actor.AbilityWis},
}

func spellField(n int) string {
	return "Spells " + strconv.Itoa(n)
}

// slot pools are numbered 19-27 on the sheet
func slotsTotalField(level int) string {
	return fmt.Sprintf("SlotsTotal %d", 18+level)
}

func slotsRemainingField(level int) string {
	return fmt.Sprintf("SlotsRemaining %d", 18+level)
}

// FieldNames lists every field the projector can write
func FieldNames() []string {
	names := []string{
		FieldCharacterName, FieldPlayerName, FieldBackground, FieldRace, FieldAlignment, FieldXP, FieldClassLevel,
		FieldHPMax, FieldHPCurrent, FieldAC, FieldInitiative, FieldSpeed, FieldPassive, FieldProfBonus,
		FieldEquipment, FieldSpellcastingAbility, FieldSpellcastingClass, FieldSpellSaveDC, FieldSpellAtkBonus,
	}
	for _, code := range actor.AbilityCodes {
		slot := abilitySlots[code]
		names = append(names, slot.score, slot.mod, slot.save, slot.saveBox)
	}
	for _, code := range actor.SkillCodes {
		slot := skillSlots[code]
		names = append(names, slot.total, slot.box)
	}
	for _, slot := range weaponSlots {
		names = append(names, slot.name, slot.attack, slot.damage)
	}
	for _, c := range currencySlots {
		names = append(names, c.field)
	}
	for _, n := range cantripSlots {
		names = append(names, spellField(n))
	}
	for level := 1; level <= maxSpellLevel; level++ {
		for i := 0; i < maxSpellsPerLevel; i++ {
			names = append(names, spellField(spellLevelStart[level]+i))
		}
		names = append(names, slotsTotalField(level), slotsRemainingField(level))
	}
	return names
}
