// Package actor holds the virtual-tabletop actor and item data model
package actor

import "fmt"

// Document types
const (
	TypeCharacter = "character"

	ItemTypeRace       = "race"
	ItemTypeClass      = "class"
	ItemTypeSpell      = "spell"
	ItemTypeWeapon     = "weapon"
	ItemTypeEquipment  = "equipment"
	ItemTypeLoot       = "loot"
	ItemTypeConsumable = "consumable"
	ItemTypeBackpack   = "backpack"
	ItemTypeTool       = "tool"
)

// Defaults applied to newly imported characters
const (
	DefaultImg  = "icons/svg/mystery-man.svg"
	SizeMedium  = "med"
	CalcFlat    = "flat"
	DefaultName = "New Character"

	PreparationModePrepared = "prepared"
)

// Proficiency levels for abilities and skills
const (
	ProficiencyNone       = 0
	ProficiencyProficient = 1
	ProficiencyExpert     = 2
)

// Ability codes
const (
	AbilityStr = "str"
	AbilityDex = "dex"
	AbilityCon = "con"
	AbilityInt = "int"
	AbilityWis = "wis"
	AbilityCha = "cha"
)

// AbilityCodes lists the six ability codes in sheet order
var AbilityCodes = []string{AbilityStr, AbilityDex, AbilityCon, AbilityInt, AbilityWis, AbilityCha}

// Skill codes
const (
	SkillAcrobatics     = "acr"
	SkillAnimalHandling = "ani"
	SkillArcana         = "arc"
	SkillAthletics      = "ath"
	SkillDeception      = "dec"
	SkillHistory        = "his"
	SkillInsight        = "ins"
	SkillIntimidation   = "itm"
	SkillInvestigation  = "inv"
	SkillMedicine       = "med"
	SkillNature         = "nat"
	SkillPerception     = "prc"
	SkillPerformance    = "prf"
	SkillPersuasion     = "per"
	SkillReligion       = "rel"
	SkillSleightOfHand  = "slt"
	SkillStealth        = "ste"
	SkillSurvival       = "sur"
)

// SkillCodes lists the eighteen skill codes in sheet order
var SkillCodes = []string{
	SkillAcrobatics, SkillAnimalHandling, SkillArcana, SkillAthletics, SkillDeception, SkillHistory,
	SkillInsight, SkillIntimidation, SkillInvestigation, SkillMedicine, SkillNature, SkillPerception,
	SkillPerformance, SkillPersuasion, SkillReligion, SkillSleightOfHand, SkillStealth, SkillSurvival,
}

// SkillAbilities maps each skill to the ability it keys off
var SkillAbilities = map[string]string{
	SkillAcrobatics:     AbilityDex,
	SkillAnimalHandling: AbilityWis,
	SkillArcana:         AbilityInt,
	SkillAthletics:      AbilityStr,
	SkillDeception:      AbilityCha,
	SkillHistory:        AbilityInt,
	SkillInsight:        AbilityWis,
	SkillIntimidation:   AbilityCha,
	SkillInvestigation:  AbilityInt,
	SkillMedicine:       AbilityWis,
	SkillNature:         AbilityInt,
	SkillPerception:     AbilityWis,
	SkillPerformance:    AbilityCha,
	SkillPersuasion:     AbilityCha,
	SkillReligion:       AbilityInt,
	SkillSleightOfHand:  AbilityDex,
	SkillStealth:        AbilityDex,
	SkillSurvival:       AbilityWis,
}

// GearTypes are the item types listed in a character's inventory block
var GearTypes = map[string]bool{
	ItemTypeEquipment:  true,
	ItemTypeLoot:       true,
	ItemTypeConsumable: true,
	ItemTypeBackpack:   true,
	ItemTypeTool:       true,
	ItemTypeWeapon:     true,
}

// SpellSlotKey returns the spell pool key for a spell level, e.g. 3 -> "spell3"
func SpellSlotKey(level int) string {
	return fmt.Sprintf("spell%d", level)
}
