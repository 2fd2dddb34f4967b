package srd

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
)

func raceToItem(id string, race *entities.Race) *actor.Item {
	if race == nil {
		return nil
	}

	languages := make([]any, 0, len(race.Languages))
	for _, lang := range race.Languages {
		languages = append(languages, strings.ToLower(lang.Name))
	}

	return &actor.Item{
		ID:   id,
		Name: race.Name,
		Type: actor.ItemTypeRace,
		System: map[string]any{
			"identifier":  race.Key,
			"description": map[string]any{"value": race.SizeDescription},
			"movement":    map[string]any{"walk": race.Speed},
			"traits": map[string]any{
				"size":      sizeCode(race.Size),
				"languages": map[string]any{"value": languages},
			},
		},
	}
}

func classToItem(id string, class *entities.Class) *actor.Item {
	if class == nil {
		return nil
	}

	return &actor.Item{
		ID:   id,
		Name: class.Name,
		Type: actor.ItemTypeClass,
		System: map[string]any{
			"identifier": class.Key,
			"levels":     1,
			"hitDice":    fmt.Sprintf("d%d", class.HitDie),
		},
	}
}

func spellToItem(id string, spell *entities.Spell) *actor.Item {
	if spell == nil {
		return nil
	}

	school := ""
	if spell.SpellSchool != nil {
		school = schoolCode(spell.SpellSchool.Name)
	}

	return &actor.Item{
		ID:   id,
		Name: spell.Name,
		Type: actor.ItemTypeSpell,
		System: map[string]any{
			"identifier":  spell.Key,
			"level":       spell.SpellLevel,
			"school":      school,
			"description": map[string]any{"value": buildSpellDescription(spell)},
			"components": map[string]any{
				"ritual":        spell.Ritual,
				"concentration": spell.Concentration,
			},
			"preparation": map[string]any{
				"mode":     actor.PreparationModePrepared,
				"prepared": false,
			},
		},
	}
}

// equipmentToItem converts SRD equipment to an item of the matching type
func equipmentToItem(id string, equipment dnd5e.EquipmentInterface) *actor.Item {
	if equipment == nil {
		return nil
	}

	switch eq := equipment.(type) {
	case *entities.Weapon:
		system := baseGear(eq.Weight, eq.Cost)
		system["weaponType"] = weaponType(eq.WeaponCategory, eq.WeaponRange)
		if eq.Damage != nil {
			damageType := ""
			if eq.Damage.DamageType != nil {
				damageType = strings.ToLower(eq.Damage.DamageType.Name)
			}
			system["damage"] = map[string]any{
				"parts": []any{[]any{eq.Damage.DamageDice, damageType}},
			}
		}
		properties := make([]any, 0, len(eq.Properties))
		for _, prop := range eq.Properties {
			properties = append(properties, strings.ToLower(prop.Name))
		}
		system["properties"] = properties
		return &actor.Item{ID: id, Name: eq.Name, Type: actor.ItemTypeWeapon, System: system}

	case *entities.Armor:
		system := baseGear(eq.Weight, eq.Cost)
		armor := map[string]any{"type": strings.ToLower(eq.ArmorCategory)}
		if eq.ArmorClass != nil {
			armor["value"] = eq.ArmorClass.Base
			armor["dex"] = eq.ArmorClass.DexBonus
		}
		system["armor"] = armor
		system["strength"] = eq.StrMinimum
		system["stealth"] = eq.StealthDisadvantage
		return &actor.Item{ID: id, Name: eq.Name, Type: actor.ItemTypeEquipment, System: system}

	case *entities.Equipment:
		itemType := actor.ItemTypeLoot
		if eq.EquipmentCategory != nil && eq.EquipmentCategory.Key == "tools" {
			itemType = actor.ItemTypeTool
		}
		return &actor.Item{ID: id, Name: eq.Name, Type: itemType, System: baseGear(eq.Weight, eq.Cost)}
	}

	return nil
}

func baseGear(weight any, cost *entities.Cost) map[string]any {
	system := map[string]any{
		"quantity": 1,
		"weight":   weight,
	}
	if cost != nil {
		system["price"] = map[string]any{
			"value":        cost.Quantity,
			"denomination": cost.Unit,
		}
	}
	return system
}

// weaponType builds the tabletop weapon type, e.g. "Martial"/"Melee" -> "martialM"
func weaponType(category, weaponRange string) string {
	suffix := "M"
	if strings.EqualFold(weaponRange, "ranged") {
		suffix = "R"
	}
	return strings.ToLower(category) + suffix
}

// sizeCode maps an SRD size to the tabletop size code
func sizeCode(size string) string {
	switch strings.ToLower(size) {
	case "tiny":
		return "tiny"
	case "small":
		return "sm"
	case "large":
		return "lg"
	case "huge":
		return "huge"
	case "gargantuan":
		return "grg"
	default:
		return actor.SizeMedium
	}
}

// schoolCode maps a school name to its three letter code
func schoolCode(name string) string {
	lower := strings.ToLower(name)
	if len(lower) < 3 {
		return lower
	}
	return lower[:3]
}

// buildSpellDescription creates a description from the available spell data
func buildSpellDescription(spell *entities.Spell) string {
	levelStr := "Cantrip"
	if spell.SpellLevel > 0 {
		levelStr = fmt.Sprintf("Level %d", spell.SpellLevel)
	}
	schoolName := "Unknown School"
	if spell.SpellSchool != nil {
		schoolName = spell.SpellSchool.Name
	}

	parts := []string{fmt.Sprintf("%s %s spell", levelStr, schoolName)}
	if spell.CastingTime != "" {
		parts = append(parts, "Casting Time: "+spell.CastingTime)
	}
	if spell.Range != "" {
		parts = append(parts, "Range: "+spell.Range)
	}
	if spell.Duration != "" {
		parts = append(parts, "Duration: "+spell.Duration)
	}

	var properties []string
	if spell.Ritual {
		properties = append(properties, "Ritual")
	}
	if spell.Concentration {
		properties = append(properties, "Concentration")
	}
	if len(properties) > 0 {
		parts = append(parts, "Properties: "+strings.Join(properties, ", "))
	}

	if spell.DC != nil {
		dcInfo := "Saving Throw"
		if spell.DC.DCType != nil {
			dcInfo = spell.DC.DCType.Name + " Save"
		}
		parts = append(parts, dcInfo)
	}

	var classNames []string
	for _, class := range spell.SpellClasses {
		if class != nil {
			classNames = append(classNames, class.Name)
		}
	}
	if len(classNames) > 0 {
		parts = append(parts, "Classes: "+strings.Join(classNames, ", "))
	}

	return "<p>" + strings.Join(parts, ". ") + "</p>"
}
