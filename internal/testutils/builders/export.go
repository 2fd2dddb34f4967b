// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
)

// ExportBuilder provides a fluent interface for building companion exports
type ExportBuilder struct {
	doc *companion.Export
}

// NewExportBuilder creates a new builder with minimal defaults
func NewExportBuilder() *ExportBuilder {
	return &ExportBuilder{
		doc: &companion.Export{
			Name: "Test Hero",
			HP:   12,
		},
	}
}

// WithName sets the character name
func (b *ExportBuilder) WithName(name string) *ExportBuilder {
	b.doc.Name = name
	return b
}

// WithHP sets hit points
func (b *ExportBuilder) WithHP(hp int) *ExportBuilder {
	b.doc.HP = hp
	return b
}

// WithAC sets base and extra armor class
func (b *ExportBuilder) WithAC(base, extra int) *ExportBuilder {
	b.doc.BaseAC = base
	b.doc.ExtraAC = extra
	return b
}

// WithAbility sets a root-level ability entry
func (b *ExportBuilder) WithAbility(key string, score int, save bool) *ExportBuilder {
	b.doc.SetAbility(key, &companion.Ability{Score: score, Save: save})
	return b
}

// WithRolledAbilities rolls 3d6 for every ability; saves alternate starting with strength
func (b *ExportBuilder) WithRolledAbilities(roller dice.Roller) *ExportBuilder {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	for i, key := range companion.AbilityKeys {
		rolls, err := roller.RollN(3, 6)
		if err != nil {
			panic(err)
		}
		score := 0
		for _, r := range rolls {
			score += r
		}
		b.WithAbility(key, score, i%2 == 0)
	}
	return b
}

// WithSkill adds a skill entry
func (b *ExportBuilder) WithSkill(typeName, proficiency string) *ExportBuilder {
	b.doc.Skills = append(b.doc.Skills, companion.Skill{TypeName: typeName, ProficiencyName: proficiency})
	return b
}

// WithRace sets the race, subrace and walking speed
func (b *ExportBuilder) WithRace(raceID, subraceID string, speed int) *ExportBuilder {
	b.doc.Race = &companion.Race{RaceID: raceID, SubraceID: subraceID}
	if speed > 0 {
		b.doc.Race.Speed = &companion.Speed{Normal: speed}
	}
	return b
}

// WithBackground sets the background identifier
func (b *ExportBuilder) WithBackground(backgroundID string) *ExportBuilder {
	b.doc.Background = &companion.Background{BackgroundID: backgroundID}
	return b
}

// WithAlignment sets the alignment identifier
func (b *ExportBuilder) WithAlignment(alignment string) *ExportBuilder {
	b.doc.AlignmentName = alignment
	return b
}

// WithXP sets experience points
func (b *ExportBuilder) WithXP(xp int) *ExportBuilder {
	b.doc.XP = xp
	return b
}

// WithCurrency sets the root-level coin counts
func (b *ExportBuilder) WithCurrency(cp, sp, ep, gp, pp int) *ExportBuilder {
	b.doc.Copper, b.doc.Silver, b.doc.Electrum, b.doc.Gold, b.doc.Platinum = cp, sp, ep, gp, pp
	return b
}

// WithJob adds a class entry with optional embedded equipment
func (b *ExportBuilder) WithJob(jobID string, level int, equipment ...companion.EquipmentEntry) *ExportBuilder {
	b.doc.Jobs = append(b.doc.Jobs, companion.Job{JobID: jobID, Level: level, Equipment: equipment})
	return b
}

// WithSpell adds a known spell
func (b *ExportBuilder) WithSpell(name string, level int, prepared bool) *ExportBuilder {
	b.doc.Spells = append(b.doc.Spells, companion.Spell{Name: name, Level: level, Prepared: prepared})
	return b
}

// WithEquipment adds a root-level equipment entry
func (b *ExportBuilder) WithEquipment(entry companion.EquipmentEntry) *ExportBuilder {
	b.doc.Equipment = append(b.doc.Equipment, entry)
	return b
}

// WithWeapon adds a weapon entry
func (b *ExportBuilder) WithWeapon(name string, count int) *ExportBuilder {
	b.doc.Weapons = append(b.doc.Weapons, Entry(name, count))
	return b
}

// WithArmor adds an armor entry
func (b *ExportBuilder) WithArmor(name string) *ExportBuilder {
	b.doc.Armors = append(b.doc.Armors, Entry(name, 1))
	return b
}

// WithInventory adds a generic inventory entry
func (b *ExportBuilder) WithInventory(name string, count int) *ExportBuilder {
	b.doc.Inventory = append(b.doc.Inventory, Entry(name, count))
	return b
}

// Build returns the export
func (b *ExportBuilder) Build() *companion.Export {
	return b.doc
}

// Entry builds a single named equipment entry
func Entry(name string, count int) companion.EquipmentEntry {
	return companion.EquipmentEntry{Name: name, Count: count}
}

// Group builds an equipment group from models
func Group(models ...companion.EquipmentModel) companion.EquipmentEntry {
	if models == nil {
		models = []companion.EquipmentModel{}
	}
	return companion.EquipmentEntry{EquipmentsModels: models}
}

// Model builds one model inside an equipment group
func Model(name string, number int, description string) companion.EquipmentModel {
	return companion.EquipmentModel{Name: name, Number: number, Description: description}
}
