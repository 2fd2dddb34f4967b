package exporter_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/compendium/pack"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/services/exporter"
	"github.com/KirkDiggler/rpg-companion/internal/services/importer"
	"github.com/KirkDiggler/rpg-companion/internal/testutils/builders"
)

type ExporterTestSuite struct {
	suite.Suite
	ctx       context.Context
	exporter  exporter.Exporter
	importer  importer.Importer
	character *actor.Character
}

func (s *ExporterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.exporter = exporter.New()

	srd := pack.New("srd", []*actor.Item{
		{Name: "Wizard", Type: actor.ItemTypeClass, System: map[string]any{"hitDice": "d6"}},
		{Name: "Elf", Type: actor.ItemTypeRace},
	})
	service, err := compendium.New(&compendium.Config{Catalogs: []compendium.Catalog{srd}})
	s.Require().NoError(err)
	s.importer, err = importer.New(&importer.Config{Resolver: service})
	s.Require().NoError(err)

	flat := 16
	s.character = actor.NewCharacter("Thorin Oakenshield")
	s.character.System.Attributes.HP = actor.HitPoints{Value: 20, Max: 31}
	s.character.System.Attributes.AC = actor.ArmorClass{Flat: &flat, Calc: actor.CalcFlat}
	s.character.System.Details = actor.Details{
		XP:         actor.Experience{Value: 2700},
		Alignment:  "Chaotic Good",
		Background: "Folk Hero",
	}
	s.character.System.Currency = actor.Currency{GP: 12}
	s.character.System.Abilities[actor.AbilityStr] = &actor.Ability{Value: 16, Proficient: 1}
	s.character.System.Abilities[actor.AbilityCon] = &actor.Ability{Value: 14, Proficient: 2}
	s.character.System.Skills[actor.SkillAthletics] = &actor.Skill{Value: 1}
	s.character.System.Skills[actor.SkillStealth] = &actor.Skill{Value: 2}
	s.character.System.Skills[actor.SkillArcana] = &actor.Skill{Value: 0}
	s.character.System.Attributes.Movement = &actor.Movement{Walk: 25}
}

func (s *ExporterTestSuite) export(items ...*actor.Item) *exporter.ExportCharacterOutput {
	out, err := s.exporter.ExportCharacter(s.ctx, &exporter.ExportCharacterInput{
		Character: s.character,
		Items:     items,
	})
	s.Require().NoError(err)
	return out
}

func (s *ExporterTestSuite) TestExportCharacter_MissingCharacter() {
	_, err := s.exporter.ExportCharacter(s.ctx, &exporter.ExportCharacterInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.exporter.ExportCharacter(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExporterTestSuite) TestExportCharacter_Scalars() {
	out := s.export()
	doc := out.Export

	s.Equal("thorin_oakenshield.cah", out.Filename)
	s.Equal("Thorin Oakenshield", doc.Name)
	s.Equal(31, doc.HP)
	s.Equal(16, doc.BaseAC)
	s.Zero(doc.ExtraAC)
	s.Equal(2700, doc.XP)
	s.Equal("CHAOTIC_GOOD", doc.AlignmentName)
	s.Require().NotNil(doc.Background)
	s.Equal("FOLK_HERO", doc.Background.BackgroundID)
	s.Equal(12, doc.Gold)
	s.Require().NotNil(doc.Race)
	s.Empty(doc.Race.RaceID)
	s.Equal(25, doc.Race.Speed.Normal)
}

func (s *ExporterTestSuite) TestExportCharacter_Abilities() {
	doc := s.export().Export

	s.Equal(&companion.Ability{Score: 16, Save: true}, doc.Strength)
	s.Equal(&companion.Ability{Score: 14, Save: true}, doc.Constitution, "expertise collapses to save")
	s.Equal(&companion.Ability{Score: 10, Save: false}, doc.Dexterity)
}

func (s *ExporterTestSuite) TestExportCharacter_Skills() {
	doc := s.export().Export

	s.Equal([]companion.Skill{
		{TypeName: "ATHLETICS", ProficiencyName: companion.ProficiencyFull},
		{TypeName: "STEALTH", ProficiencyName: companion.ProficiencyExpert},
	}, doc.Skills)
}

func (s *ExporterTestSuite) TestExportCharacter_Race() {
	testCases := []struct {
		name    string
		items   []*actor.Item
		raceID  string
		subrace string
	}{
		{
			name:    "subrace qualified",
			items:   []*actor.Item{{Name: "Elf (High Elf)", Type: actor.ItemTypeRace}},
			raceID:  "ELF",
			subrace: "HIGH_ELF",
		},
		{
			name: "first race wins",
			items: []*actor.Item{
				{Name: "Half Orc", Type: actor.ItemTypeRace},
				{Name: "Gnome", Type: actor.ItemTypeRace},
			},
			raceID: "HALF_ORC",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			doc := s.export(tc.items...).Export

			s.Require().NotNil(doc.Race)
			s.Equal(tc.raceID, doc.Race.RaceID)
			s.Equal(tc.subrace, doc.Race.SubraceID)
		})
	}
}

func (s *ExporterTestSuite) TestExportCharacter_JobsAndSpells() {
	doc := s.export(
		&actor.Item{Name: "Wizard", Type: actor.ItemTypeClass, System: map[string]any{"levels": 5}},
		&actor.Item{Name: "Fire Bolt", Type: actor.ItemTypeSpell, System: map[string]any{
			"level":       0,
			"preparation": map[string]any{"mode": "prepared", "prepared": true},
		}},
		&actor.Item{Name: "Shield", Type: actor.ItemTypeSpell, System: map[string]any{
			"level":       1,
			"preparation": map[string]any{"mode": "always", "prepared": true},
		}},
		&actor.Item{Name: "Sleep", Type: actor.ItemTypeSpell, System: map[string]any{
			"level":       1,
			"preparation": map[string]any{"mode": "prepared", "prepared": false},
		}},
	).Export

	s.Equal([]companion.Job{{JobID: "WIZARD", Level: 5}}, doc.Jobs)
	s.Equal([]companion.Spell{
		{Name: "Fire Bolt", Level: 0, Prepared: true},
		{Name: "Shield", Level: 1, Prepared: false},
		{Name: "Sleep", Level: 1, Prepared: false},
	}, doc.Spells)
}

func (s *ExporterTestSuite) TestExportCharacter_Buckets() {
	doc := s.export(
		&actor.Item{Name: "Longsword", Type: actor.ItemTypeWeapon, System: map[string]any{"quantity": 2}},
		&actor.Item{Name: "Chain Mail", Type: actor.ItemTypeEquipment, System: map[string]any{
			"armor":       map[string]any{"value": 16},
			"description": map[string]any{"value": "<p>heavy</p>"},
		}},
		&actor.Item{Name: "Ring", Type: actor.ItemTypeEquipment},
		&actor.Item{Name: "Torch", Type: actor.ItemTypeLoot, System: map[string]any{"quantity": 10}},
		&actor.Item{Name: "Backpack", Type: actor.ItemTypeBackpack},
		&actor.Item{Name: "Potion of Healing", Type: actor.ItemTypeConsumable},
		&actor.Item{Name: "Thieves' Tools", Type: actor.ItemTypeTool},
		&actor.Item{Name: "Darkvision", Type: "feat"},
	).Export

	s.Equal([]companion.EquipmentEntry{{Name: "Longsword", Count: 2}}, doc.Weapons)
	s.Equal([]companion.EquipmentEntry{{Name: "Chain Mail", Count: 1, Description: "<p>heavy</p>"}}, doc.Armors)
	s.Equal([]companion.EquipmentEntry{
		{Name: "Ring", Count: 1},
		{Name: "Torch", Count: 10},
		{Name: "Backpack", Count: 1},
		{Name: "Potion of Healing", Count: 1},
		{Name: "Thieves' Tools", Count: 1},
	}, doc.Inventory)
}

func (s *ExporterTestSuite) TestMarshal() {
	data, err := exporter.Marshal(s.export().Export)
	s.Require().NoError(err)
	s.Contains(string(data), "\n  \"name\": \"Thorin Oakenshield\"")

	var raw map[string]any
	s.Require().NoError(json.Unmarshal(data, &raw))
	for _, key := range []string{"copper", "silver", "electrum", "gold", "platinum"} {
		s.Contains(raw, key, "all denominations are written")
	}

	_, err = exporter.Marshal(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExporterTestSuite) TestRoundTrip() {
	for i := 0; i < 25; i++ {
		doc := builders.NewExportBuilder().
			WithRolledAbilities(dice.DefaultRoller).
			WithSkill("PERCEPTION", companion.ProficiencyFull).
			WithSkill("STEALTH", companion.ProficiencyExpert).
			WithSkill("HISTORY", "HALF").
			WithJob("WIZARD", 3).
			WithJob("FIGHTER", 2).
			WithRace("ELF", "HIGH_ELF", 30).
			Build()

		first := s.importExport(doc)
		second := s.importExport(first.Export)

		for _, key := range companion.AbilityKeys {
			s.Equal(doc.AbilityByKey(key), first.Export.AbilityByKey(key), key)
			s.Equal(first.Export.AbilityByKey(key), second.Export.AbilityByKey(key), key)
		}
		s.Equal([]companion.Skill{
			{TypeName: "PERCEPTION", ProficiencyName: companion.ProficiencyFull},
			{TypeName: "STEALTH", ProficiencyName: companion.ProficiencyExpert},
		}, first.Export.Skills)
		s.Equal(first.Export.Skills, second.Export.Skills)
		s.Equal([]companion.Job{{JobID: "WIZARD", Level: 3}, {JobID: "FIGHTER", Level: 2}}, first.Export.Jobs)
		s.Equal(first.Export.Jobs, second.Export.Jobs)
		s.Equal(first.Export.Race, second.Export.Race)
	}
}

func (s *ExporterTestSuite) importExport(doc *companion.Export) *exporter.ExportCharacterOutput {
	imported, err := s.importer.ImportCharacter(s.ctx, &importer.ImportCharacterInput{Export: doc})
	s.Require().NoError(err)

	out, err := s.exporter.ExportCharacter(s.ctx, &exporter.ExportCharacterInput{
		Character: imported.Character,
		Items:     imported.Items,
	})
	s.Require().NoError(err)
	return out
}

func TestExporterTestSuite(t *testing.T) {
	suite.Run(t, new(ExporterTestSuite))
}
