package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/naming"
)

type exporter struct{}

// New creates an exporter
func New() Exporter {
	return &exporter{}
}

func (e *exporter) ExportCharacter(_ context.Context, input *ExportCharacterInput) (*ExportCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	char := input.Character
	sys := char.System

	doc := &companion.Export{
		Name:          char.Name,
		HP:            sys.Attributes.HP.Max,
		XP:            sys.Details.XP.Value,
		AlignmentName: naming.ToIdentifier(sys.Details.Alignment),

		Copper:   sys.Currency.CP,
		Silver:   sys.Currency.SP,
		Electrum: sys.Currency.EP,
		Gold:     sys.Currency.GP,
		Platinum: sys.Currency.PP,
	}
	if doc.HP == 0 {
		doc.HP = sys.Attributes.HP.Value
	}

	// flat already includes any extra bonus from the import
	switch {
	case sys.Attributes.AC.Flat != nil:
		doc.BaseAC = *sys.Attributes.AC.Flat
	case sys.Attributes.AC.Value != nil:
		doc.BaseAC = *sys.Attributes.AC.Value
	}

	if sys.Details.Background != "" {
		doc.Background = &companion.Background{BackgroundID: naming.ToIdentifier(sys.Details.Background)}
	}

	for _, key := range companion.AbilityKeys {
		ability := char.Ability(companion.AbilityCodes[key])
		doc.SetAbility(key, &companion.Ability{
			Score: ability.Value,
			Save:  ability.Proficient > actor.ProficiencyNone,
		})
	}

	for _, code := range actor.SkillCodes {
		value := char.SkillValue(code)
		if value <= actor.ProficiencyNone {
			continue
		}
		doc.Skills = append(doc.Skills, companion.Skill{
			TypeName:        companion.SkillTypeNames[code],
			ProficiencyName: companion.ProficiencyName(value),
		})
	}

	doc.Race = exportRace(input.Items)
	if sys.Attributes.Movement != nil && sys.Attributes.Movement.Walk > 0 {
		if doc.Race == nil {
			doc.Race = &companion.Race{}
		}
		doc.Race.Speed = &companion.Speed{Normal: sys.Attributes.Movement.Walk}
	}

	for _, item := range input.Items {
		if item == nil {
			continue
		}
		switch {
		case item.Type == actor.ItemTypeClass:
			doc.Jobs = append(doc.Jobs, companion.Job{
				JobID: naming.ToIdentifier(item.Name),
				Level: item.Levels(),
			})
		case item.Type == actor.ItemTypeSpell:
			doc.Spells = append(doc.Spells, companion.Spell{
				Name:     item.Name,
				Level:    item.SpellLevel(),
				Prepared: item.PreparationMode() == actor.PreparationModePrepared && item.Prepared(),
			})
		case item.Type == actor.ItemTypeWeapon:
			doc.Weapons = append(doc.Weapons, entry(item))
		case item.Type == actor.ItemTypeEquipment && item.IsArmor():
			doc.Armors = append(doc.Armors, entry(item))
		case inventoryTypes[item.Type]:
			doc.Inventory = append(doc.Inventory, entry(item))
		}
	}

	slog.Debug("Exported character",
		"name", char.Name,
		"jobs", len(doc.Jobs),
		"spells", len(doc.Spells),
		"weapons", len(doc.Weapons),
		"armors", len(doc.Armors),
		"inventory", len(doc.Inventory))

	return &ExportCharacterOutput{
		Export:   doc,
		Filename: naming.ExportFilename(char.Name),
	}, nil
}

// inventoryTypes are listed under inventory. Equipment without armor data lands
// here too so trinkets survive a round trip.
var inventoryTypes = map[string]bool{
	actor.ItemTypeLoot:       true,
	actor.ItemTypeConsumable: true,
	actor.ItemTypeBackpack:   true,
	actor.ItemTypeTool:       true,
	actor.ItemTypeEquipment:  true,
}

// exportRace encodes the first race item, splitting a "Race (Subrace)" name
func exportRace(items []*actor.Item) *companion.Race {
	for _, item := range items {
		if item == nil || item.Type != actor.ItemTypeRace {
			continue
		}
		name, subrace := splitSubrace(item.Name)
		race := &companion.Race{RaceID: naming.ToIdentifier(name)}
		if subrace != "" {
			race.SubraceID = naming.ToIdentifier(subrace)
		}
		return race
	}
	return nil
}

func splitSubrace(name string) (string, string) {
	open := strings.LastIndex(name, " (")
	if open < 0 || !strings.HasSuffix(name, ")") {
		return name, ""
	}
	return name[:open], name[open+2 : len(name)-1]
}

func entry(item *actor.Item) companion.EquipmentEntry {
	return companion.EquipmentEntry{
		Name:        item.Name,
		Count:       item.Quantity(),
		Description: item.Description(),
	}
}

// Marshal renders an export as pretty-printed JSON
func Marshal(doc *companion.Export) ([]byte, error) {
	if doc == nil {
		return nil, errors.InvalidArgument("export is required")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode export")
	}
	return data, nil
}
