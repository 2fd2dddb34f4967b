package importer

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/naming"
)

const (
	defaultAbilityScore = 10
	defaultHP           = 10
	defaultBaseAC       = 10
)

// SessionResolver is a resolver that can hand out per-import sessions
type SessionResolver interface {
	Session() compendium.Resolver
}

// Config holds the dependencies for the importer
type Config struct {
	// Resolver looks up catalog records; a SessionResolver gets one session per import
	Resolver compendium.Resolver

	// EventBus receives mapping warnings (optional)
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	return vb.Build()
}

type importer struct {
	resolver compendium.Resolver
	bus      events.EventBus
}

// New creates an importer
func New(cfg *Config) (Importer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &importer{
		resolver: cfg.Resolver,
		bus:      cfg.EventBus,
	}, nil
}

// run carries the state of a single import
type run struct {
	*importer
	resolver   compendium.Resolver
	character  *actor.Character
	items      []*actor.Item
	unresolved []string
}

// gathered is one named entry found in an equipment list
type gathered struct {
	name     string
	qty      int
	desc     string
	itemType string
}

func (i *importer) ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error) {
	if input == nil || input.Export == nil {
		return nil, errors.InvalidArgument("export is required")
	}
	doc := input.Export

	resolver := i.resolver
	if sr, ok := resolver.(SessionResolver); ok {
		resolver = sr.Session()
	}

	r := &run{
		importer:  i,
		resolver:  resolver,
		character: mapCharacter(doc),
	}
	r.mapSkills(ctx, doc.Skills)

	slog.Debug("Mapped character attributes", "name", r.character.Name)

	steps := []func(context.Context, *companion.Export) error{
		r.addEquipment,
		r.addRace,
		r.addClasses,
		r.addSpells,
		r.addInventory,
	}
	for _, step := range steps {
		if err := step(ctx, doc); err != nil {
			return nil, err
		}
	}

	slog.Info("Imported character",
		"name", r.character.Name,
		"items", len(r.items),
		"unresolved", len(r.unresolved))

	return &ImportCharacterOutput{
		Character:  r.character,
		Items:      r.items,
		Unresolved: r.unresolved,
	}, nil
}

// mapCharacter maps the scalar parts of the export
func mapCharacter(doc *companion.Export) *actor.Character {
	char := actor.NewCharacter(doc.Name)
	sys := &char.System

	for _, key := range companion.AbilityKeys {
		score, save := defaultAbilityScore, false
		if ab := doc.AbilityByKey(key); ab != nil {
			if ab.Score != 0 {
				score = ab.Score
			}
			save = ab.Save
		}
		proficient := actor.ProficiencyNone
		if save {
			proficient = actor.ProficiencyProficient
		}
		sys.Abilities[companion.AbilityCodes[key]] = &actor.Ability{Value: score, Proficient: proficient}
	}

	hp := orDefault(doc.HP, defaultHP)
	sys.Attributes.HP = actor.HitPoints{Value: hp, Max: hp}

	flat := orDefault(doc.BaseAC, defaultBaseAC) + doc.ExtraAC
	sys.Attributes.AC = actor.ArmorClass{Flat: &flat, Calc: actor.CalcFlat}

	sys.Details.XP.Value = doc.XP
	sys.Details.Alignment = naming.ToDisplayName(doc.AlignmentName)
	if doc.Background != nil {
		sys.Details.Background = naming.ToDisplayName(doc.Background.BackgroundID)
	}

	// Root-level denominations only; background.goldPieces is ignored
	sys.Currency = actor.Currency{
		CP: doc.Copper,
		SP: doc.Silver,
		EP: doc.Electrum,
		GP: doc.Gold,
		PP: doc.Platinum,
	}

	if doc.Race != nil && doc.Race.Speed != nil && doc.Race.Speed.Normal != 0 {
		sys.Attributes.Movement = &actor.Movement{Walk: doc.Race.Speed.Normal}
	}

	return char
}

func (r *run) mapSkills(ctx context.Context, skills []companion.Skill) {
	for _, skill := range skills {
		code, ok := companion.SkillCodes[skill.TypeName]
		if !ok {
			slog.Debug("Dropping unmapped skill", "skill", skill.TypeName)
			r.publish(ctx, EventSkillUnmapped, nil, map[string]any{EventKeySkill: skill.TypeName})
			continue
		}
		level, ok := companion.ProficiencyLevel(skill.ProficiencyName)
		if !ok {
			continue
		}
		r.character.System.Skills[code] = &actor.Skill{Value: level}
	}
}

// addEquipment handles root equipment, weapons, armors and job equipment
func (r *run) addEquipment(ctx context.Context, doc *companion.Export) error {
	lists := []struct {
		entries  []companion.EquipmentEntry
		itemType string
	}{
		{doc.Equipment, ""},
		{doc.Weapons, actor.ItemTypeWeapon},
		{doc.Armors, actor.ItemTypeEquipment},
	}
	for _, job := range doc.Jobs {
		lists = append(lists, struct {
			entries  []companion.EquipmentEntry
			itemType string
		}{job.Equipment, ""})
	}

	for _, list := range lists {
		for _, g := range gather(list.entries, list.itemType) {
			item, err := r.resolve(ctx, g.name, g.itemType)
			if err != nil {
				return err
			}
			if item == nil {
				item = r.placeholder(ctx, g.name, orString(g.itemType, actor.ItemTypeLoot), map[string]any{
					"description": map[string]any{"value": g.desc},
					"quantity":    g.qty,
				})
			} else {
				item.Merge(map[string]any{"quantity": g.qty})
			}
			r.items = append(r.items, item)
		}
	}
	return nil
}

// gather flattens an equipment list into named entries
func gather(entries []companion.EquipmentEntry, itemType string) []gathered {
	var out []gathered
	for _, entry := range entries {
		if entry.IsGroup() {
			for _, model := range entry.EquipmentsModels {
				if model.Name == "" {
					continue
				}
				out = append(out, gathered{
					name:     model.Name,
					qty:      orDefault(model.Number, 1),
					desc:     model.Description,
					itemType: itemType,
				})
			}
			continue
		}
		if entry.Name == "" {
			continue
		}
		out = append(out, gathered{
			name:     entry.Name,
			qty:      orDefault(entry.Count, 1),
			itemType: itemType,
		})
	}
	return out
}

func (r *run) addRace(ctx context.Context, doc *companion.Export) error {
	if doc.Race == nil || doc.Race.RaceID == "" {
		return nil
	}

	raceName := naming.ToDisplayName(doc.Race.RaceID)
	fullName := raceName
	if doc.Race.SubraceID != "" {
		fullName = raceName + " (" + naming.ToDisplayName(doc.Race.SubraceID) + ")"
	}

	// the catalog carries the generic race; qualify it with the subrace
	item, err := r.resolve(ctx, raceName, actor.ItemTypeRace)
	if err != nil {
		return err
	}
	if item == nil {
		item = r.placeholder(ctx, fullName, actor.ItemTypeRace, nil)
	}
	item.Name = fullName

	r.items = append(r.items, item)
	return nil
}

func (r *run) addClasses(ctx context.Context, doc *companion.Export) error {
	for _, job := range doc.Jobs {
		if job.JobID == "" {
			continue
		}
		className := naming.ToDisplayName(job.JobID)

		item, err := r.resolve(ctx, className, actor.ItemTypeClass)
		if err != nil {
			return err
		}
		if item == nil {
			item = r.placeholder(ctx, className, actor.ItemTypeClass, nil)
		}
		item.Set("levels", orDefault(job.Level, 1))

		r.items = append(r.items, item)
	}
	return nil
}

func (r *run) addSpells(ctx context.Context, doc *companion.Export) error {
	for _, spell := range doc.Spells {
		if spell.Name == "" {
			continue
		}

		item, err := r.resolve(ctx, spell.Name, actor.ItemTypeSpell)
		if err != nil {
			return err
		}
		if item != nil {
			item.Merge(map[string]any{
				"preparation": map[string]any{"prepared": spell.Prepared},
			})
			r.items = append(r.items, item)
			continue
		}

		item = r.placeholder(ctx, spell.Name, actor.ItemTypeSpell, map[string]any{
			"description": map[string]any{"value": spellPlaceholderDescription(spell.Name)},
			"level":       spell.Level,
			"preparation": map[string]any{
				"mode":     actor.PreparationModePrepared,
				"prepared": spell.Prepared,
			},
		})
		item.Img = GuessSpellIcon(spell.Name)
		r.items = append(r.items, item)
	}
	return nil
}

// addInventory handles the generic inventory list, falling back to items
func (r *run) addInventory(ctx context.Context, doc *companion.Export) error {
	entries := doc.Inventory
	if len(entries) == 0 {
		entries = doc.Items
	}

	for _, entry := range entries {
		name := orString(entry.Name, entry.ItemName)
		if name == "" {
			continue
		}

		item, err := r.resolve(ctx, name, "")
		if err != nil {
			return err
		}
		if item == nil {
			item = r.placeholder(ctx, name, actor.ItemTypeLoot, nil)
		}
		item.Merge(map[string]any{"quantity": orDefault(entry.Count, orDefault(entry.Quantity, 1))})

		r.items = append(r.items, item)
	}
	return nil
}

func (r *run) resolve(ctx context.Context, name, itemType string) (*actor.Item, error) {
	item, err := r.resolver.Resolve(ctx, name, itemType)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WrapWithCode(ctxErr, errors.CodeCanceled, "import canceled")
		}
		// resolvers only fail on context errors; anything else is a miss
		slog.Warn("Resolver failed, using placeholder", "name", name, "type", itemType, "error", err)
		return nil, nil
	}
	if item != nil {
		// catalog IDs are not valid for the host's owned items
		item.ID = ""
	}
	return item, nil
}

// placeholder synthesises an item for a name no catalog knew
func (r *run) placeholder(ctx context.Context, name, itemType string, system map[string]any) *actor.Item {
	if system == nil {
		system = map[string]any{}
	}
	item := &actor.Item{Name: name, Type: itemType, System: system}
	item.MarkPlaceholder()

	slog.Debug("Item not found in any catalog", "name", name, "type", itemType)
	r.unresolved = append(r.unresolved, name)
	r.publish(ctx, EventItemUnresolved, item, map[string]any{
		EventKeyName:     name,
		EventKeyItemType: itemType,
	})
	return item
}

func (r *run) publish(ctx context.Context, eventType string, target *actor.Item, data map[string]any) {
	if r.bus == nil {
		return
	}

	var event *events.GameEvent
	if target != nil {
		event = events.NewGameEvent(eventType, r.character, target)
	} else {
		event = events.NewGameEvent(eventType, r.character, nil)
	}
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := r.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish import event", "event", eventType, "error", err)
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
