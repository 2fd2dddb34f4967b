package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/naming"
)

const (
	defaultProficiencyBonus = 2
	defaultAC               = 10
	defaultSpeed            = 30
	defaultSpellDC          = 10

	checkMark    = "✓ "
	ritualSuffix = " (R)"
)

type projector struct{}

// New creates a projector
func New() Projector {
	return &projector{}
}

func (p *projector) ProjectSheet(_ context.Context, input *ProjectSheetInput) (*ProjectSheetOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	pr := &projection{
		char:   input.Character,
		items:  input.Items,
		prof:   defaultProficiencyBonus,
		fields: NewFields(),
	}
	if prof := input.Character.System.Attributes.Prof; prof != nil {
		pr.prof = *prof
	}

	pr.details(input.PlayerName)
	pr.abilities()
	pr.skills()
	pr.combat()
	pr.weapons()
	pr.inventory()
	pr.spells()
	pr.spellcasting()

	return &ProjectSheetOutput{Fields: pr.fields}, nil
}

// projection carries the state of a single projection
type projection struct {
	char   *actor.Character
	items  []*actor.Item
	prof   int
	fields *Fields
}

func (p *projection) itemsOfType(itemType string) []*actor.Item {
	var out []*actor.Item
	for _, item := range p.items {
		if item != nil && item.Type == itemType {
			out = append(out, item)
		}
	}
	return out
}

func (p *projection) details(playerName string) {
	sys := p.char.System
	p.fields.SetText(FieldCharacterName, p.char.Name)
	p.fields.SetText(FieldPlayerName, playerName)
	p.fields.SetText(FieldBackground, naming.ToDisplayName(sys.Details.Background))
	p.fields.SetText(FieldAlignment, naming.ToDisplayName(sys.Details.Alignment))
	p.fields.SetText(FieldXP, strconv.Itoa(sys.Details.XP.Value))

	if races := p.itemsOfType(actor.ItemTypeRace); len(races) > 0 {
		p.fields.SetText(FieldRace, races[0].Name)
	}

	classes := p.itemsOfType(actor.ItemTypeClass)
	parts := make([]string, 0, len(classes))
	for _, class := range classes {
		parts = append(parts, fmt.Sprintf("%s %d", class.Name, class.Levels()))
	}
	p.fields.SetText(FieldClassLevel, strings.Join(parts, " / "))
}

// modifier returns the stored ability modifier or derives it from the score
func (p *projection) modifier(code string) int {
	ability := p.char.Ability(code)
	if ability.Mod != nil {
		return *ability.Mod
	}
	return Modifier(ability.Value)
}

func (p *projection) abilities() {
	for _, code := range actor.AbilityCodes {
		slot := abilitySlots[code]
		ability := p.char.Ability(code)
		mod := p.modifier(code)

		p.fields.SetText(slot.score, strconv.Itoa(ability.Value))
		p.fields.SetText(slot.mod, Signed(mod))

		save := mod
		if ability.Save != nil {
			save = *ability.Save
		} else if ability.Proficient > actor.ProficiencyNone {
			save += p.prof
		}
		p.fields.SetText(slot.save, Signed(save))

		if ability.Proficient > actor.ProficiencyNone {
			p.fields.SetChecked(slot.saveBox)
		}
	}
}

// skillTotal returns the stored skill total or derives it from ability and proficiency
func (p *projection) skillTotal(code string) int {
	if skill, ok := p.char.System.Skills[code]; ok && skill != nil && skill.Total != nil {
		return *skill.Total
	}
	return p.modifier(actor.SkillAbilities[code]) + p.prof*p.char.SkillValue(code)
}

func (p *projection) skills() {
	for _, code := range actor.SkillCodes {
		slot := skillSlots[code]
		p.fields.SetText(slot.total, Signed(p.skillTotal(code)))
		if p.char.SkillValue(code) >= actor.ProficiencyProficient {
			p.fields.SetChecked(slot.box)
		}
	}
}

func (p *projection) combat() {
	attrs := p.char.System.Attributes
	p.fields.SetText(FieldHPMax, strconv.Itoa(attrs.HP.Max))
	p.fields.SetText(FieldHPCurrent, strconv.Itoa(attrs.HP.Value))

	ac := defaultAC
	switch {
	case attrs.AC.Value != nil && *attrs.AC.Value != 0:
		ac = *attrs.AC.Value
	case attrs.AC.Flat != nil && *attrs.AC.Flat != 0:
		ac = *attrs.AC.Flat
	}
	p.fields.SetText(FieldAC, strconv.Itoa(ac))

	initiative := p.modifier(actor.AbilityDex)
	if attrs.Init != nil && attrs.Init.Total != nil {
		initiative = *attrs.Init.Total
	}
	p.fields.SetText(FieldInitiative, Signed(initiative))

	speed := defaultSpeed
	if attrs.Movement != nil && attrs.Movement.Walk != 0 {
		speed = attrs.Movement.Walk
	}
	p.fields.SetText(FieldSpeed, fmt.Sprintf("%d ft.", speed))

	passive := 10 + p.skillTotal(actor.SkillPerception)
	if skill, ok := p.char.System.Skills[actor.SkillPerception]; ok && skill != nil && skill.Passive != nil {
		passive = *skill.Passive
	}
	p.fields.SetText(FieldPassive, strconv.Itoa(passive))
	p.fields.SetText(FieldProfBonus, "+"+strconv.Itoa(p.prof))
}

func (p *projection) weapons() {
	weapons := p.itemsOfType(actor.ItemTypeWeapon)
	for i, weapon := range weapons {
		if i >= maxWeapons {
			slog.Debug("Sheet has no slot for weapon", "name", weapon.Name)
			break
		}
		slot := weaponSlots[i]
		p.fields.SetText(slot.name, weapon.Name)
		p.fields.SetText(slot.attack, strings.Replace(weapon.Labels["toHit"], "+", "+ ", 1))
		p.fields.SetText(slot.damage, strings.TrimSpace(weapon.Labels["damage"]+" "+weapon.Labels["damageTypes"]))
	}
}

func (p *projection) inventory() {
	currency := p.char.System.Currency
	for _, c := range currencySlots {
		if v := c.value(currency); v != 0 {
			p.fields.SetText(c.field, strconv.Itoa(v))
		}
	}

	var lines []string
	seen := make(map[string]bool)
	for _, item := range p.items {
		if item == nil || !item.IsGear() {
			continue
		}
		line := item.Name
		if qty := item.Quantity(); qty > 1 {
			line = fmt.Sprintf("%dx %s", qty, item.Name)
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	p.fields.SetText(FieldEquipment, strings.Join(lines, "\n"))
}

func (p *projection) spells() {
	var byLevel [maxSpellLevel + 1][]*actor.Item
	for _, spell := range p.itemsOfType(actor.ItemTypeSpell) {
		level := spell.SpellLevel()
		if level < 0 || level > maxSpellLevel {
			continue
		}
		byLevel[level] = append(byLevel[level], spell)
	}

	col := collate.New(language.English)
	for level, spells := range byLevel {
		slices.SortStableFunc(spells, func(a, b *actor.Item) int {
			return col.CompareString(a.Name, b.Name)
		})

		for i, spell := range spells {
			if i >= maxSpellsPerLevel {
				slog.Debug("Sheet has no slot for spell", "name", spell.Name, "level", level)
				break
			}

			name := spell.Name
			if level > 0 && spell.Prepared() {
				name = checkMark + name
			}
			if spell.Ritual() {
				name += ritualSuffix
			}

			if level == 0 {
				p.fields.SetText(spellField(cantripSlots[i]), name)
			} else {
				p.fields.SetText(spellField(spellLevelStart[level]+i), name)
			}
		}
	}

	for level := 1; level <= maxSpellLevel; level++ {
		slots, ok := p.char.System.Spells[actor.SpellSlotKey(level)]
		if !ok || slots == nil {
			continue
		}
		p.fields.SetText(slotsTotalField(level), strconv.Itoa(slots.Max))
		p.fields.SetText(slotsRemainingField(level), strconv.Itoa(slots.Value))
	}
}

// SpellcastingAbility detects the casting ability from class names, falling back
// to the stored attribute and then intelligence. class is the class it came from.
func SpellcastingAbility(char *actor.Character, classes []*actor.Item) (ability, class string) {
	for _, item := range classes {
		name := strings.ToLower(item.Name)
		for _, entry := range spellcastingAbilities {
			if strings.Contains(name, entry.class) {
				return entry.ability, item.Name
			}
		}
	}

	ability = char.System.Attributes.Spellcasting
	if ability == "" {
		ability = actor.AbilityInt
	}
	if len(classes) > 0 {
		class = classes[0].Name
	}
	return ability, class
}

func (p *projection) spellcasting() {
	classes := p.itemsOfType(actor.ItemTypeClass)
	if len(classes) == 0 {
		return
	}

	ability, class := SpellcastingAbility(p.char, classes)
	display := ability
	if slot, ok := abilitySlots[ability]; ok {
		display = slot.display
	}
	p.fields.SetText(FieldSpellcastingAbility, display)
	p.fields.SetText(FieldSpellcastingClass, class)

	// a stored DC of 10 is the sheet default, not a computed value
	dc := defaultSpellDC
	if stored := p.char.System.Attributes.SpellDC; stored != nil {
		dc = *stored
	}
	if dc == defaultSpellDC {
		dc = 8 + p.modifier(ability) + p.prof
	}
	p.fields.SetText(FieldSpellSaveDC, strconv.Itoa(dc))
	p.fields.SetText(FieldSpellAtkBonus, Signed(dc-8))
}

// Modifier returns floor((score - 10) / 2)
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

// Signed formats a bonus with an explicit sign, e.g. "+2", "-1", "+0"
func Signed(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
