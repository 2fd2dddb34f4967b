package actor

import "github.com/KirkDiggler/rpg-toolkit/core"

// Character is an actor document of type "character".
// Pointer fields are derived values the host may or may not have computed yet.
type Character struct {
	ID     string          `json:"_id,omitempty"`
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Img    string          `json:"img,omitempty"`
	System CharacterSystem `json:"system"`
}

// CharacterSystem is the system data of a character
type CharacterSystem struct {
	Abilities  map[string]*Ability    `json:"abilities"`
	Attributes Attributes             `json:"attributes"`
	Details    Details                `json:"details"`
	Skills     map[string]*Skill      `json:"skills"`
	Currency   Currency               `json:"currency"`
	Traits     Traits                 `json:"traits"`
	Spells     map[string]*SpellSlots `json:"spells,omitempty"`
}

// Ability is a single ability score
type Ability struct {
	Value      int  `json:"value"`
	Proficient int  `json:"proficient"`
	Mod        *int `json:"mod,omitempty"`
	Save       *int `json:"save,omitempty"`
}

// Attributes holds combat and spellcasting attributes
type Attributes struct {
	HP           HitPoints   `json:"hp"`
	AC           ArmorClass  `json:"ac"`
	Movement     *Movement   `json:"movement,omitempty"`
	Init         *Initiative `json:"init,omitempty"`
	Prof         *int        `json:"prof,omitempty"`
	SpellDC      *int        `json:"spelldc,omitempty"`
	Spellcasting string      `json:"spellcasting,omitempty"`
}

// HitPoints holds current and maximum hit points
type HitPoints struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// ArmorClass holds the AC calculation mode and values
type ArmorClass struct {
	Flat  *int   `json:"flat,omitempty"`
	Calc  string `json:"calc,omitempty"`
	Value *int   `json:"value,omitempty"`
}

// Movement holds movement speeds in feet
type Movement struct {
	Walk int `json:"walk,omitempty"`
}

// Initiative holds the derived initiative bonus
type Initiative struct {
	Total *int `json:"total,omitempty"`
}

// Details holds descriptive character details
type Details struct {
	XP         Experience `json:"xp"`
	Alignment  string     `json:"alignment"`
	Background string     `json:"background"`
}

// Experience holds experience points
type Experience struct {
	Value int `json:"value"`
}

// Skill is a skill proficiency with optional derived values
type Skill struct {
	Value   int  `json:"value"`
	Total   *int `json:"total,omitempty"`
	Passive *int `json:"passive,omitempty"`
}

// Currency holds coin counts per denomination
type Currency struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// Traits holds size and languages
type Traits struct {
	Size      string    `json:"size,omitempty"`
	Languages Languages `json:"languages"`
}

// Languages holds known languages
type Languages struct {
	Value []string `json:"value"`
}

// SpellSlots is the slot pool for one spell level
type SpellSlots struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// NewCharacter returns a character with the import defaults applied
func NewCharacter(name string) *Character {
	if name == "" {
		name = DefaultName
	}
	return &Character{
		Name: name,
		Type: TypeCharacter,
		Img:  DefaultImg,
		System: CharacterSystem{
			Abilities: make(map[string]*Ability, len(AbilityCodes)),
			Skills:    make(map[string]*Skill),
			Traits: Traits{
				Size:      SizeMedium,
				Languages: Languages{Value: []string{}},
			},
		},
	}
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return TypeCharacter
}

// Ability returns the ability for a code, or a zero score of 10 when absent
func (c *Character) Ability(code string) Ability {
	if a, ok := c.System.Abilities[code]; ok && a != nil {
		return *a
	}
	return Ability{Value: 10}
}

// SkillValue returns the stored proficiency for a skill code
func (c *Character) SkillValue(code string) int {
	if s, ok := c.System.Skills[code]; ok && s != nil {
		return s.Value
	}
	return ProficiencyNone
}

var _ core.Entity = (*Character)(nil)
