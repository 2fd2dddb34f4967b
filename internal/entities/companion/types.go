// Package companion holds the companion-app export document (.cah) shape.
// Zero values mean "absent": the exporter writes falsy fields the same way it omits them.
package companion

import "strings"

// Ability keys as they appear at the root of an export
const (
	KeyStrength     = "strength"
	KeyDexterity    = "dexterity"
	KeyConstitution = "constitution"
	KeyIntelligence = "intelligence"
	KeyWisdom       = "wisdom"
	KeyCharisma     = "charisma"
)

// Skill proficiency names
const (
	ProficiencyFull   = "FULL"
	ProficiencyExpert = "EXPERT"
)

// Export is a companion-app character export
type Export struct {
	Name          string `json:"name,omitempty"`
	HP            int    `json:"hp,omitempty"`
	BaseAC        int    `json:"baseAc,omitempty"`
	ExtraAC       int    `json:"extraAC,omitempty"`
	XP            int    `json:"xp,omitempty"`
	AlignmentName string `json:"alignmentName,omitempty"`

	Copper   int `json:"copper"`
	Silver   int `json:"silver"`
	Electrum int `json:"electrum"`
	Gold     int `json:"gold"`
	Platinum int `json:"platinum"`

	Strength     *Ability `json:"strength,omitempty"`
	Dexterity    *Ability `json:"dexterity,omitempty"`
	Constitution *Ability `json:"constitution,omitempty"`
	Intelligence *Ability `json:"intelligence,omitempty"`
	Wisdom       *Ability `json:"wisdom,omitempty"`
	Charisma     *Ability `json:"charisma,omitempty"`

	// AbilitiesByName is the list layout some app versions emit instead of root keys
	AbilitiesByName []NamedAbility `json:"abilities-by-name,omitempty"`

	Race       *Race       `json:"race,omitempty"`
	Background *Background `json:"background,omitempty"`

	Skills []Skill `json:"skills,omitempty"`
	Jobs   []Job   `json:"jobs,omitempty"`
	Spells []Spell `json:"spells,omitempty"`

	Equipment []EquipmentEntry `json:"equipment,omitempty"`
	Weapons   []EquipmentEntry `json:"weapons,omitempty"`
	Armors    []EquipmentEntry `json:"armors,omitempty"`
	Inventory []EquipmentEntry `json:"inventory,omitempty"`
	Items     []EquipmentEntry `json:"items,omitempty"`
}

// Ability is a single ability score entry
type Ability struct {
	Score int  `json:"score,omitempty"`
	Save  bool `json:"save"`
}

// NamedAbility is an ability entry in the abilities-by-name list
type NamedAbility struct {
	Name  string `json:"name"`
	Score int    `json:"score,omitempty"`
	Save  bool   `json:"save"`
}

// Race identifies the character's race and subrace
type Race struct {
	RaceID    string `json:"raceId,omitempty"`
	SubraceID string `json:"subraceId,omitempty"`
	Speed     *Speed `json:"speed,omitempty"`
}

// Speed holds movement speeds in feet
type Speed struct {
	Normal int `json:"normal,omitempty"`
}

// Background identifies the character's background
type Background struct {
	BackgroundID string `json:"backgroundId,omitempty"`
	// GoldPieces is read by an older app version only; see DESIGN.md currency decision
	GoldPieces int `json:"goldPieces,omitempty"`
}

// Skill is a skill proficiency entry
type Skill struct {
	TypeName        string `json:"typeName"`
	ProficiencyName string `json:"proficiencyName,omitempty"`
}

// Job is a class entry
type Job struct {
	JobID     string           `json:"jobId"`
	Level     int              `json:"level,omitempty"`
	Equipment []EquipmentEntry `json:"equipment,omitempty"`
}

// Spell is a known spell entry
type Spell struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Prepared bool   `json:"prepared"`
}

// EquipmentEntry is either a single named item or a group of models
type EquipmentEntry struct {
	Name        string `json:"name,omitempty"`
	ItemName    string `json:"itemName,omitempty"`
	Count       int    `json:"count,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	Description string `json:"description,omitempty"`

	EquipmentsModels []EquipmentModel `json:"equipmentsModels,omitempty"`
}

// IsGroup reports whether the entry is a group of equipment models
func (e EquipmentEntry) IsGroup() bool {
	return e.EquipmentsModels != nil
}

// EquipmentModel is one item inside an equipment group
type EquipmentModel struct {
	Name        string `json:"name,omitempty"`
	Number      int    `json:"number,omitempty"`
	Description string `json:"description,omitempty"`
}

// AbilityByKey returns the root-level ability entry for a full ability name
func (e *Export) AbilityByKey(key string) *Ability {
	for _, named := range e.AbilitiesByName {
		if strings.EqualFold(named.Name, key) {
			return &Ability{Score: named.Score, Save: named.Save}
		}
	}

	switch key {
	case KeyStrength:
		return e.Strength
	case KeyDexterity:
		return e.Dexterity
	case KeyConstitution:
		return e.Constitution
	case KeyIntelligence:
		return e.Intelligence
	case KeyWisdom:
		return e.Wisdom
	case KeyCharisma:
		return e.Charisma
	default:
		return nil
	}
}

// SetAbility sets the root-level ability entry for a full ability name
func (e *Export) SetAbility(key string, ability *Ability) {
	switch key {
	case KeyStrength:
		e.Strength = ability
	case KeyDexterity:
		e.Dexterity = ability
	case KeyConstitution:
		e.Constitution = ability
	case KeyIntelligence:
		e.Intelligence = ability
	case KeyWisdom:
		e.Wisdom = ability
	case KeyCharisma:
		e.Charisma = ability
	}
}
