package companion

import "github.com/KirkDiggler/rpg-companion/internal/entities/actor"

// AbilityKeys lists the root-level ability keys in sheet order
var AbilityKeys = []string{KeyStrength, KeyDexterity, KeyConstitution, KeyIntelligence, KeyWisdom, KeyCharisma}

// AbilityCodes maps a root-level ability key to the actor ability code
var AbilityCodes = map[string]string{
	KeyStrength:     actor.AbilityStr,
	KeyDexterity:    actor.AbilityDex,
	KeyConstitution: actor.AbilityCon,
	KeyIntelligence: actor.AbilityInt,
	KeyWisdom:       actor.AbilityWis,
	KeyCharisma:     actor.AbilityCha,
}

// SkillCodes maps companion skill type names to actor skill codes
var SkillCodes = map[string]string{
	"ACROBATICS":      actor.SkillAcrobatics,
	"ANIMAL_HANDLING": actor.SkillAnimalHandling,
	"ARCANA":          actor.SkillArcana,
	"ATHLETICS":       actor.SkillAthletics,
	"DECEPTION":       actor.SkillDeception,
	"HISTORY":         actor.SkillHistory,
	"INSIGHT":         actor.SkillInsight,
	"INTIMIDATION":    actor.SkillIntimidation,
	"INVESTIGATION":   actor.SkillInvestigation,
	"MEDICINE":        actor.SkillMedicine,
	"NATURE":          actor.SkillNature,
	"PERCEPTION":      actor.SkillPerception,
	"PERFORMANCE":     actor.SkillPerformance,
	"PERSUASION":      actor.SkillPersuasion,
	"RELIGION":        actor.SkillReligion,
	"SLEIGHT_OF_HAND": actor.SkillSleightOfHand,
	"STEALTH":         actor.SkillStealth,
	"SURVIVAL":        actor.SkillSurvival,
}

// SkillTypeNames maps actor skill codes back to companion skill type names
var SkillTypeNames = func() map[string]string {
	out := make(map[string]string, len(SkillCodes))
	for name, code := range SkillCodes {
		out[code] = name
	}
	return out
}()

// ProficiencyLevel converts a companion proficiency name to the stored level.
// ok is false for anything that is neither FULL nor EXPERT.
func ProficiencyLevel(name string) (level int, ok bool) {
	switch name {
	case ProficiencyFull:
		return actor.ProficiencyProficient, true
	case ProficiencyExpert:
		return actor.ProficiencyExpert, true
	default:
		return actor.ProficiencyNone, false
	}
}

// ProficiencyName converts a stored level to the companion proficiency name
func ProficiencyName(level int) string {
	if level >= actor.ProficiencyExpert {
		return ProficiencyExpert
	}
	return ProficiencyFull
}
