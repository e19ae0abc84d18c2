package gamedata

import "github.com/gdamore/tcell/v2"

// SurvivorDef defines a playable survivor loaded from JSON.
type SurvivorDef struct {
	Name      string       `json:"name"`      // Display name (e.g., "Eva")
	Class     string       `json:"class"`     // Background flavor (e.g., "Mechanic")
	Wounds    int          `json:"wounds"`    // Starting wounds (normally 0)
	Exp       int          `json:"exp"`       // Starting experience
	Level     string       `json:"level"`     // Starting danger level (e.g., "blue")
	Color     string       `json:"color"`     // Hex color code (e.g., "#fefb00")
	Skills    SkillsDef    `json:"skills"`    // Skill text per danger-level slot
	Equipment EquipmentDef `json:"equipment"` // Starting gear
}

// SkillsDef holds the skill text for each danger-level slot. Empty slots
// carry the literal string "empty".
type SkillsDef struct {
	Blue    string `json:"skill_blue"`
	Yellow  string `json:"skill_yellow"`
	Orange1 string `json:"skill_orange1"`
	Orange2 string `json:"skill_orange2"`
	Red1    string `json:"skill_red1"`
	Red2    string `json:"skill_red2"`
	Red3    string `json:"skill_red3"`
}

// EquipmentDef holds a survivor's starting gear. Unused slots carry the
// literal string "empty".
type EquipmentDef struct {
	HandLeft  string `json:"hand_left"`
	HandRight string `json:"hand_right"`
	Inv1      string `json:"inv_1"`
	Inv2      string `json:"inv_2"`
	Inv3      string `json:"inv_3"`
	Inv4      string `json:"inv_4"`
}

// TCellColor returns the survivor's display color as a tcell.Color.
func (s *SurvivorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ActiveSkills returns the unlocked, non-empty skills at the given danger
// rank (0 = blue through 3 = red). Higher ranks unlock every slot below.
func (s *SurvivorDef) ActiveSkills(rank int) []string {
	slots := [][]string{
		{s.Skills.Blue},
		{s.Skills.Yellow},
		{s.Skills.Orange1, s.Skills.Orange2},
		{s.Skills.Red1, s.Skills.Red2, s.Skills.Red3},
	}

	var active []string
	for r := 0; r <= rank && r < len(slots); r++ {
		for _, skill := range slots[r] {
			if skill != "" && skill != "empty" {
				active = append(active, skill)
			}
		}
	}
	return active
}

// SurvivorsFile represents the structure of survivors.json.
type SurvivorsFile struct {
	Survivors []SurvivorDef `json:"survivors"`
}

// LoadSurvivors loads the survivor roster from the embedded survivors.json file.
func LoadSurvivors() ([]SurvivorDef, error) {
	file, err := Load[SurvivorsFile]("survivors.json")
	if err != nil {
		return nil, err
	}
	return file.Survivors, nil
}

// MustLoadSurvivors loads the survivor roster, panicking on error.
func MustLoadSurvivors() []SurvivorDef {
	survivors, err := LoadSurvivors()
	if err != nil {
		panic(err)
	}
	return survivors
}
