package entity

import "github.com/gdamore/tcell/v2"

// Level is a survivor's danger level. It starts at blue and climbs with
// experience, never dropping back.
type Level int

const (
	LevelBlue Level = iota
	LevelYellow
	LevelOrange
	LevelRed
)

// Experience totals at which a survivor reaches each level.
const (
	YellowThreshold = 7
	OrangeThreshold = 14
	RedThreshold    = 28
)

// String returns the level name as it appears in survivor data.
func (l Level) String() string {
	switch l {
	case LevelBlue:
		return "blue"
	case LevelYellow:
		return "yellow"
	case LevelOrange:
		return "orange"
	case LevelRed:
		return "red"
	default:
		return "unknown"
	}
}

// TCellColor returns the display color for the level marker.
func (l Level) TCellColor() tcell.Color {
	switch l {
	case LevelYellow:
		return tcell.ColorYellow
	case LevelOrange:
		return tcell.ColorOrange
	case LevelRed:
		return tcell.ColorRed
	default:
		return tcell.ColorBlue
	}
}

// LevelForXP returns the level reached at the given experience total.
func LevelForXP(xp int) Level {
	switch {
	case xp >= RedThreshold:
		return LevelRed
	case xp >= OrangeThreshold:
		return LevelOrange
	case xp >= YellowThreshold:
		return LevelYellow
	default:
		return LevelBlue
	}
}

// ParseLevel maps a level name from survivor data to a Level.
// Unknown names fall back to blue.
func ParseLevel(name string) Level {
	switch name {
	case "yellow":
		return LevelYellow
	case "orange":
		return LevelOrange
	case "red":
		return LevelRed
	default:
		return LevelBlue
	}
}
