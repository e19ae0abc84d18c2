// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the survivor, map, and zombie databases at build time.
//
//go:embed *.json
var dataFS embed.FS
