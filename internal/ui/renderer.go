package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/jlucieda/zombicide/internal/entity"
	"github.com/jlucieda/zombicide/internal/world"
)

// Zone cell metrics, border inclusive, and the board origin.
const (
	cellW = 12
	cellH = 5

	boardX = 1
	boardY = 1

	maxZoneGlyphs = 5
)

// HUD carries everything the dashboard shows for one frame. The shell
// fills it in; the renderer never reaches into game logic.
type HUD struct {
	MapName       string
	Round         int
	PhaseName     string
	Paused        bool
	PhaseComplete bool

	FirstPlayer string
	TurnOrder   []string
	CurrentName string // Acting survivor, "" outside the survivor phase

	ActionLabels   []string
	CombatMessage  string
	TargetLabels   []string
	AdvanceMessage string

	Messages []string
	GameOver string // "" while the game is live
}

// Renderer draws the board, tokens, and HUD to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one full frame.
func (r *Renderer) Render(board *world.Board, survivors []*entity.Survivor, zombies []*entity.Zombie, hud HUD) {
	r.screen.Clear()

	r.drawBoard(board)
	r.drawTokens(board, survivors, zombies, hud.CurrentName)
	r.drawHUD(board, survivors, hud)
	r.drawMessages(board, hud.Messages)

	r.screen.Show()
}

// drawBoard draws the zone grid with its start and spawn markers.
func (r *Renderer) drawBoard(board *world.Board) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			pos := world.Position{Row: row, Col: col}
			r.drawZone(pos, board.ZoneAt(pos), pos == board.Start, pos == board.Spawn)
		}
	}
}

// drawZone draws one zone box. Building zones get a brighter border so
// the block layout reads at a glance.
func (r *Renderer) drawZone(pos world.Position, kind world.ZoneKind, start, spawn bool) {
	x0 := boardX + pos.Col*cellW
	y0 := boardY + pos.Row*cellH

	border := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	if kind == world.ZoneBuilding {
		border = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	}

	for x := x0; x <= x0+cellW; x++ {
		r.screen.SetContent(x, y0, '-', border)
		r.screen.SetContent(x, y0+cellH, '-', border)
	}
	for y := y0; y <= y0+cellH; y++ {
		r.screen.SetContent(x0, y, '|', border)
		r.screen.SetContent(x0+cellW, y, '|', border)
	}
	r.screen.SetContent(x0, y0, '+', border)
	r.screen.SetContent(x0+cellW, y0, '+', border)
	r.screen.SetContent(x0, y0+cellH, '+', border)
	r.screen.SetContent(x0+cellW, y0+cellH, '+', border)

	switch {
	case start:
		r.drawText(x0+1, y0+1, tcell.StyleDefault.Foreground(tcell.ColorGreen), "START")
	case spawn:
		r.drawText(x0+1, y0+1, tcell.StyleDefault.Foreground(tcell.ColorRed), "SPAWN")
	case kind == world.ZoneBuilding:
		r.drawText(x0+1, y0+1, tcell.StyleDefault.Foreground(tcell.ColorGray), "BLDG")
	}
}

// drawTokens places survivor initials and zombie glyphs inside their
// zones. Survivors sit on the upper token row, zombies below them; a
// crowded zone truncates with a '+'.
func (r *Renderer) drawTokens(board *world.Board, survivors []*entity.Survivor, zombies []*entity.Zombie, currentName string) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			pos := world.Position{Row: row, Col: col}
			x0 := boardX + col*cellW + 1
			limit := boardX + (col+1)*cellW - 1
			sy := boardY + row*cellH + 2
			zy := sy + 1

			x := x0
			for _, s := range survivors {
				if !s.Alive || s.Pos != pos {
					continue
				}
				if x >= limit {
					break
				}
				style := tcell.StyleDefault.Foreground(s.Color).Bold(true)
				if currentName != "" && s.Name == currentName {
					style = style.Underline(true)
				}
				r.screen.SetContent(x, sy, tokenRune(s.Name), style)
				x++
				if s.Wounds > 0 && x < limit {
					r.screen.SetContent(x, sy, '*', tcell.StyleDefault.Foreground(tcell.ColorRed))
					x++
				}
				x++
			}

			x = x0
			drawn := 0
			for _, z := range zombies {
				if !z.Alive || z.Pos != pos {
					continue
				}
				if drawn == maxZoneGlyphs || x >= limit {
					r.screen.SetContent(x, zy, '+', tcell.StyleDefault.Foreground(tcell.ColorGreen))
					break
				}
				r.screen.SetContent(x, zy, z.Glyph, tcell.StyleDefault.Foreground(z.Color).Bold(true))
				x += 2
				drawn++
			}
		}
	}
}

// drawHUD draws the dashboard to the right of the board: round status,
// turn order, the roster, and whichever prompt is active.
func (r *Renderer) drawHUD(board *world.Board, survivors []*entity.Survivor, hud HUD) {
	x := boardX + board.Size*cellW + 3
	y := boardY

	title := "ZOMBICIDE"
	if hud.MapName != "" {
		title += " - " + hud.MapName
	}
	r.drawText(x, y, tcell.StyleDefault.Bold(true), title)
	y += 2

	status := fmt.Sprintf("Round %d - %s", hud.Round, hud.PhaseName)
	if hud.Paused {
		status += " [PAUSED]"
	}
	r.drawText(x, y, tcell.StyleDefault.Foreground(tcell.ColorYellow), status)
	y++

	if hud.FirstPlayer != "" {
		r.drawText(x, y, tcell.StyleDefault.Foreground(tcell.ColorGray), "First player: "+hud.FirstPlayer)
		y++
	}
	if len(hud.TurnOrder) > 0 {
		r.drawText(x, y, tcell.StyleDefault.Foreground(tcell.ColorGray), "Order: "+orderLine(hud.TurnOrder, hud.CurrentName))
		y++
	}
	y++

	for _, s := range survivors {
		line := fmt.Sprintf("%-7s", s.Name)
		style := tcell.StyleDefault.Foreground(s.Color)
		if s.Alive {
			line += fmt.Sprintf("AP %d/%d  W %d/%d  XP %d %s",
				s.Actions, s.MaxActions, s.Wounds, entity.SurvivorMaxWounds, s.XP, s.Level)
		} else {
			line += "dead"
			style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}
		r.drawText(x, y, style, line)
		y++
	}
	y++

	switch {
	case hud.GameOver != "":
		r.drawText(x, y, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true), hud.GameOver)
		y++
	case hud.CombatMessage != "":
		r.drawText(x, y, tcell.StyleDefault.Foreground(tcell.ColorRed), hud.CombatMessage)
		y++
		for i, label := range hud.TargetLabels {
			r.drawText(x, y, tcell.StyleDefault, fmt.Sprintf("%d. %s", i+1, label))
			y++
		}
	case hud.CurrentName != "":
		r.drawText(x, y, tcell.StyleDefault.Bold(true), hud.CurrentName+"'s turn")
		y++
		for i, label := range hud.ActionLabels {
			r.drawText(x, y, tcell.StyleDefault, fmt.Sprintf("%d. %s", i+1, label))
			y++
		}
	}

	switch {
	case hud.AdvanceMessage != "":
		y++
		r.drawText(x, y, tcell.StyleDefault.Foreground(tcell.ColorGreen), hud.AdvanceMessage)
	case hud.PhaseComplete && hud.GameOver == "":
		y++
		r.drawText(x, y, tcell.StyleDefault.Foreground(tcell.ColorGreen), "Phase complete - press 'space' to continue")
	}
}

// drawMessages draws the recent gameplay log under the board.
func (r *Renderer) drawMessages(board *world.Board, messages []string) {
	y := boardY + board.Size*cellH + 2
	for i, msg := range messages {
		r.drawText(boardX, y+i, tcell.StyleDefault.Foreground(tcell.ColorGray), msg)
	}
}

// drawText draws a string, clipped at the right screen edge.
func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		if col >= w {
			return
		}
		r.screen.SetContent(col, y, ch, style)
		col++
	}
}

// orderLine formats the turn order, bracketing the acting survivor.
func orderLine(order []string, current string) string {
	parts := make([]string, len(order))
	for i, name := range order {
		if current != "" && name == current {
			parts[i] = "[" + name + "]"
		} else {
			parts[i] = name
		}
	}
	return strings.Join(parts, " > ")
}

// tokenRune returns the board token for a survivor name.
func tokenRune(name string) rune {
	for _, r := range name {
		return unicode.ToUpper(r)
	}
	return '?'
}
