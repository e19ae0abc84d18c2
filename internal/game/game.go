package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jlucieda/zombicide/internal/entity"
	"github.com/jlucieda/zombicide/internal/gamedata"
	"github.com/jlucieda/zombicide/internal/telemetry"
	"github.com/jlucieda/zombicide/internal/ui"
	"github.com/jlucieda/zombicide/internal/world"
)

// messageLogSize is how many recent log lines the HUD keeps visible.
const messageLogSize = 6

// Game wires the turn engine to the terminal: it owns the screen, the
// shared state, and the turn manager, and translates key presses into
// manager commands. Win and loss live here, not in the engine; the
// shell declares game over once no survivor is left.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer

	state   *State
	manager *TurnManager
	rng     *rand.Rand

	mapName  string
	messages []string
	running  bool
	gameOver bool
}

// New creates a game from configuration: loads the embedded databases,
// builds the opening state, and opens the terminal screen.
func New(cfg Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	maps, err := gamedata.LoadMapRegistry()
	if err != nil {
		return nil, err
	}
	mapDef, err := maps.GetByIndex(cfg.MapIndex)
	if err != nil {
		return nil, err
	}
	roster, err := gamedata.LoadSurvivors()
	if err != nil {
		return nil, err
	}
	breeds, err := gamedata.LoadBreedRegistry()
	if err != nil {
		return nil, err
	}

	state, err := Setup(mapDef, roster, breeds, rng)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		state:    state,
		manager:  NewTurnManager(state, breeds, rng),
		rng:      rng,
		mapName:  mapDef.Name,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("map", g.mapName),
		attribute.Int("survivors", len(g.state.Survivors)),
		attribute.Int("zombies", len(g.state.Zombies)),
	)
	initSpan.End()

	g.pushMessage(fmt.Sprintf("=== Round %d ===", g.manager.Round()))

	for g.running {
		// Let the turn machine settle, render what it wants, then
		// block for the next command.
		g.step(ctx)
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// step runs the turn machine until it needs input again and funnels
// its events into the message log.
func (g *Game) step(ctx context.Context) {
	for g.manager.Tick() {
	}
	g.collectEvents(ctx)

	if !g.gameOver && g.state.LivingSurvivorCount() == 0 {
		g.gameOver = true
		g.pushMessage("All survivors have fallen")
	}
}

// collectEvents drains manager events into the log, tracing round
// boundaries as they pass.
func (g *Game) collectEvents(ctx context.Context) {
	for _, ev := range g.manager.TakeEvents() {
		switch ev.Kind {
		case EventRoundStarted:
			tracer := telemetry.Tracer("game")
			_, span := tracer.Start(ctx, "round.start")
			span.SetAttributes(
				attribute.Int("round", ev.Round),
				attribute.Int("survivors_alive", g.state.LivingSurvivorCount()),
				attribute.Int("zombies_alive", g.state.LivingZombieCount()),
			)
			span.End()
			g.pushMessage(fmt.Sprintf("=== Round %d ===", ev.Round))
		case EventPhaseChanged:
			g.pushMessage(fmt.Sprintf("Round %d: %s", ev.Round, ev.Phase.DisplayName()))
		case EventMessage:
			g.pushMessage(ev.Message)
		}
	}
}

// render draws the current frame from manager and state snapshots.
func (g *Game) render() {
	hud := ui.HUD{
		MapName:        g.mapName,
		Round:          g.manager.Round(),
		PhaseName:      g.manager.CurrentPhase().DisplayName(),
		Paused:         g.manager.IsPaused(),
		PhaseComplete:  g.manager.PhaseComplete(),
		CombatMessage:  g.manager.CombatMessage(),
		AdvanceMessage: g.manager.AdvanceMessage(),
		Messages:       g.messages,
	}

	if info := g.manager.GetTurnInfo(); info.Order != nil {
		hud.FirstPlayer = info.Order.FirstPlayer
		hud.TurnOrder = info.Order.Order
	}

	if s := g.manager.CurrentSurvivor(); s != nil && g.manager.IsWaitingForAction() {
		hud.CurrentName = s.Name
		for _, opt := range g.manager.AvailableActions() {
			hud.ActionLabels = append(hud.ActionLabels, opt.Label)
		}
	}

	for _, t := range g.manager.TargetCandidates() {
		hud.TargetLabels = append(hud.TargetLabels,
			fmt.Sprintf("%s (Wounds: %d/%d)", t.Name, t.Wounds, entity.SurvivorMaxWounds))
	}

	if g.gameOver {
		hud.GameOver = "GAME OVER - press 'q' to quit"
	}

	g.renderer.Render(g.state.Board, g.state.Survivors, g.state.Zombies, hud)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. Once the game is over only
// the quit keys do anything.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	}

	if g.gameOver {
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			g.running = false
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyUp:
		g.manager.ExecuteMove(world.Up)
	case tcell.KeyDown:
		g.manager.ExecuteMove(world.Down)
	case tcell.KeyLeft:
		g.manager.ExecuteMove(world.Left)
	case tcell.KeyRight:
		g.manager.ExecuteMove(world.Right)

	case tcell.KeyEnter:
		g.manager.AdvancePhase()

	case tcell.KeyRune:
		g.handleRune(ctx, ev.Rune())
	}
}

// handleRune processes character keys.
func (g *Game) handleRune(ctx context.Context, r rune) {
	switch r {
	case 'q', 'Q':
		g.running = false
	case 'p', 'P':
		g.manager.TogglePause()
	case 'a', 'A':
		g.tryAttack(ctx)
	case ' ':
		// Space skips the acting survivor's turn; at any other prompt
		// it advances the phase.
		if g.manager.IsWaitingForAction() {
			g.manager.SkipTurn()
		} else {
			g.manager.AdvancePhase()
		}
	default:
		if r >= '1' && r <= '9' {
			g.selectIndex(int(r - '1'))
		}
	}
}

// selectIndex routes a digit key to whichever menu is waiting.
func (g *Game) selectIndex(i int) {
	switch {
	case g.manager.IsWaitingForTarget():
		g.manager.SelectSurvivorTarget(i)
	case g.manager.IsWaitingForAction():
		g.manager.SelectAction(i)
	}
}

// tryAttack executes a survivor attack under a combat span.
func (g *Game) tryAttack(ctx context.Context) {
	if !g.manager.IsWaitingForAction() {
		return
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	attacker := ""
	if s := g.manager.CurrentSurvivor(); s != nil {
		attacker = s.Name
	}

	ok := g.manager.ExecuteAttack()

	span.SetAttributes(
		attribute.String("attacker", attacker),
		attribute.Bool("hit", ok),
	)
	span.End()
}

// pushMessage appends a line to the HUD message log, keeping only the
// most recent lines.
func (g *Game) pushMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > messageLogSize {
		g.messages = g.messages[len(g.messages)-messageLogSize:]
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
