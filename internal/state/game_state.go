// internal/state/game_state.go
package state

import (
	"platanus-survivor/internal/app"
	"platanus-survivor/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState: идёт сессия
type GameState struct {
	sm       *StateMachine
	session  *Session
	snapshot app.Snapshot
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{sm: sm, session: session}
}

func (g *GameState) Enter() {
	g.snapshot = g.session.Game.Snapshot()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.session.Sound != nil {
		g.session.Sound.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	game := g.session.Game
	game.Tick(deltaTime * 1000)
	g.snapshot = game.Snapshot()

	if game.Phase() == component.PhaseGameOver {
		g.sm.SetState(NewGameOverState(g.sm, g.session, g.snapshot))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.session.Renderer.Draw(screen, &g.snapshot)
	g.session.HUD.Draw(screen, &g.snapshot, g.session.muted())
}

func (g *GameState) Exit() {}
