// internal/state/menu_state.go
package state

import (
	"platanus-survivor/internal/config"
	"platanus-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState: стартовый экран, любая клавиша начинает игру
type MenuState struct {
	sm      *StateMachine
	session *Session
	keys    []ebiten.Key
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.keys = inpututil.AppendJustPressedKeys(m.keys[:0])
	if len(m.keys) > 0 {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s := m.session
	ui.DrawOverlay(screen, []ui.Line{
		{Text: "PLATANUS SURVIVOR", Face: s.Title, Color: config.TierColors[0]},
		{Text: "PRESS START", Face: s.Large, Color: config.TextLightColor},
		{Text: "ARROWS / WASD TO MOVE, M TO MUTE, P TO PAUSE", Face: s.Face, Color: config.TextLightColor},
	})
}

func (m *MenuState) Exit() {}
