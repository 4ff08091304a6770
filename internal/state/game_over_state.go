package state

import (
	"fmt"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/config"
	"platanus-survivor/internal/interfaces"
	"platanus-survivor/internal/ui"
	"platanus-survivor/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState показывает итог и таблицу рекордов
type GameOverState struct {
	sm       *StateMachine
	session  *Session
	snapshot app.Snapshot
	scores   []interfaces.ScoreEntry
	keys     []ebiten.Key
}

func NewGameOverState(sm *StateMachine, session *Session, final app.Snapshot) *GameOverState {
	return &GameOverState{sm: sm, session: session, snapshot: final}
}

func (s *GameOverState) Enter() {
	if lb := s.session.Game.Leaderboard(); lb != nil {
		s.scores = lb.Load()
	}
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.session.Sound != nil {
		s.session.Sound.ToggleMute()
		return
	}
	// клавиши движения зажаты в момент смерти; рестарт только по другой клавише
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if isMovementKey(k) || k == ebiten.KeyM {
			continue
		}
		s.session.Game.Reset()
		s.sm.SetState(NewGameState(s.sm, s.session))
		return
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.session.Renderer.Draw(screen, &s.snapshot)

	hud := s.snapshot.HUD
	sess := s.session
	lines := []ui.Line{
		{Text: "GAME OVER", Face: sess.Title, Color: config.GameOverTextColor},
		{Text: fmt.Sprintf("SCORE %d   TIME %s   LVL %d", hud.Score, utils.FormatClock(hud.ElapsedMs), hud.Level), Face: sess.Large, Color: config.TextLightColor},
		{Text: fmt.Sprintf("KILLS %d   BOSSES %d   GEMS %d", hud.Stats.Kills, hud.Stats.BossKills, hud.Stats.GemsCollected), Face: sess.Face, Color: config.TextLightColor},
	}
	if len(s.scores) > 0 {
		lines = append(lines, ui.Line{Text: "HIGH SCORES", Face: sess.Large, Color: config.TierColors[0]})
		for i, e := range s.scores {
			lines = append(lines, ui.Line{
				Text:  fmt.Sprintf("%2d. %7d  %s", i+1, e.Score, utils.FormatClock(e.TimeMs)),
				Face:  sess.Face,
				Color: config.TextLightColor,
			})
		}
	}
	lines = append(lines, ui.Line{Text: "PRESS ANY NON-MOVEMENT KEY TO RESTART", Face: sess.Face, Color: config.TextLightColor})
	ui.DrawOverlay(screen, lines)
}

func (s *GameOverState) Exit() {}
