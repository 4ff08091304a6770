package state

import (
	"fmt"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/assets"
	"platanus-survivor/internal/audio"
	"platanus-survivor/internal/render"
	"platanus-survivor/internal/ui"

	"golang.org/x/image/font"
)

// Session: общие ресурсы экранов
type Session struct {
	Game     *app.Game
	Sound    *audio.SoundManager
	Renderer *render.Renderer
	HUD      *ui.HUD

	Face  font.Face
	Large font.Face
	Title font.Face
}

// NewSession готовит шрифты и отрисовщики для игры
func NewSession(game *app.Game, sound *audio.SoundManager, fonts *assets.FontManager) (*Session, error) {
	s := &Session{Game: game, Sound: sound, Renderer: render.NewRenderer()}
	var err error
	if s.Face, err = fonts.Face(13); err != nil {
		return nil, fmt.Errorf("hud face: %w", err)
	}
	if s.Large, err = fonts.Face(18); err != nil {
		return nil, fmt.Errorf("large face: %w", err)
	}
	if s.Title, err = fonts.Face(40); err != nil {
		return nil, fmt.Errorf("title face: %w", err)
	}
	s.HUD = ui.NewHUD(s.Face, s.Large)
	return s, nil
}

func (s *Session) muted() bool {
	return s.Sound != nil && s.Sound.Muted()
}
