// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60
	MaxDeltaTime = 0.06 // секунды; более длинный кадр режется

	// Терминальный фронтенд
	TerminalFPS        = 30
	TerminalKeyHoldMs  = 150 // терминал не сообщает об отпускании клавиши
	TerminalHUDRows    = 1
	LeaderboardSize    = 10
	AudioSampleRate    = 44100
	AudioCueThrottleMs = 40

	HUDMarginX     = 20
	HUDMarginY     = 20
	HUDBarWidth    = 200
	HUDBarHeight   = 10
	TextCharWidth  = 7
	TextLineHeight = 16

	StrokeWidth = 2.0
)

var (
	BackgroundColor   = color.RGBA{26, 26, 46, 255}
	PlayerColor       = color.RGBA{0, 255, 136, 255}
	EnemyStrokeColor  = color.RGBA{0, 0, 0, 255}
	LaserColor        = color.RGBA{255, 255, 0, 255}
	MissileColor      = color.RGBA{255, 102, 0, 255}
	SpreadColor       = color.RGBA{255, 170, 255, 255}
	SeekerColor       = color.RGBA{102, 204, 255, 255}
	GemColor          = color.RGBA{0, 255, 255, 255}
	ExplosionColor    = color.RGBA{255, 136, 0, 255}
	SparkColor        = color.RGBA{255, 255, 0, 255}
	PulseColor        = color.RGBA{136, 255, 255, 255}
	HPBarColor        = color.RGBA{255, 0, 68, 255}
	XPBarColor        = color.RGBA{0, 204, 255, 255}
	BarBackColor      = color.RGBA{60, 60, 80, 220}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 180}
	GameOverTextColor = color.RGBA{255, 68, 68, 255}
	FeverColor        = color.RGBA{255, 102, 204, 255}
	TierColors        = []color.RGBA{
		{255, 225, 53, 255}, // обычный
		{255, 80, 80, 255},  // красный
		{80, 140, 255, 255}, // синий
		{190, 60, 230, 255}, // босс
	}
)
