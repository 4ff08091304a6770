// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/component"
	"platanus-survivor/internal/config"
	"platanus-survivor/internal/defs"
	shape "platanus-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	explosionInnerColor = color.RGBA{255, 255, 0, 255}
	flashColor          = color.RGBA{255, 255, 255, 255}
	magnetRingColor     = color.RGBA{0, 255, 255, 40}
)

// Renderer рисует снимок мира средствами ebiten
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw рисует игровое поле. HUD рисуется отдельно.
func (r *Renderer) Draw(screen *ebiten.Image, s *app.Snapshot) {
	screen.Fill(config.BackgroundColor)

	if s.MagnetRange > 0 {
		p := s.Player.Position
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(s.MagnetRange), 1, magnetRingColor, true)
	}
	for i := range s.Gems {
		r.drawGem(screen, &s.Gems[i])
	}
	for i := range s.Enemies {
		r.drawEnemy(screen, &s.Enemies[i])
	}
	for i := range s.Projectiles {
		r.drawProjectile(screen, &s.Projectiles[i])
	}
	for i := range s.Explosions {
		r.drawExplosion(screen, &s.Explosions[i])
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Size),
			shape.WithAlpha(config.SparkColor, p.Alpha()), true)
	}
	r.drawPlayer(screen, &s.Player)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *component.Player) {
	x, y, rad := float32(p.Position.X), float32(p.Position.Y), float32(p.Radius)
	vector.DrawFilledRect(screen, x-rad, y-rad, rad*2, rad*2, config.PlayerColor, true)
	vector.StrokeRect(screen, x-rad, y-rad, rad*2, rad*2, config.StrokeWidth, shape.DarkenColor(config.PlayerColor), true)
	// точка направления
	fx := x + float32(math.Cos(p.FacingAngle))*20
	fy := y + float32(math.Sin(p.FacingAngle))*20
	vector.DrawFilledCircle(screen, fx, fy, 3, config.TextLightColor, true)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	clr := tierColor(e.Tier)
	pts := shape.BananaOutline(e.Position.X, e.Position.Y, e.Size)
	width := float32(config.StrokeWidth)
	if e.IsBoss() {
		width *= 2
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
	if e.MaxHP > 0 && e.HP < e.MaxHP {
		w := float32(e.Size * 2)
		x := float32(e.Position.X) - w/2
		y := float32(e.Position.Y - e.Size - 8)
		vector.DrawFilledRect(screen, x, y, w, 3, config.BarBackColor, false)
		vector.DrawFilledRect(screen, x, y, w*float32(e.HP)/float32(e.MaxHP), 3, config.HPBarColor, false)
	}
}

func (r *Renderer) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	x, y := float32(p.Position.X), float32(p.Position.Y)
	switch p.Kind {
	case defs.WeaponLaser:
		vector.DrawFilledRect(screen, x-3, y-3, 6, 6, config.LaserColor, false)
	case defs.WeaponMissile:
		// хвост
		for i, k := range []float64{0.02, 0.04} {
			tx := float32(p.Position.X - p.Velocity.X*k)
			ty := float32(p.Position.Y - p.Velocity.Y*k)
			vector.DrawFilledCircle(screen, tx, ty, float32(3-i), shape.WithAlpha(config.MissileColor, 0.5), true)
		}
		vector.DrawFilledCircle(screen, x, y, 5, config.MissileColor, true)
		vector.DrawFilledCircle(screen, x, y, 2, explosionInnerColor, true)
	case defs.WeaponSpread:
		vector.DrawFilledCircle(screen, x, y, 3, config.SpreadColor, true)
	case defs.WeaponSeeker:
		vector.DrawFilledCircle(screen, x, y, 4, config.SeekerColor, true)
		vector.StrokeCircle(screen, x, y, 6, 1, config.SeekerColor, true)
	default:
		vector.DrawFilledCircle(screen, x, y, 3, config.TextLightColor, true)
	}
}

func (r *Renderer) drawExplosion(screen *ebiten.Image, e *component.Explosion) {
	a := e.Alpha()
	x, y, rad := float32(e.Position.X), float32(e.Position.Y), float32(e.Radius)
	if rad <= 0 {
		return
	}
	if e.Pulse {
		vector.StrokeCircle(screen, x, y, rad, 3, shape.WithAlpha(config.PulseColor, a), true)
		return
	}
	vector.StrokeCircle(screen, x, y, rad, 3, shape.WithAlpha(config.ExplosionColor, a), true)
	vector.StrokeCircle(screen, x, y, rad*0.7, 2, shape.WithAlpha(explosionInnerColor, a), true)
	if a > 0.5 {
		vector.DrawFilledCircle(screen, x, y, rad*0.3, shape.WithAlpha(flashColor, a), true)
	}
}

func (r *Renderer) drawGem(screen *ebiten.Image, g *component.Gem) {
	vector.DrawFilledCircle(screen, float32(g.Position.X), float32(g.Position.Y), 4, config.GemColor, true)
}

func tierColor(t defs.Tier) color.RGBA {
	if int(t) >= 0 && int(t) < len(config.TierColors) {
		return config.TierColors[t]
	}
	return config.TierColors[0]
}
