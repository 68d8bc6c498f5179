// internal/system/render.go
package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/fx"
	"go-wave-survival/internal/types"
)

// HUDContext exposes the orchestrator state the renderer needs for
// overlays. An interface keeps the render system free of an app import.
type HUDContext interface {
	ShopChoices() []string
	LastReward() int
	IsPaused() bool
}

// RenderSystem draws the whole frame: entities, cosmetic effects, HUD and
// phase overlays. It only reads game state.
type RenderSystem struct {
	ecs  *entity.ECS
	fx   *fx.Effects
	hud  HUDContext
	face font.Face
}

func NewRenderSystem(ecs *entity.ECS, effects *fx.Effects, hud HUDContext) *RenderSystem {
	return &RenderSystem{
		ecs:  ecs,
		fx:   effects,
		hud:  hud,
		face: basicfont.Face7x13,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ox, oy := s.fx.ShakeOffset()

	s.drawEnemies(screen, ox, oy)
	s.drawBossOverlays(screen, ox, oy)
	s.drawProjectiles(screen, ox, oy)
	s.drawPlayer(screen, ox, oy)
	s.drawEffects(screen, ox, oy)
	s.drawHUD(screen)

	if s.fx.FlashActive() {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.FlashColor, false)
	}

	switch s.ecs.Phase {
	case component.ShopPhase:
		s.drawShop(screen)
	case component.GameOverPhase:
		s.drawGameOver(screen)
	}
	if s.hud.IsPaused() {
		text.Draw(screen, "PAUSED", s.face, config.ScreenWidth/2-24, config.ScreenHeight/2, config.TextLightColor)
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image, ox, oy float64) {
	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		renderable := s.ecs.Renderables[id]
		if pos == nil || renderable == nil {
			continue
		}
		radius := renderable.Radius
		clr := renderable.Color
		if enemy.Dying {
			// Shrink and fade through the death animation.
			t := float32(math.Max(enemy.DeathTimer/config.DeathAnimationTime, 0))
			radius *= t
			clr.A = uint8(float32(clr.A) * t)
		}
		x := float32(pos.X + ox)
		y := float32(pos.Y + oy)
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
		if renderable.HasStroke {
			vector.StrokeCircle(screen, x, y, radius, 2, config.TextLightColor, true)
		}
	}
}

func (s *RenderSystem) drawBossOverlays(screen *ebiten.Image, ox, oy float64) {
	for id, boss := range s.ecs.Bosses {
		pos := s.ecs.Positions[id]
		enemy := s.ecs.Enemies[id]
		if pos == nil || enemy == nil || enemy.Dying {
			continue
		}
		x := float32(pos.X + ox)
		y := float32(pos.Y + oy)

		if boss.ShieldHP > 0 {
			vector.StrokeCircle(screen, x, y, float32(enemy.Radius)+6, 3, config.ShieldColor, true)
		}
		if boss.Pulsing {
			vector.StrokeCircle(screen, x, y, float32(boss.PulseRadius), 3, color.RGBA{90, 160, 240, 200}, true)
		}
		for _, minion := range boss.Minions {
			mx := x + float32(math.Cos(minion.Angle)*minion.Distance)
			my := y + float32(math.Sin(minion.Angle)*minion.Distance)
			vector.DrawFilledCircle(screen, mx, my, 6, color.RGBA{220, 140, 240, 255}, true)
		}
		for _, angle := range boss.Shards {
			sx := x + float32(math.Cos(angle)*(enemy.Radius+14))
			sy := y + float32(math.Sin(angle)*(enemy.Radius+14))
			vector.DrawFilledCircle(screen, sx, sy, 4, color.RGBA{170, 240, 230, 255}, true)
		}
		for _, strike := range boss.Strikes {
			vector.StrokeCircle(screen, float32(strike.X+ox), float32(strike.Y+oy), float32(strike.Radius), 2, color.RGBA{120, 200, 255, 180}, true)
		}

		s.drawBossHealthBar(screen, id, boss)
	}
}

func (s *RenderSystem) drawBossHealthBar(screen *ebiten.Image, id types.EntityID, boss *component.Boss) {
	health := s.ecs.Healths[id]
	if health == nil || health.Max <= 0 {
		return
	}
	const barW, barH = 400.0, 10.0
	x := float32((config.ScreenWidth - barW) / 2)
	vector.DrawFilledRect(screen, x, 18, barW, barH, color.RGBA{50, 50, 60, 255}, false)
	frac := float32(health.Value / health.Max)
	vector.DrawFilledRect(screen, x, 18, barW*frac, barH, color.RGBA{220, 70, 70, 255}, false)
	if boss.MaxShieldHP > 0 {
		shieldFrac := float32(boss.ShieldHP / boss.MaxShieldHP)
		vector.DrawFilledRect(screen, x, 30, barW*shieldFrac, 4, config.ShieldBarColor, false)
	}
	text.Draw(screen, fmt.Sprintf("BOSS  phase %d", boss.Phase), s.face, int(x), 14, config.TextLightColor)
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image, ox, oy float64) {
	for id := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		renderable := s.ecs.Renderables[id]
		if pos == nil || renderable == nil {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X+ox), float32(pos.Y+oy), renderable.Radius, renderable.Color, true)
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, ox, oy float64) {
	player := s.ecs.Player
	x := float32(player.X + ox)
	y := float32(player.Y + oy)
	vector.DrawFilledCircle(screen, x, y, config.PlayerRadius, config.PlayerColor, true)
	if player.ShieldHP > 0 {
		vector.StrokeCircle(screen, x, y, config.PlayerRadius+5, 3, config.ShieldColor, true)
	}
	if player.SlowField {
		vector.StrokeCircle(screen, x, y, config.SlowFieldRadius, 1, color.RGBA{120, 160, 255, 60}, true)
	}
}

func (s *RenderSystem) drawEffects(screen *ebiten.Image, ox, oy float64) {
	for _, particle := range s.fx.Particles() {
		clr := particle.Color
		clr.A = uint8(255 * particle.Life / particle.MaxLife)
		vector.DrawFilledCircle(screen, float32(particle.X+ox), float32(particle.Y+oy), float32(particle.Size), clr, false)
	}
	for _, ring := range s.fx.Rings() {
		vector.StrokeCircle(screen, float32(ring.X+ox), float32(ring.Y+oy), float32(ring.Radius), 2, color.RGBA{255, 200, 120, 160}, true)
	}
	for _, ft := range s.fx.Texts() {
		clr := config.DamageTextColor
		switch ft.Category {
		case "reward":
			clr = config.RewardTextColor
		case "shield":
			clr = config.ShieldBarColor
		}
		text.Draw(screen, ft.Text, s.face, int(ft.X+ox), int(ft.Y+oy), clr)
	}
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	player := s.ecs.Player

	vector.DrawFilledRect(screen, 20, config.ScreenHeight-40, 200, 12, color.RGBA{50, 50, 60, 255}, false)
	vector.DrawFilledRect(screen, 20, config.ScreenHeight-40, 200*float32(player.HP/player.MaxHP), 12, config.HPBarColor, false)
	if player.MaxShieldHP > 0 {
		vector.DrawFilledRect(screen, 20, config.ScreenHeight-24, 200*float32(player.ShieldHP/player.MaxShieldHP), 6, config.ShieldBarColor, false)
	}

	wave := 0
	if s.ecs.Wave != nil {
		wave = s.ecs.Wave.Number
	}
	hud := fmt.Sprintf("wave %d   coins %d   score %d   kills %d", wave, player.Coins, player.Score, player.Kills)
	text.Draw(screen, hud, s.face, 20, 24, config.TextLightColor)
}

func (s *RenderSystem) drawShop(screen *ebiten.Image) {
	const panelW, panelH = 480.0, 260.0
	x := float32((config.ScreenWidth - panelW) / 2)
	y := float32((config.ScreenHeight - panelH) / 2)
	vector.DrawFilledRect(screen, x, y, panelW, panelH, color.RGBA{30, 30, 45, 235}, false)
	vector.StrokeRect(screen, x, y, panelW, panelH, 2, config.TextLightColor, false)

	line := int(y) + 28
	text.Draw(screen, fmt.Sprintf("WAVE CLEAR  +%d coins", s.hud.LastReward()), s.face, int(x)+20, line, config.RewardTextColor)
	line += 28
	player := s.ecs.Player
	for i, id := range s.hud.ShopChoices() {
		def := defs.PowerUpLibrary[id]
		price := def.Price(player.Stacks[id])
		entry := fmt.Sprintf("[%d] %-18s %4dc  %s", i+1, def.Name, price, def.Description)
		text.Draw(screen, entry, s.face, int(x)+20, line, config.TextLightColor)
		line += 22
	}
	line += 16
	text.Draw(screen, "press 1-4 to buy, SPACE for next wave", s.face, int(x)+20, line, config.TextLightColor)
}

func (s *RenderSystem) drawGameOver(screen *ebiten.Image) {
	player := s.ecs.Player
	wave := 0
	if s.ecs.Wave != nil {
		wave = s.ecs.Wave.Number
	}
	msg := fmt.Sprintf("GAME OVER\nwave %d  score %d\npress R to restart", wave, player.Score)
	text.Draw(screen, msg, s.face, config.ScreenWidth/2-90, config.ScreenHeight/2-20, config.TextLightColor)
}
