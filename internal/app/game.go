// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/fx"
	"go-wave-survival/internal/interfaces"
	"go-wave-survival/internal/system"
	"go-wave-survival/internal/utils"
)

// Game glues the wave director, entity updates and combat resolution into
// one per-frame update, and owns the shop/game-over phase transitions.
type Game struct {
	ECS             *entity.ECS
	WaveSystem      *system.WaveSystem
	PlayerSystem    *system.PlayerSystem
	BossSystem      *system.BossSystem
	MovementSystem  *system.MovementSystem
	CollisionSystem *system.CollisionSystem
	EventDispatcher *event.Dispatcher
	FX              *fx.Effects
	Sound           interfaces.SoundPlayer
	Rng             *utils.PRNGService

	shopChoices []string
	lastReward  int
	paused      bool
}

// NewGame initializes a session and starts wave 1. A zero seed gives an
// unseeded (time-based) random stream; tests pass a fixed one.
func NewGame(sound interfaces.SoundPlayer, seed int64) *Game {
	ecs := entity.NewECS()
	ecs.Player = component.NewPlayer(config.ScreenWidth/2, config.ScreenHeight/2)

	rng := utils.NewPRNGService(seed)
	dispatcher := event.NewDispatcher()
	effects := fx.NewEffects(rng)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		FX:              effects,
		Sound:           sound,
		Rng:             rng,
	}
	g.WaveSystem = system.NewWaveSystem(ecs, dispatcher, rng)
	g.PlayerSystem = system.NewPlayerSystem(ecs, sound)
	g.BossSystem = system.NewBossSystem(ecs, dispatcher, rng, effects, sound)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.CollisionSystem = system.NewCollisionSystem(ecs, dispatcher, effects, sound)

	dispatcher.Subscribe(event.WaveEnded, g)
	dispatcher.Subscribe(event.BossSpawned, g)

	g.mustStartWave(1)
	return g
}

// Update progresses the simulation by one frame. The order is fixed:
// spawn-timer advancement, then entity updates, then collision
// resolution, then the wave-completion and game-over checks.
func (g *Game) Update(dt float64) {
	if g.paused {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}

	g.FX.Update(dt)

	if g.ECS.Phase != component.WavePhase {
		return
	}

	g.ECS.GameTime += dt
	g.WaveSystem.Update(dt)
	g.PlayerSystem.Update(dt)
	g.BossSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.CollisionSystem.Update(dt)

	if g.ECS.Player.IsDead() {
		g.ECS.Phase = component.GameOverPhase
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
		g.Sound.Play("game_over")
		return
	}
	g.WaveSystem.CheckCompletion(dt)
}

// OnEvent implements event.Listener for the orchestration-level events.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		data := e.Data.(event.WaveEndedData)
		if err := g.ECS.Player.AddCoins(data.Reward); err != nil {
			log.Printf("Game: wave reward: %v", err)
		}
		g.lastReward = data.Reward
		g.rollShopChoices()
		g.ECS.Phase = component.ShopPhase
		g.Sound.Play("wave_complete")
	case event.BossSpawned:
		g.Sound.Play("boss_spawn")
	}
}

// PurchasePowerUp spends coins on one power-up and applies its effect.
// The shop validates affordability before calling in, but trust is not
// one-way: the purchase re-validates through SpendCoins and returns false
// on insufficient funds. Unknown IDs are configuration errors.
func (g *Game) PurchasePowerUp(id string) (bool, error) {
	def, ok := defs.PowerUpLibrary[id]
	if !ok {
		return false, fmt.Errorf("purchase: unknown power-up %q", id)
	}
	player := g.ECS.Player
	if !def.Available(player) {
		return false, nil
	}
	price := def.Price(player.Stacks[def.ID])
	paid, err := player.SpendCoins(price)
	if err != nil {
		return false, err
	}
	if !paid {
		return false, nil
	}
	if err := defs.ApplyPowerUp(player, id); err != nil {
		return false, err
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.PowerUpPurchased, Data: id})
	g.Sound.Play("purchase")
	return true, nil
}

// ContinueToNextWave is the shop's hand-back point. Outside the shop
// phase it is a no-op.
func (g *Game) ContinueToNextWave() {
	if g.ECS.Phase != component.ShopPhase {
		return
	}
	g.ECS.Phase = component.WavePhase
	g.mustStartWave(g.ECS.Wave.Number + 1)
}

// Reset restarts the session from wave 1.
func (g *Game) Reset() {
	g.ECS.ClearEnemies()
	g.ECS.ClearProjectiles()
	g.ECS.GameTime = 0
	g.ECS.Player.Reset(config.ScreenWidth/2, config.ScreenHeight/2)
	g.FX.Reset()
	g.paused = false
	g.ECS.Phase = component.WavePhase
	g.mustStartWave(1)
}

func (g *Game) TogglePause() {
	g.paused = !g.paused
}

func (g *Game) IsPaused() bool {
	return g.paused
}

// LastReward is the payout of the most recently completed wave.
func (g *Game) LastReward() int {
	return g.lastReward
}

// ShopChoices returns the power-up IDs offered by the current shop visit.
func (g *Game) ShopChoices() []string {
	return g.shopChoices
}

// rollShopChoices samples the catalog for this shop visit, skipping
// upgrades the player can no longer buy.
func (g *Game) rollShopChoices() {
	var available []string
	for _, id := range defs.PowerUpOrder {
		if defs.PowerUpLibrary[id].Available(g.ECS.Player) {
			available = append(available, id)
		}
	}
	// Fisher-Yates on the available set, then take the first few.
	for i := len(available) - 1; i > 0; i-- {
		j := g.Rng.Intn(i + 1)
		available[i], available[j] = available[j], available[i]
	}
	if len(available) > config.ShopChoiceCount {
		available = available[:config.ShopChoiceCount]
	}
	g.shopChoices = available
}

// mustStartWave panics on wave-start failure: the wave number is derived
// internally and the boss roster is static, so failure here is a
// programming or configuration defect.
func (g *Game) mustStartWave(w int) {
	if err := g.WaveSystem.StartWave(w); err != nil {
		log.Panicf("Game: start wave %d: %v", w, err)
	}
}
