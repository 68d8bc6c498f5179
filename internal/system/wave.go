// internal/system/wave.go
package system

import (
	"fmt"
	"log"
	"math"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/types"
	"go-wave-survival/internal/utils"
)

// WaveSystem owns the spawn cadence and wave lifecycle: it paces enemy
// spawns, tracks completion, debounces the end-of-wave transition and
// computes the reward.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// StartWave resets per-wave state and begins wave w. On boss waves the
// boss spawns up front; the first regular enemy also spawns immediately so
// the field is never empty at wave start. A failed boss construction
// aborts the whole start.
func (s *WaveSystem) StartWave(w int) error {
	count, err := EnemyCount(w)
	if err != nil {
		return err
	}
	interval, err := SpawnInterval(w)
	if err != nil {
		return err
	}
	scaling, err := Scaling(w)
	if err != nil {
		return err
	}

	wave := &component.Wave{
		Number:         w,
		EnemiesToSpawn: count,
		SpawnInterval:  interval,
		Scaling:        scaling,
		BossWave:       w%config.BossWaveInterval == 0,
		StartedAt:      s.ecs.GameTime,
	}
	s.ecs.Wave = wave

	if wave.BossWave {
		if err := s.spawnBoss(wave); err != nil {
			return fmt.Errorf("start wave %d: %w", w, err)
		}
	}

	s.spawnEnemy(wave)
	return nil
}

// Update advances the spawn timer. It runs at the top of the frame so an
// enemy spawned this frame can still collide this same frame.
func (s *WaveSystem) Update(dt float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.EnemiesToSpawn <= 0 {
		return
	}
	wave.SpawnTimer += dt
	if wave.SpawnTimer >= wave.SpawnInterval {
		s.spawnEnemy(wave)
		// Perturb the next delay so spawns don't feel mechanical.
		wave.SpawnTimer = s.rng.Range(-config.SpawnJitter, config.SpawnJitter)
	}
}

// CheckCompletion runs after collision resolution, so it never judges the
// wave on a stale pre-spawn entity count. Once the wave stays complete
// through the debounce delay, the end-of-wave transition fires exactly
// once, guarded by the Complete flag.
func (s *WaveSystem) CheckCompletion(dt float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.Complete {
		return
	}
	if !s.IsComplete() {
		wave.CompleteTimer = 0
		return
	}
	wave.CompleteTimer += dt
	if wave.CompleteTimer >= config.WaveCompleteDelay {
		wave.Complete = true
		reward := s.Reward(wave)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WaveEndedData{Wave: wave.Number, Reward: reward},
		})
	}
}

// IsComplete is true iff nothing remains to spawn and no enemies are
// alive. Dying enemies still count as alive until their death animation
// finishes and they are removed.
func (s *WaveSystem) IsComplete() bool {
	wave := s.ecs.Wave
	if wave == nil {
		return false
	}
	return wave.EnemiesToSpawn == 0 && len(s.ecs.Enemies) == 0
}

// Reward computes the end-of-wave coin payout: a base amount, a per-wave
// bonus, and a time bonus for clearing faster than the fast-clear
// threshold.
func (s *WaveSystem) Reward(wave *component.Wave) int {
	reward := config.RewardBase + int(math.Floor(float64(wave.Number)*config.RewardPerWave))
	if s.ecs.GameTime-wave.StartedAt < config.FastClearSeconds {
		reward += config.RewardTimeBonus
	}
	return reward
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	if wave.EnemiesToSpawn <= 0 {
		return
	}
	defID := s.rng.ChooseWeighted(defs.SpawnTable(wave.Number))
	x, y := s.perimeterPoint()
	id, err := SpawnScaledEnemy(s.ecs, defID, x, y, wave.Scaling)
	if err != nil {
		log.Printf("WaveSystem: %v", err)
		return
	}
	wave.EnemiesToSpawn--
	wave.Spawned++
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

func (s *WaveSystem) spawnBoss(wave *component.Wave) error {
	encounter := wave.Number/config.BossWaveInterval - 1
	defID := defs.BossRotation[encounter%len(defs.BossRotation)]
	def, ok := defs.BossLibrary[defID]
	if !ok {
		return fmt.Errorf("boss definition not found for ID %s", defID)
	}

	boss, err := NewBossState(def)
	if err != nil {
		return err
	}

	x, y := s.perimeterPoint()
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed * wave.Scaling.Speed}
	hp := def.Health * wave.Scaling.Health
	s.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(def.Visuals.Radius),
		HasStroke: def.Visuals.HasStroke,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:      def.ID,
		Damage:     def.Damage * wave.Scaling.Damage,
		Radius:     def.Radius,
		CoinValue:  def.CoinValue,
		SlowFactor: 1,
	}
	boss.ShieldHP = def.ShieldHealth * wave.Scaling.Health
	boss.MaxShieldHP = boss.ShieldHP
	s.ecs.Bosses[id] = boss

	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: id})
	return nil
}

// perimeterPoint picks a spawn location just outside a random screen edge.
func (s *WaveSystem) perimeterPoint() (float64, float64) {
	w := float64(config.ScreenWidth)
	h := float64(config.ScreenHeight)
	m := config.SpawnMargin
	switch s.rng.Intn(4) {
	case 0: // top
		return s.rng.Range(0, w), -m
	case 1: // bottom
		return s.rng.Range(0, w), h + m
	case 2: // left
		return -m, s.rng.Range(0, h)
	default: // right
		return w + m, s.rng.Range(0, h)
	}
}

// SpawnScaledEnemy creates a regular enemy entity at (x, y) with the given
// wave scaling applied to its base stats. The collision system also uses
// it to spawn splitter children.
func SpawnScaledEnemy(ecs *entity.ECS, defID string, x, y float64, scaling component.StatScaling) (types.EntityID, error) {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		return 0, fmt.Errorf("enemy definition not found for ID %s", defID)
	}

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: def.Speed * scaling.Speed}
	hp := def.Health * scaling.Health
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(def.Visuals.Radius),
		HasStroke: def.Visuals.HasStroke,
	}
	ecs.Enemies[id] = &component.Enemy{
		DefID:      defID,
		Damage:     def.Damage * scaling.Damage,
		Radius:     def.Radius,
		CoinValue:  def.CoinValue,
		SlowFactor: 1,
	}
	return id, nil
}
