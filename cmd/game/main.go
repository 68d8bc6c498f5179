// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-wave-survival/internal/app"
	"go-wave-survival/internal/audio"
	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/system"
)

// AppGame adapts the session to ebiten's game loop and translates raw
// input into orchestrator calls.
type AppGame struct {
	game           *app.Game
	render         *system.RenderSystem
	sound          *audio.Engine
	lastUpdateTime time.Time
}

var shopKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.handleInput()
	a.game.Update(deltaTime)
	return nil
}

func (a *AppGame) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.sound.ToggleMute()
	}

	switch a.game.ECS.Phase {
	case component.ShopPhase:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.game.ContinueToNextWave()
			return
		}
		choices := a.game.ShopChoices()
		for i, key := range shopKeys {
			if i >= len(choices) {
				break
			}
			if inpututil.IsKeyJustPressed(key) {
				if _, err := a.game.PurchasePowerUp(choices[i]); err != nil {
					log.Printf("shop: %v", err)
				}
			}
		}
	case component.GameOverPhase:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.game.Reset()
		}
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.render.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "optional YAML file overriding enemy/boss stats")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based")
	flag.Parse()

	if *tuningPath != "" {
		if err := defs.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("tuning: %v", err)
		}
	}

	sound := audio.NewEngine()
	game := app.NewGame(sound, *seed)
	appGame := &AppGame{
		game:           game,
		render:         system.NewRenderSystem(game.ECS, game.FX, game),
		sound:          sound,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Survival")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
