// internal/audio/audio.go
package audio

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone describes one pre-generated sound effect.
type tone struct {
	freq int
	dur  time.Duration
}

// The effect palette. Everything is synthesized at startup; there are no
// asset files to ship.
var palette = map[string]tone{
	"shoot":          {880, 40 * time.Millisecond},
	"hit":            {440, 50 * time.Millisecond},
	"explosion":      {110, 180 * time.Millisecond},
	"enemy_death":    {220, 120 * time.Millisecond},
	"player_hit":     {160, 200 * time.Millisecond},
	"wave_complete":  {660, 300 * time.Millisecond},
	"purchase":       {990, 120 * time.Millisecond},
	"boss_spawn":     {90, 500 * time.Millisecond},
	"boss_shoot":     {330, 60 * time.Millisecond},
	"phase_change":   {140, 350 * time.Millisecond},
	"pulse_charge":   {520, 200 * time.Millisecond},
	"pulse":          {260, 250 * time.Millisecond},
	"teleport":       {1200, 90 * time.Millisecond},
	"storm_warn":     {740, 150 * time.Millisecond},
	"lightning":      {1500, 80 * time.Millisecond},
	"crystal_form":   {620, 120 * time.Millisecond},
	"crystal_launch": {410, 100 * time.Millisecond},
	"shield_break":   {200, 300 * time.Millisecond},
	"shield_up":      {800, 200 * time.Millisecond},
	"game_over":      {80, 700 * time.Millisecond},
}

// Engine is the fire-and-forget audio collaborator. When the backend
// can't be initialized the engine degrades to a silent no-op instead of
// failing the game.
type Engine struct {
	buffers map[string]*beep.Buffer
	ready   bool
	muted   bool
}

// NewEngine initializes the speaker and synthesizes the effect palette.
// The persisted mute preference is restored if present.
func NewEngine() *Engine {
	e := &Engine{
		buffers: make(map[string]*beep.Buffer),
		muted:   loadMutePreference(),
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("audio: backend unavailable, running silent: %v", err)
		return e
	}

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	for name, t := range palette {
		streamer, err := generators.SineTone(sampleRate, float64(t.freq))
		if err != nil {
			log.Printf("audio: generate %q: %v", name, err)
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(beep.Take(sampleRate.N(t.dur), streamer))
		e.buffers[name] = buf
	}
	e.ready = true
	return e
}

// Play triggers a named effect. Unknown names and backend failures are
// ignored; the combat core never waits on audio.
func (e *Engine) Play(name string) {
	if !e.ready || e.muted {
		return
	}
	buf, ok := e.buffers[name]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Muted reports the current mute state.
func (e *Engine) Muted() bool {
	return e.muted
}

// ToggleMute flips and persists the mute preference.
func (e *Engine) ToggleMute() {
	e.muted = !e.muted
	saveMutePreference(e.muted)
}

func mutePrefPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wave-survival", "muted"), nil
}

func loadMutePreference() bool {
	path, err := mutePrefPath()
	if err != nil {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return len(data) > 0 && data[0] == '1'
}

func saveMutePreference(muted bool) {
	path, err := mutePrefPath()
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	value := []byte("0")
	if muted {
		value = []byte("1")
	}
	if err := os.WriteFile(path, value, 0o644); err != nil {
		log.Printf("audio: persist mute preference: %v", err)
	}
}
