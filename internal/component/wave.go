// internal/component/wave.go
package component

// Wave holds the live state of the current enemy wave.
type Wave struct {
	Number         int
	EnemiesToSpawn int
	Spawned        int
	Killed         int

	Scaling StatScaling

	SpawnTimer    float64
	SpawnInterval float64

	// Complete latches once the end-of-wave transition has fired; the
	// debounce timer lets final death animations play out first.
	Complete      bool
	CompleteTimer float64

	BossWave  bool
	StartedAt float64 // game time when the wave began
}
