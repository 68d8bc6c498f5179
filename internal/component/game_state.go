package component

// Phase is the coarse game phase driving which systems run each frame.
type Phase int

const (
	WavePhase Phase = iota
	ShopPhase
	GameOverPhase
)
