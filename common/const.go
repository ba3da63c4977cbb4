package common

const (
	// Gravity in pixels/sec^2, positive Y pointing down.
	Gravity = 900.0

	// TicksPerSecond is the fixed update rate the tween durations and
	// physics step assume.
	TicksPerSecond = 60
)
