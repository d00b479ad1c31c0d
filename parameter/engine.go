package parameter

import "time"

// Simulation & Render Timing
const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 60

	// TickInterval is the simulation tick interval (~60 Hz)
	TickInterval = time.Second / TickRate

	// TickTimeout bounds how long the scheduler waits for a tick before logging an overrun
	TickTimeout = 4 * TickInterval

	// FrameInterval is the render cadence, independent of the tick
	FrameInterval = time.Second / 30

	// ShutdownTimeout bounds the wait for in-flight work on Stop
	ShutdownTimeout = 2 * time.Second

	// MaxTickBehind resyncs tick deadlines when the loop falls this many intervals behind
	MaxTickBehind = 2
)

// History Limits
const (
	// HistorySize is the number of match-history lines retained
	HistorySize = 20
)

// Spectator Feed
const (
	// SpectateBroadcastInterval is the snapshot push interval on the websocket stream
	SpectateBroadcastInterval = 100 * time.Millisecond

	// SpectateWriteTimeout bounds a single websocket write
	SpectateWriteTimeout = 2 * time.Second
)
