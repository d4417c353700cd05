package parameter

import "time"

// Event queue sizing. Size must be a power of two for mask indexing
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// Frame pacing for the loop and sandbox
const (
	FrameInterval = 16 * time.Millisecond
)
