package parameter

// Event Queue
const (
	// EventQueueSize is the bounded event buffer capacity, must be a power of two
	EventQueueSize = 256

	// EventBufferMask masks ring indices, derived from EventQueueSize
	EventBufferMask = EventQueueSize - 1
)

// Projection Defaults
const (
	// ProjectionFocal is the default perspective focal length (pixels)
	ProjectionFocal = 420.0

	// ProjectionNear is the near plane; objects at or behind it have no projection
	ProjectionNear = 0.5
)
