package parameter

import "time"

// Collision Testing
const (
	// CollisionRecencyWindow restricts tested trail points to recent samples,
	// preventing stale-trail false hits
	CollisionRecencyWindow = 80 * time.Millisecond

	// CollisionMaxPoints is how many of the newest trail points are examined
	CollisionMaxPoints = 3

	// CollisionCooldown is the minimum time between repeat hits on one object
	CollisionCooldown = 200 * time.Millisecond

	// CollisionPurgeFactor times the cooldown gives the cooldown-entry purge age
	CollisionPurgeFactor = 2

	// CollisionRadiusFudge widens effective radii to favor the player's stroke
	CollisionRadiusFudge = 1.15
)
