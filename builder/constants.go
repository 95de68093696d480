// Package builder: shared constants (no magic numbers in constructors).

package builder

// Minimum sizes per topology.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinCompleteNodes = 1
)

// Method tokens used as error-wrapping context.
const (
	MethodCycle    = "Cycle"
	MethodPath     = "Path"
	MethodStar     = "Star"
	MethodComplete = "Complete"
)

// StarCenterID is the fixed identifier of the star topology's hub node.
const StarCenterID = "Center"

// defaultConstWeight is the edge weight emitted when no WeightFn is set.
const defaultConstWeight = int64(1)
