package core

import "errors"

// Sentinel errors for argument-checked graph operations.
//
// Each mutating or querying operation that takes node arguments validates
// them before touching the store, so any of these errors guarantees the
// graph is structurally unchanged. The messages are part of the external
// contract and must stay stable character-for-character.
var (
	// ErrInsertEdge indicates InsertEdge/InsertWeightedEdge referenced a missing endpoint.
	ErrInsertEdge = errors.New("core: cannot call InsertEdge when either src or dst node does not exist")

	// ErrReplaceNode indicates ReplaceNode was called on a node that is not in the graph.
	ErrReplaceNode = errors.New("core: cannot call ReplaceNode on a node that doesn't exist")

	// ErrMergeReplaceNode indicates MergeReplaceNode referenced a missing old or new node.
	ErrMergeReplaceNode = errors.New("core: cannot call MergeReplaceNode on old or new data if they don't exist in the graph")

	// ErrEraseEdge indicates EraseEdge/EraseWeightedEdge referenced a missing endpoint.
	ErrEraseEdge = errors.New("core: cannot call EraseEdge on src or dst if they don't exist in the graph")

	// ErrIsConnected indicates IsConnected referenced a missing endpoint.
	ErrIsConnected = errors.New("core: cannot call IsConnected if src or dst node don't exist in the graph")

	// ErrEdges indicates Edges referenced a missing endpoint.
	ErrEdges = errors.New("core: cannot call Edges if src or dst node don't exist in the graph")

	// ErrConnections indicates Connections referenced a missing src node.
	ErrConnections = errors.New("core: cannot call Connections if src doesn't exist in the graph")
)

// Panic messages for iterator precondition violations. These mirror the
// container's documented undefined-behavior boundary: misusing an iterator
// is a programmer error, not a recoverable condition.
const (
	panicDerefEnd       = "core: cannot dereference end iterator"
	panicAdvanceEnd     = "core: cannot advance iterator past end"
	panicDecEmpty       = "core: cannot decrement end iterator of an empty graph"
	panicDecAllEmpty    = "core: cannot decrement: all nodes are empty"
	panicDecBeforeBegin = "core: cannot decrement iterator before beginning"
	panicEraseEnd       = "core: cannot erase at end iterator"
	panicInvalidated    = "core: iterator invalidated by graph mutation"
	panicUnattached     = "core: iterator not attached to a graph"
	panicForeignGraph   = "core: iterator belongs to a different graph"
)
