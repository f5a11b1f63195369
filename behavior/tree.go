package behavior

// BehaviorTree owns a fixed node topology, its parallel state table, and a
// blackboard, and drives ticks against them. It is the unit an embedder
// stores per agent instance; the tree topology itself may be shared (it is
// immutable), but state and blackboard are per-instance.
type BehaviorTree[A, C any] struct {
	root       Node[A, C]
	states     []NodeState
	blackboard *Blackboard
	tickCount  uint64
}

// NewBehaviorTree wraps root with a freshly-sized state table and an empty
// blackboard.
func NewBehaviorTree[A, C any](root Node[A, C]) *BehaviorTree[A, C] {
	return &BehaviorTree[A, C]{
		root:       root,
		states:     NewStateTable(root),
		blackboard: NewBlackboard(),
	}
}

// Tick advances the tree by one tick with a delta of 1 and no RNG. Use
// TickWith directly when a RandomSelector/WeightedSelector node or
// WeightedRandom/TopN reasoner needs a random source.
func (t *BehaviorTree[A, C]) Tick(ah ActionHandler[A], ch ConditionHandler[C], obs Observer) Status {
	return t.TickWith(1, nil, ah, ch, obs)
}

// TickWith advances the tree by deltaTicks, optionally supplying rng for
// nodes that need it, and returns the root's Status for this tick.
func (t *BehaviorTree[A, C]) TickWith(deltaTicks uint32, rng RNG, ah ActionHandler[A], ch ConditionHandler[C], obs Observer) Status {
	if obs == nil {
		obs = NoOpObserver{}
	}
	ctx := NewContext(t.tickCount, deltaTicks, t.blackboard, rng)
	status := TickNode(t.root, 0, t.states, ctx, ah, ch, obs)
	t.tickCount += uint64(deltaTicks)
	return status
}

// Blackboard returns the tree's blackboard for read access.
func (t *BehaviorTree[A, C]) Blackboard() *Blackboard { return t.blackboard }

// BlackboardMut returns the tree's blackboard for mutation.
func (t *BehaviorTree[A, C]) BlackboardMut() *Blackboard { return t.blackboard }

// Reset zeroes every NodeState in the tree, discarding all in-flight
// Running positions, without touching the blackboard. Use ResetAll to also
// clear the blackboard.
func (t *BehaviorTree[A, C]) Reset() {
	resetSubtree(t.root, 0, t.states)
}

// ResetAll zeroes the entire state table and clears the blackboard. The
// tick counter is left unchanged.
func (t *BehaviorTree[A, C]) ResetAll() {
	t.Reset()
	t.blackboard.Clear()
}

// TickCount returns the tick counter: the sum of the deltas of every tick
// executed so far (one per Tick call).
func (t *BehaviorTree[A, C]) TickCount() uint64 { return t.tickCount }

// NodeCount returns the number of nodes in the tree, i.e. the size of its
// state table.
func (t *BehaviorTree[A, C]) NodeCount() int { return len(t.states) }

// Root returns the tree's root node.
func (t *BehaviorTree[A, C]) Root() Node[A, C] { return t.root }
