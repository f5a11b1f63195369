package behavior

// NodeState is the per-node runtime bookkeeping carried across ticks,
// indexed by preorder id in a table parallel to the (immutable) node tree.
type NodeState struct {
	// RunningChild is the index within a composite's children where a
	// Running result was captured, so the next tick resumes there.
	RunningChild int
	// TickCounter is a general countdown/elapsed counter used by Wait,
	// Cooldown, and Timeout.
	TickCounter uint32
	// IterationCount is used by Repeat/Retry.
	IterationCount uint32
	// SelectedChild is the index pinned by UtilitySelector while its chosen
	// child returns Running. -1 means unbound.
	SelectedChild int
	// RandomSelection is the index pinned by RandomSelector/WeightedSelector
	// while its chosen child returns Running. -1 means unbound.
	RandomSelection int
}

// NewNodeState returns a zeroed NodeState (SelectedChild and
// RandomSelection unbound).
func NewNodeState() NodeState {
	return NodeState{SelectedChild: -1, RandomSelection: -1}
}

// Reset zeroes the record back to its just-constructed state.
func (s *NodeState) Reset() {
	*s = NewNodeState()
}

// NewStateTable allocates a state table sized for root's subtree.
func NewStateTable[A, C any](root Node[A, C]) []NodeState {
	n := SubtreeSize(root)
	if n == 0 {
		n = 1
	}
	states := make([]NodeState, n)
	for i := range states {
		states[i] = NewNodeState()
	}
	return states
}

// childIDForIndex returns the preorder id of children[index], given the
// parent's own id and its full children slice.
func childIDForIndex[A, C any](children []Node[A, C], parentID, index int) int {
	childID := parentID + 1
	for i := 0; i < index && i < len(children); i++ {
		childID += SubtreeSize(children[i])
	}
	return childID
}

// resetSubtree zeroes the NodeState of n and every node in its subtree,
// given n's own preorder id.
func resetSubtree[A, C any](n Node[A, C], nodeID int, states []NodeState) {
	states[nodeID].Reset()
	switch n.Kind {
	case KindDecorator:
		resetSubtree(*n.Child, nodeID+1, states)
	case KindAction, KindCondition, KindWait:
		// leaves carry no subtree
	default:
		childID := nodeID + 1
		for _, child := range n.Children {
			resetSubtree(child, childID, states)
			childID += SubtreeSize(child)
		}
	}
}
