package behavior

// Kind tags which variant a Node holds.
type Kind int

const (
	KindSequence Kind = iota
	KindSelector
	KindParallel
	KindDecorator
	KindAction
	KindCondition
	KindWait
	KindUtilitySelector
	KindRandomSelector
	KindWeightedSelector
)

// Node is a behavior tree node: pure data, polymorphic over an embedder-
// chosen action tag type A and condition tag type C. A Node never holds a
// closure or a reference to mutable state; it is clonable, comparable by
// value, and printable in any embedding. Behavior lives in the
// ActionHandler/ConditionHandler supplied per tick, not in the node.
//
// Only the fields relevant to Kind are populated; the zero value of the
// others is ignored by the tick engine.
type Node[A, C any] struct {
	Kind Kind

	// Sequence, Selector, Parallel, RandomSelector, WeightedSelector, UtilitySelector
	Children []Node[A, C]

	// Parallel
	Policy ParallelPolicy

	// Decorator
	Decorator Decorator
	Child     *Node[A, C]

	// Action
	Action A

	// Condition
	Condition C

	// Wait
	WaitTicks uint32

	// UtilitySelector: parallel list of blackboard keys, one per child, whose
	// values score the children.
	UtilityIDs []uint32

	// WeightedSelector: parallel list of weights, one per child.
	Weights []uint32
}

// SequenceNode builds a Sequence node over children.
func SequenceNode[A, C any](children ...Node[A, C]) Node[A, C] {
	return Node[A, C]{Kind: KindSequence, Children: children}
}

// SelectorNode builds a Selector node over children.
func SelectorNode[A, C any](children ...Node[A, C]) Node[A, C] {
	return Node[A, C]{Kind: KindSelector, Children: children}
}

// ParallelNode builds a Parallel node with the given policy over children.
func ParallelNode[A, C any](policy ParallelPolicy, children ...Node[A, C]) Node[A, C] {
	return Node[A, C]{Kind: KindParallel, Policy: policy, Children: children}
}

// DecoratorNode wraps child with decorator.
func DecoratorNode[A, C any](decorator Decorator, child Node[A, C]) Node[A, C] {
	return Node[A, C]{Kind: KindDecorator, Decorator: decorator, Child: &child}
}

// ActionNode builds a leaf delegating to the action handler.
func ActionNode[A, C any](action A) Node[A, C] {
	return Node[A, C]{Kind: KindAction, Action: action}
}

// ConditionNode builds a leaf delegating to the condition handler.
func ConditionNode[A, C any](condition C) Node[A, C] {
	return Node[A, C]{Kind: KindCondition, Condition: condition}
}

// WaitNode builds a leaf that returns Running for ticks-1 ticks, then Success.
func WaitNode[A, C any](ticks uint32) Node[A, C] {
	return Node[A, C]{Kind: KindWait, WaitTicks: ticks}
}

// UtilitySelectorNode builds a node that scores children[i] by the
// blackboard value stored at utilityIDs[i] and ticks the highest-scoring
// child, pinning it while it returns Running. No utilfloat.Reasoner is
// consulted.
func UtilitySelectorNode[A, C any](utilityIDs []uint32, children ...Node[A, C]) Node[A, C] {
	return Node[A, C]{Kind: KindUtilitySelector, Children: children, UtilityIDs: utilityIDs}
}

// RandomSelectorNode builds a node that picks one child uniformly at random
// and pins it until it reaches a terminal status.
func RandomSelectorNode[A, C any](children ...Node[A, C]) Node[A, C] {
	return Node[A, C]{Kind: KindRandomSelector, Children: children}
}

// WeightedSelectorNode builds a node that picks one child with probability
// proportional to weights[i] and pins it until it reaches a terminal status.
func WeightedSelectorNode[A, C any](weights []uint32, children ...Node[A, C]) Node[A, C] {
	return Node[A, C]{Kind: KindWeightedSelector, Children: children, Weights: weights}
}

// SubtreeSize returns the number of nodes in n's pre-order traversal,
// including n itself.
func SubtreeSize[A, C any](n Node[A, C]) int {
	switch n.Kind {
	case KindDecorator:
		return 1 + SubtreeSize(*n.Child)
	case KindAction, KindCondition, KindWait:
		return 1
	default:
		size := 1
		for _, child := range n.Children {
			size += SubtreeSize(child)
		}
		return size
	}
}
