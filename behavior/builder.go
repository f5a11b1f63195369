package behavior

// frameKind tags which node kind a builder frame will produce on End.
type frameKind int

const (
	frameSequence frameKind = iota
	frameSelector
	frameParallel
	frameRandomSelector
	frameWeightedSelector
	frameUtilitySelector
	frameDecorator
)

type frame[A, C any] struct {
	kind       frameKind
	children   []Node[A, C]
	policy     ParallelPolicy
	decorator  Decorator
	weights    []uint32
	utilityIDs []uint32
}

// TreeBuilder assembles a Node tree with a stack machine: opening a
// composite or decorator pushes a frame, leaves append directly to the top
// frame, and End pops the top frame, builds its node, and appends it to
// whatever is now on top (or sets it as the tree root). The first error
// encountered is latched; every later call becomes a no-op so a caller can
// chain the whole construction and check the error once at Build.
type TreeBuilder[A, C any] struct {
	config TreeConfig
	stack  []frame[A, C]
	root   *Node[A, C]
	err    error
}

// NewTreeBuilder returns an empty builder governed by config.
func NewTreeBuilder[A, C any](config TreeConfig) *TreeBuilder[A, C] {
	return &TreeBuilder[A, C]{config: config}
}

func (b *TreeBuilder[A, C]) fail(err error) *TreeBuilder[A, C] {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *TreeBuilder[A, C]) push(f frame[A, C]) *TreeBuilder[A, C] {
	if b.err != nil {
		return b
	}
	if b.config.MaxDepth > 0 && len(b.stack)+1 > b.config.MaxDepth {
		return b.fail(errMaxDepthExceeded(len(b.stack) + 1))
	}
	b.stack = append(b.stack, f)
	return b
}

// Sequence opens a Sequence composite.
func (b *TreeBuilder[A, C]) Sequence() *TreeBuilder[A, C] {
	return b.push(frame[A, C]{kind: frameSequence})
}

// Selector opens a Selector composite.
func (b *TreeBuilder[A, C]) Selector() *TreeBuilder[A, C] {
	return b.push(frame[A, C]{kind: frameSelector})
}

// Parallel opens a Parallel composite under policy.
func (b *TreeBuilder[A, C]) Parallel(policy ParallelPolicy) *TreeBuilder[A, C] {
	return b.push(frame[A, C]{kind: frameParallel, policy: policy})
}

// RandomSelector opens a RandomSelector composite.
func (b *TreeBuilder[A, C]) RandomSelector() *TreeBuilder[A, C] {
	return b.push(frame[A, C]{kind: frameRandomSelector})
}

// WeightedSelector opens a WeightedSelector composite; each child added
// inside must be followed by a Weight call before the next child (or End).
func (b *TreeBuilder[A, C]) WeightedSelector() *TreeBuilder[A, C] {
	return b.push(frame[A, C]{kind: frameWeightedSelector})
}

// UtilitySelector opens a UtilitySelector composite; each child added inside
// must be followed by a UtilityID call before the next child (or End).
func (b *TreeBuilder[A, C]) UtilitySelector() *TreeBuilder[A, C] {
	return b.push(frame[A, C]{kind: frameUtilitySelector})
}

// Decorator opens a decorator frame wrapping the single node built before
// the matching End.
func (b *TreeBuilder[A, C]) Decorator(d Decorator) *TreeBuilder[A, C] {
	return b.push(frame[A, C]{kind: frameDecorator, decorator: d})
}

func (b *TreeBuilder[A, C]) top() *frame[A, C] {
	if len(b.stack) == 0 {
		return nil
	}
	return &b.stack[len(b.stack)-1]
}

func (b *TreeBuilder[A, C]) appendNode(n Node[A, C]) *TreeBuilder[A, C] {
	if b.err != nil {
		return b
	}
	if f := b.top(); f != nil {
		if f.kind == frameDecorator && len(f.children) >= 1 {
			return b.fail(errEmptyComposite())
		}
		f.children = append(f.children, n)
		return b
	}
	if b.root != nil {
		return b.fail(errUnbalancedBuilder(0))
	}
	b.root = &n
	return b
}

// Action appends an Action leaf to the currently open frame, or sets it as
// the tree root if no frame is open.
func (b *TreeBuilder[A, C]) Action(action A) *TreeBuilder[A, C] {
	return b.appendNode(ActionNode[A, C](action))
}

// Condition appends a Condition leaf.
func (b *TreeBuilder[A, C]) Condition(condition C) *TreeBuilder[A, C] {
	return b.appendNode(ConditionNode[A, C](condition))
}

// Wait appends a Wait leaf.
func (b *TreeBuilder[A, C]) Wait(ticks uint32) *TreeBuilder[A, C] {
	return b.appendNode(WaitNode[A, C](ticks))
}

// Weight records the weight for the child most recently appended inside an
// open WeightedSelector frame.
func (b *TreeBuilder[A, C]) Weight(w uint32) *TreeBuilder[A, C] {
	if b.err != nil {
		return b
	}
	f := b.top()
	if f == nil || f.kind != frameWeightedSelector {
		return b.fail(errWeightCountMismatch(0, 0))
	}
	f.weights = append(f.weights, w)
	return b
}

// UtilityID records the scoring blackboard key for the child most recently
// appended inside an open UtilitySelector frame.
func (b *TreeBuilder[A, C]) UtilityID(id uint32) *TreeBuilder[A, C] {
	if b.err != nil {
		return b
	}
	f := b.top()
	if f == nil || f.kind != frameUtilitySelector {
		return b.fail(errUtilityIDCountMismatch(0, 0))
	}
	f.utilityIDs = append(f.utilityIDs, id)
	return b
}

// End closes the most recently opened frame, builds its node, and appends
// it to the enclosing frame (or sets it as the root).
func (b *TreeBuilder[A, C]) End() *TreeBuilder[A, C] {
	if b.err != nil {
		return b
	}
	if len(b.stack) == 0 {
		return b.fail(errUnbalancedBuilder(0))
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	switch f.kind {
	case frameSequence:
		if len(f.children) == 0 {
			return b.fail(errEmptyComposite())
		}
		return b.appendNode(SequenceNode(f.children...))
	case frameSelector:
		if len(f.children) == 0 {
			return b.fail(errEmptyComposite())
		}
		return b.appendNode(SelectorNode(f.children...))
	case frameParallel:
		if len(f.children) == 0 {
			return b.fail(errEmptyComposite())
		}
		return b.appendNode(ParallelNode(f.policy, f.children...))
	case frameRandomSelector:
		if len(f.children) == 0 {
			return b.fail(errEmptyComposite())
		}
		return b.appendNode(RandomSelectorNode(f.children...))
	case frameWeightedSelector:
		if len(f.children) == 0 {
			return b.fail(errEmptyComposite())
		}
		if len(f.weights) != len(f.children) {
			return b.fail(errWeightCountMismatch(len(f.children), len(f.weights)))
		}
		return b.appendNode(WeightedSelectorNode(f.weights, f.children...))
	case frameUtilitySelector:
		if len(f.children) == 0 {
			return b.fail(errEmptyComposite())
		}
		if len(f.utilityIDs) != len(f.children) {
			return b.fail(errUtilityIDCountMismatch(len(f.children), len(f.utilityIDs)))
		}
		return b.appendNode(UtilitySelectorNode(f.utilityIDs, f.children...))
	case frameDecorator:
		if len(f.children) != 1 {
			return b.fail(errEmptyComposite())
		}
		return b.appendNode(DecoratorNode(f.decorator, f.children[0]))
	default:
		return b.fail(errUnbalancedBuilder(0))
	}
}

// Build finalizes the tree. It fails if any frame is still open, if no node
// was ever appended, or if an earlier call already latched an error.
func (b *TreeBuilder[A, C]) Build() (Node[A, C], error) {
	if b.err != nil {
		var zero Node[A, C]
		return zero, b.err
	}
	if len(b.stack) != 0 {
		var zero Node[A, C]
		return zero, errUnbalancedBuilder(len(b.stack))
	}
	if b.root == nil {
		var zero Node[A, C]
		return zero, errEmptyComposite()
	}
	return *b.root, nil
}
