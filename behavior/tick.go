package behavior

// TickNode recursively evaluates node (identified by nodeID, its preorder
// position) and returns its Status. It is the engine's sole entry point;
// BehaviorTree.Tick calls it at the root with nodeID 0. Child ids are
// reconstructed from the parent's id plus a running offset, reproducing the
// same preorder numbering SubtreeSize gives when NewStateTable sizes the
// state table.
func TickNode[A, C any](
	node Node[A, C],
	nodeID int,
	states []NodeState,
	ctx *Context,
	ah ActionHandler[A],
	ch ConditionHandler[C],
	obs Observer,
) Status {
	obs.OnEnter(nodeID)

	var status Status
	switch node.Kind {
	case KindSequence:
		status = tickSequence(node, nodeID, states, ctx, ah, ch, obs)
	case KindSelector:
		status = tickSelector(node, nodeID, states, ctx, ah, ch, obs)
	case KindParallel:
		status = tickParallel(node, nodeID, states, ctx, ah, ch, obs)
	case KindDecorator:
		status = tickDecorator(node, nodeID, states, ctx, ah, ch, obs)
	case KindAction:
		status = ah.Execute(node.Action, ctx)
	case KindCondition:
		if ch.Check(node.Condition, ctx) {
			status = Success
		} else {
			status = Failure
		}
	case KindWait:
		status = tickWait(node, nodeID, states, ctx)
	case KindUtilitySelector:
		status = tickUtilitySelector(node, nodeID, states, ctx, ah, ch, obs)
	case KindRandomSelector:
		status = tickRandomSelector(node, nodeID, states, ctx, ah, ch, obs)
	case KindWeightedSelector:
		status = tickWeightedSelector(node, nodeID, states, ctx, ah, ch, obs)
	default:
		status = Failure
	}

	obs.OnExit(nodeID, status)
	return status
}

func tickSequence[A, C any](node Node[A, C], nodeID int, states []NodeState, ctx *Context, ah ActionHandler[A], ch ConditionHandler[C], obs Observer) Status {
	children := node.Children
	start := states[nodeID].RunningChild
	if start > len(children) {
		start = len(children)
	}
	childID := childIDForIndex(children, nodeID, start)
	result := Success

	for i := start; i < len(children); i++ {
		child := children[i]
		childStatus := TickNode(child, childID, states, ctx, ah, ch, obs)

		switch childStatus {
		case Running:
			states[nodeID].RunningChild = i
			result = Running
		case Failure:
			states[nodeID].Reset()
			result = Failure
		case Success:
			childID += SubtreeSize(child)
			continue
		}
		break
	}

	if result == Success {
		states[nodeID].Reset()
	}
	return result
}

func tickSelector[A, C any](node Node[A, C], nodeID int, states []NodeState, ctx *Context, ah ActionHandler[A], ch ConditionHandler[C], obs Observer) Status {
	children := node.Children
	start := states[nodeID].RunningChild
	if start > len(children) {
		start = len(children)
	}
	childID := childIDForIndex(children, nodeID, start)
	result := Failure

	for i := start; i < len(children); i++ {
		child := children[i]
		childStatus := TickNode(child, childID, states, ctx, ah, ch, obs)

		switch childStatus {
		case Running:
			states[nodeID].RunningChild = i
			result = Running
		case Success:
			states[nodeID].Reset()
			result = Success
		case Failure:
			childID += SubtreeSize(child)
			continue
		}
		break
	}

	if result == Failure {
		states[nodeID].Reset()
	}
	return result
}

func tickParallel[A, C any](node Node[A, C], nodeID int, states []NodeState, ctx *Context, ah ActionHandler[A], ch ConditionHandler[C], obs Observer) Status {
	children := node.Children
	successCount, failureCount := 0, 0
	childID := nodeID + 1

	for _, child := range children {
		switch TickNode(child, childID, states, ctx, ah, ch, obs) {
		case Success:
			successCount++
		case Failure:
			failureCount++
		}
		childID += SubtreeSize(child)
	}

	var result Status
	switch node.Policy.Kind {
	case RequireAll:
		switch {
		case failureCount > 0:
			result = Failure
		case successCount == len(children):
			result = Success
		default:
			result = Running
		}
	case RequireOne:
		switch {
		case successCount > 0:
			result = Success
		case failureCount == len(children):
			result = Failure
		default:
			result = Running
		}
	case RequireN:
		n := node.Policy.N
		switch {
		case successCount >= n:
			result = Success
		case len(children)-failureCount < n:
			result = Failure
		default:
			result = Running
		}
	}

	if result != Running {
		states[nodeID].Reset()
	}
	return result
}

func tickDecorator[A, C any](node Node[A, C], nodeID int, states []NodeState, ctx *Context, ah ActionHandler[A], ch ConditionHandler[C], obs Observer) Status {
	child := *node.Child
	childID := nodeID + 1

	switch node.Decorator.Kind {
	case Inverter:
		return TickNode(child, childID, states, ctx, ah, ch, obs).Invert()

	case Repeat:
		n := node.Decorator.N
		if n == 0 {
			states[nodeID].Reset()
			resetSubtree(child, childID, states)
			return Success
		}
		childStatus := TickNode(child, childID, states, ctx, ah, ch, obs)
		switch childStatus {
		case Failure:
			states[nodeID].Reset()
			resetSubtree(child, childID, states)
			return Failure
		case Success:
			states[nodeID].IterationCount++
			done := states[nodeID].IterationCount >= n
			if done {
				states[nodeID].Reset()
			}
			resetSubtree(child, childID, states)
			if done {
				return Success
			}
			return Running
		default:
			return Running
		}

	case Retry:
		n := node.Decorator.N
		if n == 0 {
			states[nodeID].Reset()
			resetSubtree(child, childID, states)
			return Failure
		}
		childStatus := TickNode(child, childID, states, ctx, ah, ch, obs)
		switch childStatus {
		case Success:
			states[nodeID].Reset()
			resetSubtree(child, childID, states)
			return Success
		case Failure:
			states[nodeID].IterationCount++
			done := states[nodeID].IterationCount >= n
			if done {
				states[nodeID].Reset()
			}
			resetSubtree(child, childID, states)
			if done {
				return Failure
			}
			return Running
		default:
			return Running
		}

	case Cooldown:
		remaining := states[nodeID].TickCounter
		if remaining > 0 {
			consumed := ctx.DeltaTicks()
			if consumed > remaining {
				consumed = remaining
			}
			states[nodeID].TickCounter = remaining - consumed
			return Failure
		}
		childStatus := TickNode(child, childID, states, ctx, ah, ch, obs)
		if childStatus.IsDone() {
			states[nodeID].TickCounter = node.Decorator.N
		}
		return childStatus

	case Guard:
		if !ctx.Blackboard().IsTruthy(node.Decorator.Key) {
			resetSubtree(child, childID, states)
			return Failure
		}
		return TickNode(child, childID, states, ctx, ah, ch, obs)

	case UntilSuccess:
		childStatus := TickNode(child, childID, states, ctx, ah, ch, obs)
		switch childStatus {
		case Success:
			states[nodeID].Reset()
			resetSubtree(child, childID, states)
			return Success
		default:
			resetSubtree(child, childID, states)
			return Running
		}

	case UntilFail:
		childStatus := TickNode(child, childID, states, ctx, ah, ch, obs)
		switch childStatus {
		case Failure:
			states[nodeID].Reset()
			resetSubtree(child, childID, states)
			return Failure
		default:
			resetSubtree(child, childID, states)
			return Running
		}

	case Timeout:
		elapsed := states[nodeID].TickCounter + ctx.DeltaTicks()
		states[nodeID].TickCounter = elapsed
		if elapsed >= node.Decorator.N {
			states[nodeID].Reset()
			resetSubtree(child, childID, states)
			return Failure
		}
		childStatus := TickNode(child, childID, states, ctx, ah, ch, obs)
		if childStatus.IsDone() {
			states[nodeID].Reset()
		}
		return childStatus

	case ForceSuccess:
		if TickNode(child, childID, states, ctx, ah, ch, obs) == Running {
			return Running
		}
		return Success

	case ForceFailure:
		if TickNode(child, childID, states, ctx, ah, ch, obs) == Running {
			return Running
		}
		return Failure

	default:
		return Failure
	}
}

func tickWait[A, C any](node Node[A, C], nodeID int, states []NodeState, ctx *Context) Status {
	if node.WaitTicks == 0 {
		return Success
	}
	states[nodeID].TickCounter += ctx.DeltaTicks()
	if states[nodeID].TickCounter >= node.WaitTicks {
		states[nodeID].Reset()
		return Success
	}
	return Running
}

// tickUtilitySelector scores each child by reading the Fixed/Int/Vec2/etc.
// value stored at its corresponding UtilityIDs blackboard key and converting
// it via BlackboardValue's score domain, then ticks the highest-scoring
// child. A child's selection is pinned across ticks while it returns
// Running, so a long-running action isn't abandoned mid-flight merely
// because some other consideration's score ticked upward in the meantime.
// Missing blackboard entries score zero.
func tickUtilitySelector[A, C any](node Node[A, C], nodeID int, states []NodeState, ctx *Context, ah ActionHandler[A], ch ConditionHandler[C], obs Observer) Status {
	children := node.Children
	if len(children) == 0 {
		return Failure
	}

	selected := states[nodeID].SelectedChild
	if selected < 0 || selected >= len(children) {
		best := 0
		bestScore := utilityScoreFor(ctx, node.UtilityIDs, 0, obs)
		for i := 1; i < len(children); i++ {
			score := utilityScoreFor(ctx, node.UtilityIDs, i, obs)
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		selected = best
	}

	childID := childIDForIndex(children, nodeID, selected)
	status := TickNode(children[selected], childID, states, ctx, ah, ch, obs)
	if status == Running {
		states[nodeID].SelectedChild = selected
	} else {
		states[nodeID].Reset()
	}
	return status
}

func utilityScoreFor(ctx *Context, utilityIDs []uint32, index int, obs Observer) float32 {
	if index >= len(utilityIDs) {
		return 0
	}
	value, ok := ctx.Blackboard().Get(utilityIDs[index])
	score := float32(0)
	if ok {
		score = value.scoreF32()
	}
	obs.OnUtilityScore(index, score)
	return score
}

// tickRandomSelector picks one child uniformly at random on first tick,
// pinning the choice via RandomSelection until it returns a terminal status.
func tickRandomSelector[A, C any](node Node[A, C], nodeID int, states []NodeState, ctx *Context, ah ActionHandler[A], ch ConditionHandler[C], obs Observer) Status {
	children := node.Children
	if len(children) == 0 {
		return Failure
	}

	selected := states[nodeID].RandomSelection
	if selected < 0 || selected >= len(children) {
		selected = int(ctx.RNG().NextUint32() % uint32(len(children)))
	}

	childID := childIDForIndex(children, nodeID, selected)
	status := TickNode(children[selected], childID, states, ctx, ah, ch, obs)
	if status == Running {
		states[nodeID].RandomSelection = selected
	} else {
		states[nodeID].Reset()
	}
	return status
}

// tickWeightedSelector draws one child with probability proportional to
// node.Weights on first tick, pinning the draw via RandomSelection until it
// returns a terminal status. A zero-weight child is never drawn, except
// that child 0 runs when every weight is zero.
func tickWeightedSelector[A, C any](node Node[A, C], nodeID int, states []NodeState, ctx *Context, ah ActionHandler[A], ch ConditionHandler[C], obs Observer) Status {
	children := node.Children
	if len(children) == 0 {
		return Failure
	}

	selected := states[nodeID].RandomSelection
	if selected < 0 || selected >= len(children) {
		var total uint32
		for _, w := range node.Weights {
			total += w
		}
		if total == 0 {
			selected = 0
		} else {
			draw := ctx.RNG().NextUint32() % total
			var cumulative uint32
			for i, w := range node.Weights {
				cumulative += w
				if draw < cumulative {
					selected = i
					break
				}
			}
		}
	}

	childID := childIDForIndex(children, nodeID, selected)
	status := TickNode(children[selected], childID, states, ctx, ah, ch, obs)
	if status == Running {
		states[nodeID].RandomSelection = selected
	} else {
		states[nodeID].Reset()
	}
	return status
}
