package behavior

// ActionHandler executes the embedder's Action leaves. It may mutate the
// blackboard or its own state, and may return Running across many ticks.
type ActionHandler[A any] interface {
	Execute(action A, ctx *Context) Status
}

// ConditionHandler checks the embedder's Condition leaves. It must be
// side-effect free; the engine maps true to Success and false to Failure.
// Conditions never return Running.
type ConditionHandler[C any] interface {
	Check(condition C, ctx *Context) bool
}

// ActionHandlerFunc adapts a plain function to an ActionHandler.
type ActionHandlerFunc[A any] func(action A, ctx *Context) Status

// Execute implements ActionHandler.
func (f ActionHandlerFunc[A]) Execute(action A, ctx *Context) Status { return f(action, ctx) }

// ConditionHandlerFunc adapts a plain function to a ConditionHandler.
type ConditionHandlerFunc[C any] func(condition C, ctx *Context) bool

// Check implements ConditionHandler.
func (f ConditionHandlerFunc[C]) Check(condition C, ctx *Context) bool { return f(condition, ctx) }
