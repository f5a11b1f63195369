package behavior

// RNG is the minimal source of randomness the engine needs for
// RandomSelector/WeightedSelector nodes and WeightedRandom/TopN utility
// selection. math/rand.Rand does not satisfy it directly (its method is
// Uint32, not NextUint32), so embedders wrap whichever generator they use.
// A deterministic, seeded implementation yields fully reproducible tick
// traces.
type RNG interface {
	NextUint32() uint32
}

// Context is the per-tick environment handed to every action and condition
// handler during one tick call. It borrows the blackboard (and,
// optionally, an RNG) for the duration of a single tick and must not be
// retained by handlers beyond that call.
type Context struct {
	tick       uint64
	deltaTicks uint32
	blackboard *Blackboard
	rng        RNG
}

// NewContext builds a Context for one tick call.
func NewContext(tick uint64, deltaTicks uint32, blackboard *Blackboard, rng RNG) *Context {
	return &Context{tick: tick, deltaTicks: deltaTicks, blackboard: blackboard, rng: rng}
}

// Tick returns the absolute tick index this context was created for.
func (c *Context) Tick() uint64 { return c.tick }

// DeltaTicks returns the number of ticks elapsed since the previous tick.
func (c *Context) DeltaTicks() uint32 { return c.deltaTicks }

// Blackboard returns the shared blackboard for read access.
func (c *Context) Blackboard() *Blackboard { return c.blackboard }

// BlackboardMut returns the shared blackboard for mutation.
func (c *Context) BlackboardMut() *Blackboard { return c.blackboard }

// HasRNG reports whether an RNG was supplied for this tick.
func (c *Context) HasRNG() bool { return c.rng != nil }

// RNG returns the tick's random source. Calling it when HasRNG is false is a
// programmer error: Random/WeightedSelector nodes require one, and the
// engine panics rather than silently degrading to a fixed choice.
func (c *Context) RNG() RNG {
	if c.rng == nil {
		panic("behavior: RNG required for selector method but none supplied to Context")
	}
	return c.rng
}
