package behavior

// ParallelKind tags which aggregation rule a Parallel node applies across
// its unconditionally-ticked children.
type ParallelKind int

const (
	RequireAll ParallelKind = iota
	RequireOne
	RequireN
)

// ParallelPolicy configures a Parallel node's aggregation. N is only
// meaningful for RequireN.
type ParallelPolicy struct {
	Kind ParallelKind
	N    int
}

// NewRequireAll returns the RequireAll policy.
func NewRequireAll() ParallelPolicy { return ParallelPolicy{Kind: RequireAll} }

// NewRequireOne returns the RequireOne policy.
func NewRequireOne() ParallelPolicy { return ParallelPolicy{Kind: RequireOne} }

// NewRequireN returns the RequireN(n) policy.
func NewRequireN(n int) ParallelPolicy { return ParallelPolicy{Kind: RequireN, N: n} }
