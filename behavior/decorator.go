package behavior

// DecoratorKind tags the transformation a Decorator node applies to its
// single child's result.
type DecoratorKind int

const (
	Inverter DecoratorKind = iota
	Repeat
	Retry
	Cooldown
	Guard
	UntilSuccess
	UntilFail
	Timeout
	ForceSuccess
	ForceFailure
)

// Decorator is a single-child transformer. N is the iteration/cooldown/
// timeout count for Repeat/Retry/Cooldown/Timeout, and Key is the
// blackboard key for Guard; both are ignored by the other kinds.
type Decorator struct {
	Kind DecoratorKind
	N    uint32
	Key  uint32
}

// NewInverter returns an Inverter decorator.
func NewInverter() Decorator { return Decorator{Kind: Inverter} }

// NewRepeat returns a Repeat(n) decorator.
func NewRepeat(n uint32) Decorator { return Decorator{Kind: Repeat, N: n} }

// NewRetry returns a Retry(n) decorator.
func NewRetry(n uint32) Decorator { return Decorator{Kind: Retry, N: n} }

// NewCooldown returns a Cooldown(n) decorator.
func NewCooldown(n uint32) Decorator { return Decorator{Kind: Cooldown, N: n} }

// NewGuard returns a Guard(key) decorator.
func NewGuard(key uint32) Decorator { return Decorator{Kind: Guard, Key: key} }

// NewUntilSuccess returns an UntilSuccess decorator.
func NewUntilSuccess() Decorator { return Decorator{Kind: UntilSuccess} }

// NewUntilFail returns an UntilFail decorator.
func NewUntilFail() Decorator { return Decorator{Kind: UntilFail} }

// NewTimeout returns a Timeout(n) decorator.
func NewTimeout(n uint32) Decorator { return Decorator{Kind: Timeout, N: n} }

// NewForceSuccess returns a ForceSuccess decorator.
func NewForceSuccess() Decorator { return Decorator{Kind: ForceSuccess} }

// NewForceFailure returns a ForceFailure decorator.
func NewForceFailure() Decorator { return Decorator{Kind: ForceFailure} }
