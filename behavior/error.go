package behavior

import (
	"errors"
	"fmt"
)

// Sentinel errors for the TreeError family; use errors.Is against these,
// not direct comparison, since the concrete errors carry extra context.
var (
	ErrEmptyComposite         = errors.New("behavior: composite node has no children")
	ErrMaxDepthExceeded       = errors.New("behavior: max tree depth exceeded")
	ErrWeightCountMismatch    = errors.New("behavior: weighted selector children/weights count mismatch")
	ErrUtilityIDCountMismatch = errors.New("behavior: utility selector children/utility id count mismatch")
	ErrUnbalancedBuilder      = errors.New("behavior: builder has unclosed composites or dangling decorators")
)

// TreeError is a construction-time failure. Tick outcomes are never errors;
// only Build (and the stack machine calls it wraps) can return one.
type TreeError struct {
	sentinel error
	detail   string
}

func (e *TreeError) Error() string {
	if e.detail == "" {
		return e.sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", e.sentinel.Error(), e.detail)
}

// Unwrap exposes the sentinel so callers can errors.Is(err, behavior.ErrEmptyComposite), etc.
func (e *TreeError) Unwrap() error { return e.sentinel }

func newTreeError(sentinel error, detail string) *TreeError {
	return &TreeError{sentinel: sentinel, detail: detail}
}

func errEmptyComposite() error {
	return newTreeError(ErrEmptyComposite, "")
}

func errMaxDepthExceeded(depth int) error {
	return newTreeError(ErrMaxDepthExceeded, fmt.Sprintf("depth %d", depth))
}

func errWeightCountMismatch(children, weights int) error {
	return newTreeError(ErrWeightCountMismatch, fmt.Sprintf("%d children, %d weights", children, weights))
}

func errUtilityIDCountMismatch(children, ids int) error {
	return newTreeError(ErrUtilityIDCountMismatch, fmt.Sprintf("%d children, %d ids", children, ids))
}

func errUnbalancedBuilder(remainingFrames int) error {
	return newTreeError(ErrUnbalancedBuilder, fmt.Sprintf("%d open frames", remainingFrames))
}
