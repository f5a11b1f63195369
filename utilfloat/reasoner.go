package utilfloat

import (
	"math"
	"sort"

	"github.com/joeycumines/behaviortree-utility/behavior"
)

// SelectionMethodKind tags how a Reasoner turns a scored action list into a
// single choice.
type SelectionMethodKind int

const (
	HighestScore SelectionMethodKind = iota
	WeightedRandom
	TopN
)

// SelectionMethod configures Reasoner.Select. N is only meaningful for TopN,
// where it bounds how many of the highest-scoring actions are eligible for
// the weighted draw.
type SelectionMethod struct {
	Kind SelectionMethodKind
	N    int
}

// NewHighestScore always picks the single best-scoring action.
func NewHighestScore() SelectionMethod { return SelectionMethod{Kind: HighestScore} }

// NewWeightedRandom draws among all actions with probability proportional
// to score.
func NewWeightedRandom() SelectionMethod { return SelectionMethod{Kind: WeightedRandom} }

// NewTopN draws, weighted by score, among only the n highest-scoring actions.
func NewTopN(n int) SelectionMethod { return SelectionMethod{Kind: TopN, N: n} }

// ScoredAction is one entry of a Reasoner's scored action list.
type ScoredAction[F Float] struct {
	Index int
	Score F
}

// Reasoner scores a fixed list of UtilityActions against a blackboard each
// tick and selects one according to SelectionMethod.
type Reasoner[F Float, A any] struct {
	Actions         []UtilityAction[F, A]
	SelectionMethod SelectionMethod
}

// NewReasoner returns a Reasoner over actions using method.
func NewReasoner[F Float, A any](method SelectionMethod, actions ...UtilityAction[F, A]) Reasoner[F, A] {
	return Reasoner[F, A]{Actions: actions, SelectionMethod: method}
}

// ScoreAll scores every action against bb (marking currentAction, if
// non-nil and in range, as the current selection for momentum purposes) and
// returns the results sorted by descending score.
func (r Reasoner[F, A]) ScoreAll(bb *behavior.Blackboard, currentAction *int) []ScoredAction[F] {
	scores := make([]ScoredAction[F], len(r.Actions))
	for i, action := range r.Actions {
		isCurrent := currentAction != nil && *currentAction == i
		scores[i] = ScoredAction[F]{Index: i, Score: action.Score(bb, isCurrent)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores
}

// Select scores every action and returns the index (into r.Actions) of the
// one chosen by SelectionMethod, or -1 if Actions is empty.
func (r Reasoner[F, A]) Select(bb *behavior.Blackboard, currentAction *int, rng behavior.RNG) int {
	scores := r.ScoreAll(bb, currentAction)
	if len(scores) == 0 {
		return -1
	}

	switch r.SelectionMethod.Kind {
	case HighestScore:
		return scores[0].Index
	case WeightedRandom:
		return weightedDraw(scores, rng)
	case TopN:
		n := r.SelectionMethod.N
		if n <= 0 || n > len(scores) {
			n = len(scores)
		}
		return weightedDraw(scores[:n], rng)
	default:
		return scores[0].Index
	}
}

func weightedDraw[F Float](scores []ScoredAction[F], rng behavior.RNG) int {
	var total float64
	for _, s := range scores {
		total += float64(s.Score)
	}
	if total <= 0 {
		return scores[0].Index
	}

	draw := float64(rng.NextUint32()) / float64(math.MaxUint32) * total
	var cumulative float64
	for _, s := range scores {
		cumulative += float64(s.Score)
		if draw < cumulative {
			return s.Index
		}
	}
	return scores[len(scores)-1].Index
}
