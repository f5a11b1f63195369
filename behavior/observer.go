package behavior

import (
	"log/slog"
)

// Observer is an optional set of trace callbacks for debugging and
// visualization front-ends. All methods have no-op defaults via
// NoOpObserver; observers must not re-enter the tree they are observing.
type Observer interface {
	OnEnter(nodeID int)
	OnExit(nodeID int, status Status)
	OnBlackboardWrite(key uint32, value BlackboardValue)
	OnUtilityScore(actionIndex int, score float32)
}

// NoOpObserver implements Observer with every method a no-op.
type NoOpObserver struct{}

func (NoOpObserver) OnEnter(int)                          {}
func (NoOpObserver) OnExit(int, Status)                   {}
func (NoOpObserver) OnBlackboardWrite(uint32, BlackboardValue) {}
func (NoOpObserver) OnUtilityScore(int, float32)          {}

// ObserverEventKind tags the variant of an ObserverEvent.
type ObserverEventKind int

const (
	EventEnter ObserverEventKind = iota
	EventExit
	EventBlackboardWrite
	EventUtilityScore
)

// ObserverEvent is one recorded trace point, as captured by RecordingObserver.
type ObserverEvent struct {
	Kind        ObserverEventKind
	NodeID      int
	Status      Status
	Key         uint32
	Value       BlackboardValue
	ActionIndex int
	Score       float32
}

// RecordingObserver collects every trace event in order, for assertions in tests.
type RecordingObserver struct {
	Events []ObserverEvent
}

func (r *RecordingObserver) OnEnter(nodeID int) {
	r.Events = append(r.Events, ObserverEvent{Kind: EventEnter, NodeID: nodeID})
}

func (r *RecordingObserver) OnExit(nodeID int, status Status) {
	r.Events = append(r.Events, ObserverEvent{Kind: EventExit, NodeID: nodeID, Status: status})
}

func (r *RecordingObserver) OnBlackboardWrite(key uint32, value BlackboardValue) {
	r.Events = append(r.Events, ObserverEvent{Kind: EventBlackboardWrite, Key: key, Value: value})
}

func (r *RecordingObserver) OnUtilityScore(actionIndex int, score float32) {
	r.Events = append(r.Events, ObserverEvent{Kind: EventUtilityScore, ActionIndex: actionIndex, Score: score})
}

// LoggingObserver adapts the trace-point contract onto log/slog, the same
// logging library used project-wide. EnableBlackboardWrites gates the
// (potentially noisy) on-blackboard-write trace, mirroring the
// EnableBlackboardDebug package-level toggle convention.
type LoggingObserver struct {
	Logger                 *slog.Logger
	EnableBlackboardWrites bool
}

// NewLoggingObserver returns a LoggingObserver writing to logger, or
// slog.Default() if logger is nil.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (l *LoggingObserver) OnEnter(nodeID int) {
	l.Logger.Debug("behavior: enter", slog.Int("node_id", nodeID))
}

func (l *LoggingObserver) OnExit(nodeID int, status Status) {
	l.Logger.Debug("behavior: exit", slog.Int("node_id", nodeID), slog.String("status", status.String()))
}

func (l *LoggingObserver) OnBlackboardWrite(key uint32, value BlackboardValue) {
	if !l.EnableBlackboardWrites {
		return
	}
	l.Logger.Debug("behavior: blackboard write", slog.Any("key", key), slog.Any("value", value))
}

func (l *LoggingObserver) OnUtilityScore(actionIndex int, score float32) {
	l.Logger.Debug("behavior: utility score", slog.Int("action_index", actionIndex), slog.Float64("score", float64(score)))
}
