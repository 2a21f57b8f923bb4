package seedling

// Stage binds one position in the narrative to the task it runs. Build is
// called each time the stage is launched.
type Stage struct {
	Name string
	// Terminal stages never open the advance gate; the sequencer holds
	// forever once one finishes.
	Terminal bool
	Build    func() Task
}

// StageEventType identifies a stage lifecycle event.
type StageEventType uint8

const (
	StageStarted  StageEventType = iota // the stage task was launched
	StageAwaiting                       // the stage reached its await-input point
	StageFinished                       // a terminal stage completed
	StageStalled                        // no task exists for the requested index
)

// StageEvent carries stage lifecycle data for observers.
type StageEvent struct {
	Type  StageEventType
	Stage int
	Name  string
}

// StageObserver receives stage lifecycle events.
// When set on a Sequencer, every transition is forwarded to it.
type StageObserver interface {
	EmitStageEvent(e StageEvent)
}

// Sequencer is the stage state machine. It owns the ordered stage list and the
// advance gate. An advance is consumed only while the gate is open; consuming
// it closes the gate, moves to the next stage and launches that stage's task.
// The gate opens again when the task reaches its end.
type Sequencer struct {
	sched  *Scheduler
	stages []Stage

	// Prepare synthesizes the world state implied by a stage that is entered
	// without the earlier stages having run. Called by JumpTo.
	Prepare func(stage int)

	observer StageObserver
	debug    bool

	current     int
	canProgress bool
	finished    bool
	running     *Handle
}

// NewSequencer creates a sequencer whose stage tasks run on s.
func NewSequencer(s *Scheduler, stages []Stage) *Sequencer {
	return &Sequencer{sched: s, stages: stages}
}

// SetObserver sets the optional stage event observer.
func (q *Sequencer) SetObserver(o StageObserver) {
	q.observer = o
}

// SetDebugMode enables the coloured stage trace on stderr.
func (q *Sequencer) SetDebugMode(enabled bool) {
	q.debug = enabled
}

// Start launches stage 0, or resumes at stage n when n > 0.
func (q *Sequencer) Start(n int) {
	if n > 0 {
		q.JumpTo(n)
		return
	}
	q.current = 0
	q.launch(0)
}

// JumpTo enters stage n directly. Stages before n never ran, so Prepare first
// synthesizes their lasting effects, then stage n's own task is launched.
func (q *Sequencer) JumpTo(n int) {
	if q.debug {
		debugStage("jump to stage %d", n)
	}
	q.running.Cancel()
	q.canProgress = false
	q.finished = false
	q.current = n
	if q.Prepare != nil {
		q.Prepare(n)
	}
	q.launch(n)
}

// Advance consumes an advance request. It reports whether the request was
// accepted; requests while the gate is closed have no effect.
func (q *Sequencer) Advance() bool {
	if !q.canProgress {
		return false
	}
	q.canProgress = false
	q.current++
	if q.debug {
		debugGate("advance -> stage %d", q.current)
	}
	q.launch(q.current)
	return true
}

// Stage returns the current stage index.
func (q *Sequencer) Stage() int {
	return q.current
}

// CanProgress reports whether the advance gate is open.
func (q *Sequencer) CanProgress() bool {
	return q.canProgress
}

// Finished reports whether the terminal stage has completed.
func (q *Sequencer) Finished() bool {
	return q.finished
}

// Len returns the number of stages.
func (q *Sequencer) Len() int {
	return len(q.stages)
}

// StageName returns the name of stage n, or "" when n is out of range.
func (q *Sequencer) StageName(n int) string {
	if n < 0 || n >= len(q.stages) {
		return ""
	}
	return q.stages[n].Name
}

// launch starts the task of stage n. An index without a stage produces no
// task and the sequence stalls with the gate closed.
func (q *Sequencer) launch(n int) {
	if n < 0 || n >= len(q.stages) || q.stages[n].Build == nil {
		logf("stage %d: no task, sequence stalled", n)
		q.emit(StageStalled, n)
		return
	}
	st := q.stages[n]
	if q.debug {
		debugStage("stage %d start: %s", n, st.Name)
	}
	q.emit(StageStarted, n)

	end := Do(func() { q.awaitInput(n) })
	if st.Terminal {
		end = Do(func() { q.finish(n) })
	}
	q.running = q.sched.Go(Sequence(st.Build(), end))
}

func (q *Sequencer) awaitInput(n int) {
	if n != q.current {
		return
	}
	q.canProgress = true
	if q.debug {
		debugGate("stage %d awaiting input", n)
	}
	q.emit(StageAwaiting, n)
}

func (q *Sequencer) finish(n int) {
	q.finished = true
	if q.debug {
		debugStage("stage %d finished, sequence complete", n)
	}
	q.emit(StageFinished, n)
}

func (q *Sequencer) emit(t StageEventType, n int) {
	if q.observer == nil {
		return
	}
	q.observer.EmitStageEvent(StageEvent{Type: t, Stage: n, Name: q.StageName(n)})
}
