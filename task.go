package seedling

// Task is a cooperative unit of work. A task is resumed once per tick with the
// elapsed time since the previous tick and reports whether it has finished.
// The first Resume after a task is started receives dt == 0 and runs the task
// up to its first suspension point, so side effects at the start of a task
// happen on the tick that started it.
//
// Tasks are not safe for concurrent use. Everything runs on the game loop.
type Task interface {
	Resume(dt float64) (done bool)
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func(dt float64) bool

// Resume calls f(dt).
func (f TaskFunc) Resume(dt float64) bool { return f(dt) }

// --- Handle ---

// Handle is a cancellable wrapper around a Task. A handle is either owned by a
// Scheduler (see Scheduler.Go) or resumed inline by a parent task; it must not
// be resumed by both.
type Handle struct {
	task      Task
	done      bool
	cancelled bool
}

// NewHandle wraps t in a Handle without scheduling it.
func NewHandle(t Task) *Handle {
	return &Handle{task: t}
}

// Resume advances the wrapped task. A cancelled handle reports done without
// resuming the task again.
func (h *Handle) Resume(dt float64) bool {
	if h.done {
		return true
	}
	if h.task == nil || h.task.Resume(dt) {
		h.done = true
		h.task = nil
	}
	return h.done
}

// Cancel stops the task. It will not be resumed again and gets no chance to
// clean up. Safe to call on a nil or finished handle.
func (h *Handle) Cancel() {
	if h == nil || h.done {
		return
	}
	h.done = true
	h.cancelled = true
	h.task = nil
}

// Done reports whether the task finished or was cancelled. A nil handle is done.
func (h *Handle) Done() bool {
	return h == nil || h.done
}

// Cancelled reports whether the handle was stopped by Cancel.
func (h *Handle) Cancelled() bool {
	return h != nil && h.cancelled
}

// --- Scheduler ---

// Scheduler owns the set of running top-level tasks and resumes each of them
// once per Tick. Tasks started during a Tick are run up to their first
// suspension immediately and are first resumed with a real delta on the next
// Tick.
type Scheduler struct {
	tasks []*Handle
	now   float64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Go starts t: it is resumed once with dt == 0 right away and then once per
// Tick until it finishes or its handle is cancelled.
func (s *Scheduler) Go(t Task) *Handle {
	h := NewHandle(t)
	if !h.Resume(0) {
		s.tasks = append(s.tasks, h)
	}
	return h
}

// Tick advances every running task by dt seconds.
func (s *Scheduler) Tick(dt float64) {
	s.now += dt
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		s.tasks[i].Resume(dt)
	}

	live := s.tasks[:0]
	for _, h := range s.tasks {
		if !h.Done() {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Len returns the number of running tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Now returns the total time advanced through Tick.
func (s *Scheduler) Now() float64 {
	return s.now
}

// CancelAll cancels every running task.
func (s *Scheduler) CancelAll() {
	for _, h := range s.tasks {
		h.Cancel()
	}
	s.tasks = s.tasks[:0]
}

// --- Combinators ---

type waitTask struct {
	duration float64
	elapsed  float64
}

func (w *waitTask) Resume(dt float64) bool {
	w.elapsed += dt
	return w.elapsed >= w.duration
}

// Wait returns a task that finishes once d seconds of tick time have passed.
// A non-positive duration finishes on start.
func Wait(d float64) Task {
	return &waitTask{duration: d}
}

// Do returns a task that calls fn once when started and finishes immediately.
func Do(fn func()) Task {
	return TaskFunc(func(float64) bool {
		if fn != nil {
			fn()
		}
		return true
	})
}

type sequenceTask struct {
	steps []Task
	i     int
}

func (s *sequenceTask) Resume(dt float64) bool {
	for s.i < len(s.steps) {
		if st := s.steps[s.i]; st != nil && !st.Resume(dt) {
			return false
		}
		s.steps[s.i] = nil
		s.i++
		// The next step starts on the same tick.
		dt = 0
	}
	return true
}

// Sequence runs steps one after another. When a step finishes, the next one is
// started on the same tick. Nil steps are skipped.
func Sequence(steps ...Task) Task {
	return &sequenceTask{steps: steps}
}

type parallelTask struct {
	tasks []Task
	done  []bool
}

func (p *parallelTask) Resume(dt float64) bool {
	all := true
	for i, t := range p.tasks {
		if p.done[i] {
			continue
		}
		if t == nil || t.Resume(dt) {
			p.done[i] = true
			p.tasks[i] = nil
			continue
		}
		all = false
	}
	return all
}

// Parallel starts all tasks together and finishes once every one of them has
// finished. Completion order is irrelevant.
func Parallel(tasks ...Task) Task {
	return &parallelTask{tasks: tasks, done: make([]bool, len(tasks))}
}

type deferTask struct {
	build   func() Task
	t       Task
	started bool
}

func (d *deferTask) Resume(dt float64) bool {
	if !d.started {
		d.started = true
		d.t = d.build()
		d.build = nil
	}
	if d.t == nil {
		return true
	}
	return d.t.Resume(dt)
}

// Defer builds its task when it is started rather than when it is created.
// Use it for steps whose shape depends on state at the moment they run. A nil
// result finishes immediately.
func Defer(build func() Task) Task {
	return &deferTask{build: build}
}

// Await returns a task that finishes once h is done. The handle itself must be
// resumed by someone else, normally a Scheduler.
func Await(h *Handle) Task {
	return TaskFunc(func(float64) bool { return h.Done() })
}

// Until returns a task that finishes on the first resume where cond is true.
func Until(cond func() bool) Task {
	return TaskFunc(func(float64) bool { return cond() })
}
