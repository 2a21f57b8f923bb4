package seedling

import (
	"strings"
	"testing"
)

type recordingObserver struct {
	events []StageEvent
}

func (r *recordingObserver) EmitStageEvent(e StageEvent) {
	r.events = append(r.events, e)
}

// waitStages returns n stages that each wait d seconds; the last one is
// terminal when terminal is set.
func waitStages(n int, d float64, terminal bool) []Stage {
	stages := make([]Stage, n)
	for i := range stages {
		stages[i] = Stage{
			Name:  string(rune('a' + i)),
			Build: func() Task { return Wait(d) },
		}
	}
	stages[n-1].Terminal = terminal
	return stages
}

func TestSequencerGateIgnoresAdvanceWhileClosed(t *testing.T) {
	s := NewScheduler()
	q := NewSequencer(s, waitStages(3, 1, true))
	q.Start(0)

	if q.CanProgress() {
		t.Fatal("gate open while stage 0 runs")
	}
	s.Tick(0.5)
	if q.Advance() {
		t.Error("advance accepted while gate closed")
	}
	if q.Stage() != 0 {
		t.Errorf("Stage = %d, want 0", q.Stage())
	}

	s.Tick(0.5)
	if !q.CanProgress() {
		t.Fatal("gate should open when stage 0 finishes")
	}
	if !q.Advance() {
		t.Fatal("advance rejected while gate open")
	}
	if q.Stage() != 1 || q.CanProgress() {
		t.Errorf("after advance: stage %d gate %v, want 1 closed", q.Stage(), q.CanProgress())
	}
	// A second advance in the same tick is not consumed.
	if q.Advance() {
		t.Error("second advance consumed")
	}
	if q.Stage() != 1 {
		t.Errorf("Stage = %d, want 1", q.Stage())
	}
}

func TestSequencerTerminalStageHolds(t *testing.T) {
	s := NewScheduler()
	q := NewSequencer(s, waitStages(2, 0.5, true))
	q.Start(0)
	s.Tick(0.5)
	q.Advance()
	s.Tick(0.5)

	if !q.Finished() {
		t.Fatal("terminal stage should finish")
	}
	if q.CanProgress() {
		t.Error("gate must stay closed after the terminal stage")
	}
	for i := 0; i < 10; i++ {
		s.Tick(0.5)
		if q.Advance() {
			t.Fatal("advance accepted after the terminal stage")
		}
	}
	if q.Stage() != 1 {
		t.Errorf("Stage = %d, want 1", q.Stage())
	}
}

func TestSequencerStallsPastLastStage(t *testing.T) {
	buf := captureLog(t)
	s := NewScheduler()
	q := NewSequencer(s, waitStages(1, 0.5, false))
	q.Start(0)
	s.Tick(0.5)
	if !q.Advance() {
		t.Fatal("advance rejected")
	}
	if q.Stage() != 1 || q.CanProgress() {
		t.Errorf("stage %d gate %v, want stalled at 1", q.Stage(), q.CanProgress())
	}
	if !strings.Contains(buf.String(), "stage 1: no task") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestSequencerJumpToPreparesThenLaunches(t *testing.T) {
	s := NewScheduler()
	var order []string
	stages := waitStages(5, 0.5, true)
	stages[3].Build = func() Task {
		order = append(order, "launch")
		return Wait(0.5)
	}
	q := NewSequencer(s, stages)
	q.Prepare = func(n int) { order = append(order, "prepare") }

	q.Start(3)
	if q.Stage() != 3 {
		t.Errorf("Stage = %d, want 3", q.Stage())
	}
	if len(order) != 2 || order[0] != "prepare" || order[1] != "launch" {
		t.Errorf("order = %v, want [prepare launch]", order)
	}
	s.Tick(0.5)
	if !q.CanProgress() {
		t.Error("gate should open after the jumped-to stage")
	}
}

func TestSequencerJumpToCancelsRunningStage(t *testing.T) {
	s := NewScheduler()
	q := NewSequencer(s, waitStages(4, 1, true))
	q.Start(0)
	s.Tick(0.5)
	q.JumpTo(2)
	s.Tick(0.5)
	if q.CanProgress() {
		t.Error("cancelled stage 0 must not open the gate")
	}
	s.Tick(0.5)
	if !q.CanProgress() || q.Stage() != 2 {
		t.Errorf("stage %d gate %v, want 2 open", q.Stage(), q.CanProgress())
	}
}

func TestSequencerObserver(t *testing.T) {
	s := NewScheduler()
	obs := &recordingObserver{}
	q := NewSequencer(s, waitStages(2, 0.5, true))
	q.SetObserver(obs)
	q.Start(0)
	s.Tick(0.5)
	q.Advance()
	s.Tick(0.5)

	want := []StageEvent{
		{StageStarted, 0, "a"},
		{StageAwaiting, 0, "a"},
		{StageStarted, 1, "b"},
		{StageFinished, 1, "b"},
	}
	if len(obs.events) != len(want) {
		t.Fatalf("events = %+v, want %+v", obs.events, want)
	}
	for i := range want {
		if obs.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, obs.events[i], want[i])
		}
	}
}

func TestSequencerInstantStageOpensGateAtOnce(t *testing.T) {
	s := NewScheduler()
	q := NewSequencer(s, []Stage{
		{Name: "instant", Build: func() Task { return Do(nil) }},
		{Name: "end", Terminal: true, Build: func() Task { return nil }},
	})
	q.Start(0)
	if !q.CanProgress() {
		t.Fatal("a stage with no waiting should open the gate when started")
	}
	q.Advance()
	if !q.Finished() {
		t.Error("empty terminal stage should finish at once")
	}
}
