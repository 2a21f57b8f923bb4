package seedling

import (
	"math"
	"strings"
	"testing"
)

func newTestSeed() (*SeedController, *Node) {
	body := NewBox("seed", Vec3{}, Vec3{0.2, 0.2, 0.2}, ColorWhite)
	body.SetPosition(Vec3{1, 2, 0})
	c := NewSeedController()
	c.Body = Some[SeedBody](body)
	c.Light = Some[Light](body)
	c.GlowDuration = 1
	c.PlantDuration = 1
	c.LightFadeDuration = 0.5
	c.Init()
	return c, body
}

func TestSeedInitTurnsLightOff(t *testing.T) {
	_, body := newTestSeed()
	if body.Intensity != 0 {
		t.Errorf("Intensity = %f, want 0", body.Intensity)
	}
}

func TestSeedFloatBobs(t *testing.T) {
	c, body := newTestSeed()
	s := NewScheduler()
	s.Go(c.Float())
	s.Tick(0.5)
	want := 2 + math.Sin(0.5*c.FloatSpeed)*c.FloatAmplitude
	if math.Abs(body.Y-want) > 1e-9 {
		t.Errorf("Y = %f, want %f", body.Y, want)
	}
	if body.X != 1 {
		t.Errorf("X = %f, float should only move Y", body.X)
	}
}

func TestSeedGlow(t *testing.T) {
	c, body := newTestSeed()
	s := NewScheduler()
	s.Go(c.Glow())
	s.Tick(0.5)
	if !near(body.Intensity, c.GlowIntensity/2) {
		t.Errorf("Intensity = %f, want %f", body.Intensity, c.GlowIntensity/2)
	}
	s.Tick(0.5)
	if body.Intensity != c.GlowIntensity {
		t.Errorf("Intensity = %f, want %f", body.Intensity, c.GlowIntensity)
	}
}

func TestSeedGlowWithoutLight(t *testing.T) {
	c := NewSeedController()
	if c.Glow() != nil {
		t.Error("Glow without a light should be a no-op")
	}
}

func TestSeedPlant(t *testing.T) {
	c, body := newTestSeed()
	c.Ground = Some(Vec3{1, 0, 0})
	s := NewScheduler()
	s.Go(c.Float())
	s.Go(c.Glow())
	tickFor(s, 1, nil)

	fromY := body.Y
	h := s.Go(c.Plant())
	s.Tick(0.5)
	if !near(body.Y, fromY/2) {
		t.Errorf("Y mid descent = %f, want %f", body.Y, fromY/2)
	}
	s.Tick(0.5)
	if body.Y != 0 {
		t.Errorf("Y after descent = %f, want 0", body.Y)
	}
	if !body.Active {
		t.Error("seed hidden before its light faded")
	}
	s.Tick(0.5)
	if body.Intensity != 0 {
		t.Errorf("Intensity = %f, want 0", body.Intensity)
	}
	if body.Active || !c.Planted() || !h.Done() {
		t.Error("seed should be hidden and planted")
	}
	if s.Len() != 0 {
		t.Errorf("%d tasks still running, float should stop", s.Len())
	}
}

func TestSeedPlantWithoutBody(t *testing.T) {
	buf := captureLog(t)
	c := NewSeedController()
	if !c.Plant().Resume(0) {
		t.Error("plant without body should finish at once")
	}
	if !c.Planted() {
		t.Error("seed should count as planted")
	}
	if !strings.Contains(buf.String(), "no seed body") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestSeedHide(t *testing.T) {
	c, body := newTestSeed()
	c.Hide()
	if body.Active || !c.Planted() {
		t.Error("Hide should deactivate the seed")
	}
}

func TestSeedRestoreAfterPlant(t *testing.T) {
	c, body := newTestSeed()
	s := NewScheduler()
	s.Go(c.Float())
	s.Go(Sequence(c.Glow(), c.Plant()))
	tickFor(s, 3, nil)
	if !c.Planted() || body.Active || s.Len() != 0 {
		t.Fatalf("planted %v active %v tasks %d, want a finished plant", c.Planted(), body.Active, s.Len())
	}

	if !c.Restore() {
		t.Fatal("Restore should ask for a new float task once the old one ended")
	}
	if c.Planted() || !body.Active || body.Intensity != 0 {
		t.Errorf("planted %v active %v intensity %f, want shown and unlit", c.Planted(), body.Active, body.Intensity)
	}
	if p := body.WorldPosition(); p != (Vec3{1, 2, 0}) {
		t.Errorf("position = %+v, want the resting position", p)
	}
	s.Go(c.Float())
	s.Tick(0.5)
	if body.Y == 2 {
		t.Error("restored seed should float")
	}
}

func TestSeedRestoreWhileFloating(t *testing.T) {
	c, _ := newTestSeed()
	s := NewScheduler()
	s.Go(c.Float())
	s.Tick(0.25)
	if c.Restore() {
		t.Error("Restore should reuse the running float task")
	}
	if s.Len() != 1 {
		t.Errorf("tasks = %d, want 1", s.Len())
	}
}
