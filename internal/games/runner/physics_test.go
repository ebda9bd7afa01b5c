package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/sched"
)

func TestJumpArcLandsOnGround(t *testing.T) {
	e, loop, scene := newTestEngine(t)
	e.Start()

	if !e.Jump() {
		t.Fatal("Jump() should succeed on the ground")
	}
	if s := e.Snapshot(); !s.Jumping || s.JumpPhase != PhaseActive {
		t.Fatalf("expected active jump, got jumping=%v phase=%v", s.Jumping, s.JumpPhase)
	}

	tick := e.cfg.Physics.JumpTick()
	maxY := 0.0
	ticks := 0
	for e.Snapshot().Jumping {
		if ticks > 60 {
			t.Fatal("jump did not land within 60 ticks")
		}
		loop.Advance(tick)
		ticks++

		c := e.Snapshot().Character
		if c.Y < 0 {
			t.Fatalf("character went below ground: y=%v", c.Y)
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	c := e.Snapshot().Character
	if c.Y != 0 || c.Vel != 0 {
		t.Errorf("landed at y=%v vel=%v, expected exactly 0/0", c.Y, c.Vel)
	}
	if maxY < e.cfg.Collision.GroundClearance {
		t.Errorf("apex %v below ground clearance %v", maxY, e.cfg.Collision.GroundClearance)
	}
	if e.Snapshot().JumpPhase != PhaseIdle {
		t.Errorf("jump phase = %v, expected idle after landing", e.Snapshot().JumpPhase)
	}
	if scene.CharacterOffset() != 0 {
		t.Errorf("scene offset = %v, expected 0", scene.CharacterOffset())
	}

	// Default physics: 36 stepping ticks plus the landing tick
	if ticks != 37 {
		t.Errorf("arc took %d ticks, expected 37", ticks)
	}
}

func TestJumpWhileAirborneIsNoop(t *testing.T) {
	e, loop, _ := newTestEngine(t)
	e.Start()
	loop.Advance(0)
	e.Jump()
	loop.Advance(3 * e.cfg.Physics.JumpTick())

	before := e.Snapshot().Character
	timers := loop.PendingTimers()

	if e.Jump() {
		t.Error("Jump() while airborne should be refused")
	}
	if after := e.Snapshot().Character; after != before {
		t.Errorf("character changed: %+v -> %+v", before, after)
	}
	if loop.PendingTimers() != timers {
		t.Errorf("pending timers changed from %d to %d", timers, loop.PendingTimers())
	}
}

func TestJumpRefusedOutsideSession(t *testing.T) {
	e, loop, _ := newTestEngine(t)

	if e.Jump() {
		t.Error("Jump() before start should be refused")
	}
	if loop.PendingTimers() != 0 {
		t.Error("refused jump should not arm a ticker")
	}

	e.Start()
	e.gameOver()
	if e.Jump() {
		t.Error("Jump() after game over should be refused")
	}
}

// crashMidJump jumps, rises a few ticks and hits an elevated obstacle.
func crashMidJump(t *testing.T, e *Engine, loop *sched.Loop) {
	t.Helper()
	e.Start()
	e.Jump()
	loop.Advance(5 * e.cfg.Physics.JumpTick())
	place(e, 80, TierElevated)
	loop.Frame()
	if !e.Snapshot().Over {
		t.Fatal("setup: expected collision mid-jump")
	}
	if e.Snapshot().Character.Y <= 0 {
		t.Fatal("setup: expected character in the air")
	}
}

func TestGameOverCancelsJump(t *testing.T) {
	e, loop, _ := newTestEngine(t)
	crashMidJump(t, e, loop)

	frozen := e.Snapshot().Character.Y
	if e.Snapshot().JumpPhase != PhaseTerminated {
		t.Errorf("jump phase = %v, expected terminated", e.Snapshot().JumpPhase)
	}
	if loop.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, expected none after game over", loop.PendingTimers())
	}

	loop.Advance(time.Second)
	if y := e.Snapshot().Character.Y; y != frozen {
		t.Errorf("character moved after game over: %v -> %v", frozen, y)
	}
}

func TestGameOverFinishesJump(t *testing.T) {
	e, loop, scene := newTestEngine(t, func(c *config.RunnerConfig) {
		c.Physics.CancelJumpOnGameOver = false
	})
	crashMidJump(t, e, loop)

	loop.Advance(2 * time.Second)

	s := e.Snapshot()
	if s.Character.Y != 0 {
		t.Errorf("arc should finish on the ground, y=%v", s.Character.Y)
	}
	if s.JumpPhase != PhaseIdle {
		t.Errorf("jump phase = %v, expected idle", s.JumpPhase)
	}
	if loop.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, expected none", loop.PendingTimers())
	}
	if scene.CharacterOffset() != 0 {
		t.Errorf("scene offset = %v, expected 0", scene.CharacterOffset())
	}
}

func TestRestartStopsLingeringJump(t *testing.T) {
	e, loop, _ := newTestEngine(t, func(c *config.RunnerConfig) {
		c.Physics.CancelJumpOnGameOver = false
	})
	crashMidJump(t, e, loop)

	e.Restart()

	if loop.PendingTimers() != 1 {
		t.Errorf("PendingTimers() = %d, expected only the spawn timer", loop.PendingTimers())
	}
	s := e.Snapshot()
	if s.Character != (Character{}) || s.JumpPhase != PhaseIdle {
		t.Errorf("character should be reset, got %+v phase %v", s.Character, s.JumpPhase)
	}
	if !e.Jump() {
		t.Error("jump should be available right after restart")
	}
}
