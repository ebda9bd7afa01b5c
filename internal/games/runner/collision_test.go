package runner

import "testing"

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		tier Tier
		y    float64
		want bool
	}{
		{"ground on the ground", 80, TierGround, 0, true},
		{"ground just below clearance", 80, TierGround, 59.9, true},
		{"ground at clearance", 80, TierGround, 60, false},
		{"ground above clearance", 80, TierGround, 100, false},
		{"ground band min edge", 50, TierGround, 0, true},
		{"ground band max edge", 110, TierGround, 0, true},
		{"ground before band", 110.5, TierGround, 0, false},
		{"ground past band", 49.5, TierGround, 0, false},
		{"elevated on the ground", 80, TierElevated, 0, false},
		{"elevated top touches bottom", 80, TierElevated, 3, false},
		{"elevated top past bottom", 80, TierElevated, 4, true},
		{"elevated high jump", 80, TierElevated, 100, true},
		{"elevated outside band", 200, TierElevated, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, _, _ := newTestEngine(t)
			e.char.Y = tc.y
			o := &Obstacle{X: tc.x, Width: 20, Height: 40, Tier: tc.tier}
			if tc.tier == TierElevated {
				o.Elevation = e.cfg.Spawn.ElevatedOffset
			}
			if got := e.collides(o); got != tc.want {
				t.Errorf("collides() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCollisionEndsSession(t *testing.T) {
	e, loop, scene := newTestEngine(t)
	e.Start()
	place(e, 83, TierGround)

	loop.Frame() // moves to x=80

	s := e.Snapshot()
	if !s.Over {
		t.Fatal("expected game over")
	}
	if s.Speed != 0 {
		t.Errorf("speed = %v, expected 0 after collision", s.Speed)
	}
	if s.Jumping {
		t.Error("character should not be jumping after collision")
	}
	if s.SpawnPhase != PhaseTerminated {
		t.Errorf("spawn phase = %v, expected terminated", s.SpawnPhase)
	}
	if loop.PendingFrames() != 0 || loop.PendingTimers() != 0 {
		t.Errorf("loops should stop, got %d frames %d timers", loop.PendingFrames(), loop.PendingTimers())
	}
	if !scene.GameOverVisible() {
		t.Error("game-over indicator should be visible")
	}
	if !e.State().GameOver {
		t.Error("State().GameOver should be set")
	}

	if n := loop.Frame(); n != 0 {
		t.Errorf("no frame should run after game over, ran %d", n)
	}
}

func TestClearedGroundObstacleWhileHigh(t *testing.T) {
	e, loop, _ := newTestEngine(t)
	e.Start()
	e.char.Y = 80
	place(e, 83, TierGround)

	loop.Frame()

	if e.Snapshot().Over {
		t.Error("character above clearance should pass a ground obstacle")
	}
}
