package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/sched"
)

// DefaultLeadFrames is how many frames ahead of the proximity band the
// autopilot jumps by default.
const DefaultLeadFrames = 12

// Autopilot plays the game without input: it jumps when a ground obstacle
// is about to enter the proximity band and never jumps for elevated ones.
type Autopilot struct {
	LeadFrames float64 // Look-ahead in frames at the current speed
}

// NewAutopilot creates an autopilot with the given look-ahead. Non-positive
// values use DefaultLeadFrames.
func NewAutopilot(leadFrames float64) Autopilot {
	if leadFrames <= 0 {
		leadFrames = DefaultLeadFrames
	}
	return Autopilot{LeadFrames: leadFrames}
}

// ShouldJump decides whether to jump in the given state.
func (a Autopilot) ShouldJump(s Snapshot, cfg config.RunnerConfig) bool {
	if !s.Started || s.Over || s.Jumping {
		return false
	}

	lead := s.Speed * a.LeadFrames
	for _, o := range s.Obstacles {
		if o.Tier != TierGround {
			continue
		}
		if o.X >= cfg.Collision.BandMin && o.X-cfg.Collision.BandMax <= lead {
			return true
		}
	}
	return false
}

// Play restarts the engine and plays one session on loop, advancing
// frameDur of virtual time per frame, until game over or maxFrames.
// Timers fire before the frame they precede, matching the terminal host.
func (a Autopilot) Play(e *Engine, loop *sched.Loop, frameDur time.Duration, maxFrames int) Snapshot {
	e.Restart()
	cfg := e.Config()

	for i := 0; i < maxFrames && !e.s.over; i++ {
		loop.Advance(frameDur)
		if a.ShouldJump(e.Snapshot(), cfg) {
			e.Jump()
		}
		loop.Frame()
	}
	return e.Snapshot()
}
