package runner

import (
	"github.com/vovakirdan/tui-runner/internal/sched"
)

// Character is the player. Y is the offset above the ground and never
// negative; positive velocity moves up.
type Character struct {
	Y        float64
	Vel      float64
	Airborne bool
}

// jumpArc is the jump tick process.
type jumpArc struct {
	ticker sched.Handle
	phase  Phase
	ticks  int // Ticks simulated by the current arc
}

// stop cancels the ticker and moves the arc to the given phase.
func (j *jumpArc) stop(phase Phase) {
	j.ticker.Cancel()
	j.ticker = sched.Handle{}
	j.phase = phase
}

// Jump launches the character. Requests while airborne, before the session
// starts or after it ends are ignored. Returns whether a jump began.
func (e *Engine) Jump() bool {
	if !e.s.started || e.s.over || e.char.Airborne || e.jump.ticker.Active() {
		return false
	}

	e.char.Vel = e.cfg.Physics.JumpImpulse
	e.char.Airborne = true
	e.jump.ticks = 0
	e.jump.phase = PhaseActive
	e.jump.ticker = e.timers.Every(e.cfg.Physics.JumpTick(), e.jumpTick)
	return true
}

// jumpTick advances the arc by one step. The arc ends once the character
// is back on the ground and moving down.
func (e *Engine) jumpTick() {
	c := &e.char
	if c.Y <= 0 && c.Vel < 0 {
		e.jump.stop(PhaseIdle)
		c.Airborne = false
		c.Y = 0
		c.Vel = 0
		e.surface.SetCharacterOffset(0)
		return
	}

	e.jump.ticks++
	c.Y += c.Vel
	c.Vel -= e.cfg.Physics.Gravity
	c.Y = max(c.Y, 0)
	e.surface.SetCharacterOffset(c.Y)
}
