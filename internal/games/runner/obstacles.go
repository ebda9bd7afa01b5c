package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/sched"
)

// Tier is the height class of an obstacle.
type Tier int

const (
	TierGround   Tier = iota // Sits on the ground; jump over it
	TierElevated             // Hangs above the ground; stay under it
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	if t == TierElevated {
		return "elevated"
	}
	return "ground"
}

// Variant is the visual kind of an obstacle. Each variant has a fixed width.
type Variant int

const (
	VariantSmall Variant = iota
	VariantMedium
	VariantLarge
)

// Obstacle is one scrolling hazard. X is its left edge in field pixels.
type Obstacle struct {
	ID        int
	X         float64
	Width     float64
	Height    float64
	Elevation float64 // Bottom edge above the ground; 0 for ground obstacles
	Tier      Tier
	Variant   Variant
}

// spawn is one step of the self-rescheduling spawn cycle.
func (e *Engine) spawn() {
	e.s.spawnTimer = sched.Handle{}
	if e.s.over {
		e.s.spawnPhase = PhaseTerminated
		return
	}

	tier := TierGround
	if e.s.spawned >= e.cfg.Spawn.GroundOnlyCount && e.rng.Float64() < e.cfg.Spawn.ElevatedChance {
		tier = TierElevated
	}
	e.s.spawned++

	variant := Variant(e.rng.Intn(len(e.cfg.Obstacles.Variants)))
	vc := e.cfg.Obstacles.Variants[variant]

	o := &Obstacle{
		ID:      e.s.nextID,
		X:       e.cfg.Field.Width,
		Width:   vc.Width,
		Height:  vc.Height,
		Tier:    tier,
		Variant: variant,
	}
	if tier == TierElevated {
		o.Elevation = e.cfg.Spawn.ElevatedOffset
	}
	e.s.nextID++

	e.s.obstacles = append(e.s.obstacles, o)
	e.surface.AddObstacle(*o)

	e.s.spawnTimer = e.timers.AfterFunc(e.nextSpawnDelay(), e.spawn)
}

// nextSpawnDelay picks a delay uniformly from [min, max).
func (e *Engine) nextSpawnDelay() time.Duration {
	lo := e.cfg.Spawn.MinInterval()
	hi := e.cfg.Spawn.MaxInterval()
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(e.rng.Float64()*float64(hi-lo))
}

// moveObstacles scrolls every obstacle left and drops the ones that have
// fully left the field, scoring one point each. Obstacles share one speed
// so the queue front is always the leftmost.
func (e *Engine) moveObstacles() {
	for _, o := range e.s.obstacles {
		o.X -= e.s.speed
		e.surface.MoveObstacle(o.ID, o.X)
	}

	for len(e.s.obstacles) > 0 {
		front := e.s.obstacles[0]
		if front.X > -front.Width {
			break
		}
		e.s.obstacles[0] = nil
		e.s.obstacles = e.s.obstacles[1:]
		e.surface.RemoveObstacle(front.ID)

		e.s.score++
		e.updateScore()
	}
}
