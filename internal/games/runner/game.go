// Package runner implements the endless-runner engine: a character jumps
// over obstacles that scroll toward it at increasing speed until it
// collides with one.
//
// The engine is driven entirely by its collaborators: a frame scheduler
// calls the per-frame loop, a timer scheduler drives the spawn cycle and
// the jump arc, and the host forwards input actions. All state lives in
// the Engine and is written to a Surface; nothing is read back from it.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sched"
)

// ID is the game identifier used in logs and the run board.
const ID = "runner"

// Title is the display name.
const Title = "Endless Runner"

// FrameScheduler delivers one callback per rendered frame.
type FrameScheduler interface {
	RequestFrame(fn func()) sched.Handle
}

// TimerScheduler delivers delayed and repeating callbacks.
type TimerScheduler interface {
	AfterFunc(d time.Duration, fn func()) sched.Handle
	Every(d time.Duration, fn func()) sched.Handle
}

// Options configures a new Engine. Frames and Timers are required.
type Options struct {
	Config  config.RunnerConfig
	Frames  FrameScheduler
	Timers  TimerScheduler
	Surface Surface    // Nil discards all rendering
	Rand    *rand.Rand // Nil seeds from Seed
	Seed    int64
	Logger  *log.Logger // Nil discards logs
}

// session holds everything that belongs to one play-through, plus the
// high score which survives resets.
type session struct {
	score     int
	highScore int
	speed     float64
	spawned   int // Obstacles spawned this session
	frames    int // Frames completed this session
	started   bool
	over      bool

	obstacles []*Obstacle // FIFO in spawn order
	nextID    int

	frame      sched.Handle // Pending frame request
	spawnTimer sched.Handle // Pending spawn timeout
	spawnPhase Phase
}

// Engine is the game engine. It is not safe for concurrent use; all
// calls must come from the goroutine that drives its schedulers.
type Engine struct {
	cfg     config.RunnerConfig
	frames  FrameScheduler
	timers  TimerScheduler
	surface Surface
	rng     *rand.Rand
	logger  *log.Logger

	s    session
	char Character
	jump jumpArc
}

// New creates an engine and initializes it. The session is not started.
func New(opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	surface := opts.Surface
	if surface == nil {
		surface = nopSurface{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		cfg:     opts.Config,
		frames:  opts.Frames,
		timers:  opts.Timers,
		surface: surface,
		rng:     rng,
		logger:  logger.WithPrefix(ID),
	}
	e.Initialize()
	return e
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}

// Initialize resets the session to its canonical start state. The high
// score is kept. Any pending frame, spawn or jump callback from the
// previous session is cancelled.
func (e *Engine) Initialize() {
	e.s.frame.Cancel()
	e.s.spawnTimer.Cancel()
	e.jump.stop(PhaseIdle)

	e.s = session{
		highScore: e.s.highScore,
		speed:     e.cfg.Scroll.BaseSpeed,
		nextID:    e.s.nextID,
	}
	e.char = Character{}

	e.surface.ClearObstacles()
	e.surface.SetCharacterOffset(0)
	e.surface.SetGameOverVisible(false)
	e.surface.SetStartPromptVisible(true)
	e.surface.SetScore(0)
	e.surface.SetHighScore(e.s.highScore)
}

// Start begins the session. It is a no-op once the session has started.
func (e *Engine) Start() {
	if e.s.started {
		return
	}
	e.s.started = true

	e.surface.SetStartPromptVisible(false)
	e.surface.SetGameOverVisible(false)

	e.s.frame = e.frames.RequestFrame(e.frame)
	e.s.spawnPhase = PhaseActive
	e.s.spawnTimer = e.timers.AfterFunc(0, e.spawn)

	e.logger.Debug("session started", "high_score", e.s.highScore, "speed", e.s.speed)
}

// Restart initializes a new session and starts it.
func (e *Engine) Restart() {
	if e.s.started {
		e.logger.Debug("restart", "score", e.s.score, "over", e.s.over)
	}
	e.Initialize()
	e.Start()
}

// HandleInput dispatches a host action. Jump doubles as the start and
// restart control when there is nothing to jump in. Returns false for
// actions the engine does not consume.
func (e *Engine) HandleInput(a core.Action) bool {
	switch a {
	case core.ActionJump:
		switch {
		case e.s.over:
			e.Restart()
		case !e.s.started:
			e.Start()
		default:
			e.Jump()
		}
		return true
	case core.ActionRestart:
		e.Restart()
		return true
	default:
		return false
	}
}

// frame is one iteration of the per-frame loop.
func (e *Engine) frame() {
	e.s.frame = sched.Handle{}
	if e.s.over {
		return
	}

	e.moveObstacles()
	e.updateScore()
	e.s.speed += e.cfg.Scroll.Increment
	e.checkCollisions()
	if e.s.over {
		return
	}

	e.s.frames++
	e.s.frame = e.frames.RequestFrame(e.frame)
}

// updateScore renders the score and raises the high score when beaten.
func (e *Engine) updateScore() {
	e.surface.SetScore(e.s.score)
	if e.s.score > e.s.highScore {
		e.s.highScore = e.s.score
		e.surface.SetHighScore(e.s.highScore)
	}
}

// gameOver ends the session. Calling it again has no effect.
func (e *Engine) gameOver() {
	if e.s.over {
		return
	}
	e.s.over = true

	e.s.frame.Cancel()
	e.s.spawnTimer.Cancel()
	e.s.spawnPhase = PhaseTerminated
	if e.cfg.Physics.CancelJumpOnGameOver {
		e.jump.stop(PhaseTerminated)
	}

	e.surface.SetGameOverVisible(true)

	e.logger.Debug("game over",
		"score", e.s.score,
		"high_score", e.s.highScore,
		"frames", e.s.frames,
		"spawned", e.s.spawned,
	)
}

// State returns the summary hosts poll after each frame.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:     e.s.score,
		HighScore: e.s.highScore,
		Started:   e.s.started,
		GameOver:  e.s.over,
	}
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Score      int
	HighScore  int
	Speed      float64
	Spawned    int
	Frames     int
	Started    bool
	Over       bool
	Jumping    bool
	Character  Character
	Obstacles  []Obstacle
	SpawnPhase Phase
	JumpPhase  Phase
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(e.s.obstacles))
	for i, o := range e.s.obstacles {
		obstacles[i] = *o
	}
	return Snapshot{
		Score:      e.s.score,
		HighScore:  e.s.highScore,
		Speed:      e.s.speed,
		Spawned:    e.s.spawned,
		Frames:     e.s.frames,
		Started:    e.s.started,
		Over:       e.s.over,
		Jumping:    e.char.Airborne,
		Character:  e.char,
		Obstacles:  obstacles,
		SpawnPhase: e.s.spawnPhase,
		JumpPhase:  e.jump.phase,
	}
}
