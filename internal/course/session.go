// Package course implements the obstacle-course simulation core: a craft on a
// bounded plane dodging asteroids and planets that fly toward it.
//
// A Session is driven by an external frame scheduler through OnFrame and by
// discrete user actions applied between frames. It never blocks and owns all
// of its state; there are no package-level mutable globals.
package course

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/space-course/internal/config"
	"github.com/vovakirdan/space-course/internal/core"
)

// State is the session's top-level state.
type State int

const (
	StateMenu State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunStats counts what happened during the current run.
type RunStats struct {
	Frames  int // Running frames simulated
	Spawned int
	Culled  int
}

// Session is the game state machine. It sequences the clock, motion, spawn
// and collision systems once per running frame.
type Session struct {
	cfg        config.CourseConfig
	state      State
	clock      *Clock
	store      *EntityStore
	input      core.InputState
	motion     MotionSystem
	spawner    *SpawnController
	difficulty config.DifficultyModel

	frame  uint64
	hit    uint64
	runID  string
	stats  RunStats
	logger *log.Logger
	rng    RandomSource
}

// Option customizes a Session.
type Option func(*Session)

// WithSeed seeds the session's random source for reproducible spawns.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandomSource injects a random source, overriding WithSeed.
func WithRandomSource(rng RandomSource) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates a session in the Menu state with the craft at its spawn pose.
// The configuration is expected to have passed config.Validate.
func NewSession(cfg config.CourseConfig, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		state:      StateMenu,
		clock:      NewClock(cfg.Timing),
		store:      NewEntityStore(core.Vec3{Z: cfg.Arena.CraftDepth}, cfg.Craft.Radius),
		input:      core.NewInputState(),
		motion:     NewMotionSystem(cfg),
		difficulty: config.NewDifficultyModel(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.spawner = NewSpawnController(cfg, s.rng)
	return s
}

// OnFrame advances the simulation by one tick when running and returns the
// snapshot to draw. The clock is ticked in every state so that resuming from
// a pause or starting from the menu sees an ordinary frame delta.
func (s *Session) OnFrame(timestampMs float64) FrameResult {
	delta := s.clock.Tick(timestampMs)
	s.frame++

	if s.state == StateRunning {
		s.step(delta)
	}
	return s.Snapshot()
}

// step runs one frame in fixed order: time, craft, obstacles, spawn, collision.
func (s *Session) step(deltaMs float64) {
	s.clock.Advance(deltaMs)
	mult := s.difficulty.SpeedMultiplier(s.clock.Elapsed())

	s.motion.MoveCraft(s.store.Craft(), s.input, deltaMs)
	s.stats.Culled += s.motion.MoveObstacles(s.store, mult, deltaMs)

	// Obstacles spawned this frame are appended after `live` and are not tested until the next frame
	live := s.store.Len()
	if o, ok := s.spawner.Maybe(mult); ok {
		s.store.Spawn(o)
		s.stats.Spawned++
	}

	s.stats.Frames++

	if o, ok := Detect(*s.store.Craft(), s.store.Obstacles()[:live]); ok {
		s.hit = o.ID
		s.transition(StateGameOver)
		s.logger.Info("run ended",
			"run", s.runID,
			"survived", s.clock.Elapsed(),
			"obstacle", o.ID,
			"kind", o.Kind,
			"spawned", s.stats.Spawned,
		)
	}
}

// SetAction updates the held state of a directional action.
// Non-directional actions are discrete; use Trigger for those.
func (s *Session) SetAction(a core.Action, held bool) {
	if !a.IsDirectional() {
		return
	}
	s.input.Set(a, held)
}

// Trigger applies a discrete action. Actions the current state does not
// define are ignored.
func (s *Session) Trigger(a core.Action) {
	switch a {
	case core.ActionStart:
		s.Start()
	case core.ActionRestart:
		s.Restart()
	case core.ActionPause:
		s.TogglePause()
	case core.ActionMenu:
		s.ReturnToMenu()
	}
}

// Start begins a new run from the Menu or GameOver state.
func (s *Session) Start() {
	if s.state != StateMenu && s.state != StateGameOver {
		return
	}
	s.reset()
	s.transition(StateRunning)
	s.logger.Info("run started", "run", s.runID)
}

// Restart begins a new run after game over. It behaves exactly like Start.
func (s *Session) Restart() {
	s.Start()
}

// TogglePause switches between Running and Paused. No-op in other states.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.transition(StatePaused)
	case StatePaused:
		s.transition(StateRunning)
	}
}

// ReturnToMenu leaves the GameOver screen for the menu.
// The final survival time stays readable until the next run starts.
func (s *Session) ReturnToMenu() {
	if s.state != StateGameOver {
		return
	}
	s.store.Clear()
	s.store.ResetCraft()
	s.hit = 0
	s.transition(StateMenu)
}

func (s *Session) reset() {
	s.clock.ResetElapsed()
	s.store.Clear()
	s.store.ResetCraft()
	s.input.Release()
	s.hit = 0
	s.stats = RunStats{}
	s.runID = uuid.NewString()
}

func (s *Session) transition(to State) {
	s.logger.Debug("state change", "from", s.state, "to", to, "run", s.runID, "elapsed", s.clock.Elapsed())
	s.state = to
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Elapsed returns running seconds of the current run. Frozen while paused and
// after game over, where it is the run's survival time.
func (s *Session) Elapsed() float64 {
	return s.clock.Elapsed()
}

// DifficultyLevel returns the display level for the current run.
func (s *Session) DifficultyLevel() int {
	return s.difficulty.Level(s.clock.Elapsed())
}

// SpeedMultiplier returns the obstacle speed and spawn multiplier.
func (s *Session) SpeedMultiplier() float64 {
	return s.difficulty.SpeedMultiplier(s.clock.Elapsed())
}

// RunID identifies the current run in logs. Empty before the first start.
func (s *Session) RunID() string {
	return s.runID
}

// Stats returns counters for the current run.
func (s *Session) Stats() RunStats {
	return s.stats
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.CourseConfig {
	return s.cfg
}

// Snapshot returns a deep copy of the current simulation state.
func (s *Session) Snapshot() FrameResult {
	obstacles := make([]Obstacle, len(s.store.Obstacles()))
	for i, o := range s.store.Obstacles() {
		obstacles[i] = o.clone()
	}

	return FrameResult{
		Frame:           s.frame,
		State:           s.state,
		Elapsed:         s.clock.Elapsed(),
		Level:           s.DifficultyLevel(),
		SpeedMultiplier: s.SpeedMultiplier(),
		Craft:           *s.store.Craft(),
		Obstacles:       obstacles,
		Hit:             s.hit,
	}
}
