package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
)

// StepReport describes what the last Step did.
type StepReport struct {
	Merges     []Merge
	ScoreDelta int
	GameOver   bool // Game over was triggered by this step
}

// Simulation owns every object of one run. It is not safe for concurrent use;
// a single platform loop drives it.
type Simulation struct {
	cfg        Config
	detector   Detector
	integrator Integrator

	objects    []*Object
	controlled *Object
	nextID     ObjectID

	score    int
	merges   int
	best     Tier
	tick     uint64
	gameOver bool
	report   StepReport

	masks  MaskSource
	rng    *rand.Rand
	logger *log.Logger
}

// Option customizes a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for merge and game-over events.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMasks sets where pixel-mode objects get their opacity masks.
func WithMasks(m MaskSource) Option {
	return func(s *Simulation) {
		if m != nil {
			s.masks = m
		}
	}
}

// WithRand sets the random source for cosmetic spin.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulation) {
		if r != nil {
			s.rng = r
		}
	}
}

// New creates an empty simulation.
func New(cfg Config, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:        cfg,
		detector:   cfg.Collision,
		integrator: cfg.integrator(),
		masks:      &CircleMasks{},
		rng:        rand.New(rand.NewSource(1)),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config {
	return s.cfg
}

func (s *Simulation) newObject(t Tier, pos cp.Vector) *Object {
	s.nextID++
	o := &Object{
		ID:     s.nextID,
		Tier:   t,
		Pos:    pos,
		Radius: s.cfg.Tiers.Radius(t, s.cfg.Field),
		Spin:   (s.rng.Float64()*2 - 1) * s.cfg.MaxSpin,
	}
	if s.detector.PixelPerfect {
		o.Mask = s.masks.Mask(t, MaskDiameter(o.Radius))
	}
	return o
}

func (s *Simulation) add(o *Object) {
	s.objects = append(s.objects, o)
	if o.Tier > s.best {
		s.best = o.Tier
	}
}

// SpawnControlled creates the object the player is aiming with at the spawn
// point. A previously held, unreleased object is discarded.
func (s *Simulation) SpawnControlled(t Tier) ObjectID {
	o := s.newObject(t, cp.Vector{X: s.cfg.spawnX(), Y: s.cfg.Spawn.Y})
	if o.Pos.Y <= o.Radius {
		o.Pos.Y = o.Radius + 1
	}
	s.controlled = o
	return o.ID
}

// Controlled returns a copy of the held object, if any.
func (s *Simulation) Controlled() (ObjectView, bool) {
	if s.controlled == nil {
		return ObjectView{}, false
	}
	return s.view(s.controlled), true
}

// SetControlledX moves the held object horizontally. The position is clamped
// so the aim stays Spawn.Margin away from both walls.
func (s *Simulation) SetControlledX(x float64) {
	if s.controlled == nil {
		return
	}
	lo, hi := s.cfg.Spawn.Margin, s.cfg.Field.W-s.cfg.Spawn.Margin
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	s.controlled.Pos.X = x
}

// Release launches the held object downward and hands it to the physics.
// It reports false when there was nothing to release.
func (s *Simulation) Release() bool {
	if s.controlled == nil || s.gameOver {
		return false
	}
	o := s.controlled
	o.Vel = cp.Vector{Y: s.cfg.ReleaseSpeed}
	s.add(o)
	s.controlled = nil
	return true
}

// Place inserts an already released object directly into the field. It is
// used to set up scenarios and by tools; normal play goes through Release.
func (s *Simulation) Place(t Tier, x, y float64, static bool) ObjectID {
	o := s.newObject(t, cp.Vector{X: x, Y: y})
	if static {
		o.SetStatic()
	}
	s.add(o)
	return o.ID
}

// Step advances the simulation by dt frames and reports whether the game
// ended during this step. After game over it does nothing.
func (s *Simulation) Step(dt float64) bool {
	s.report = StepReport{}
	if s.gameOver {
		return false
	}
	s.tick++

	for _, o := range s.objects {
		s.integrator.Integrate(o, dt)
	}
	s.integrator.Attract(s.objects, dt)

	scoreBefore := s.score
	merges := s.applyMerges(s.resolvePairs())

	s.report.Merges = merges
	s.report.ScoreDelta = s.score - scoreBefore

	for _, o := range s.objects {
		if o.Top() <= 0 {
			s.gameOver = true
			s.report.GameOver = true
			s.logger.Info("game over", "score", s.score, "tick", s.tick, "objects", len(s.objects))
			break
		}
	}
	return s.report.GameOver
}

// SetGravity changes gravity for subsequent steps.
func (s *Simulation) SetGravity(g float64) {
	s.integrator.Gravity = g
}

// LastReport returns what the most recent Step did.
func (s *Simulation) LastReport() StepReport {
	return s.report
}

// Score returns the cumulative score.
func (s *Simulation) Score() int {
	return s.score
}

// GameOver reports whether the run has ended.
func (s *Simulation) GameOver() bool {
	return s.gameOver
}

// Len returns the number of live objects, not counting the held one.
func (s *Simulation) Len() int {
	return len(s.objects)
}
