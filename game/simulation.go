package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orbitalrace/components"
	"github.com/pthm-cable/orbitalrace/config"
	"github.com/pthm-cable/orbitalrace/systems"
	"github.com/pthm-cable/orbitalrace/telemetry"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

// BodyView pairs a body with its label for rendering and inspection.
type BodyView struct {
	Entity ecs.Entity
	Label  components.Label
	Body   *components.Body
}

// Simulation owns the bodies and advances them. The player and reference
// bodies are resolved once at construction.
type Simulation struct {
	initial []config.BodyConfig

	world   *ecs.World
	bodies  *ecs.Map1[components.Body]
	labels  *ecs.Map1[components.Label]
	physics *systems.PhysicsSystem

	order     []ecs.Entity
	player    ecs.Entity
	reference ecs.Entity

	perf *telemetry.PerfCollector

	simTime float64
	tick    int32
}

// NewSimulation builds a simulation from body literals. It fails if a
// vector literal has the wrong length, a role is unknown, or there is not
// exactly one player and one reference body.
func NewSimulation(bodies []config.BodyConfig) (*Simulation, error) {
	s := &Simulation{initial: append([]config.BodyConfig(nil), bodies...)}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// build creates a fresh world from the initial body literals.
func (s *Simulation) build() error {
	world := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Body, components.Label](world)

	type pending struct {
		body  components.Body
		label components.Label
	}
	specs := make([]pending, 0, len(s.initial))

	for i, bc := range s.initial {
		body, err := bodyFromConfig(bc)
		if err != nil {
			return fmt.Errorf("body %d (%q): %w", i, bc.Name, err)
		}
		role, err := components.ParseRole(bc.Role)
		if err != nil {
			return fmt.Errorf("body %d (%q): %w", i, bc.Name, err)
		}
		specs = append(specs, pending{body: body, label: components.Label{Name: bc.Name, Role: role}})
	}
	playerIdx, referenceIdx, err := config.ResolveRoles(s.initial)
	if err != nil {
		return err
	}

	order := make([]ecs.Entity, len(specs))
	for i := range specs {
		order[i] = mapper.NewEntity(&specs[i].body, &specs[i].label)
	}

	s.world = world
	s.bodies = ecs.NewMap1[components.Body](world)
	s.labels = ecs.NewMap1[components.Label](world)
	s.physics = systems.NewPhysicsSystem(world)
	s.order = order
	s.player = order[playerIdx]
	s.reference = order[referenceIdx]
	s.simTime = 0
	s.tick = 0
	return nil
}

// bodyFromConfig converts body literals, checking each vector length.
func bodyFromConfig(bc config.BodyConfig) (components.Body, error) {
	pos, err := vecmath.New(2, bc.Position...)
	if err != nil {
		return components.Body{}, fmt.Errorf("position: %w", err)
	}
	vel, err := vecmath.New(2, bc.Velocity...)
	if err != nil {
		return components.Body{}, fmt.Errorf("velocity: %w", err)
	}
	color, err := vecmath.New(3, bc.Color...)
	if err != nil {
		return components.Body{}, fmt.Errorf("color: %w", err)
	}
	return components.NewBody(pos, vel, color), nil
}

// SetPerf attaches a collector that times the thrust and integrate phases.
func (s *Simulation) SetPerf(p *telemetry.PerfCollector) {
	s.perf = p
}

func (s *Simulation) phase(name string) {
	if s.perf != nil {
		s.perf.StartPhase(name)
	}
}

// Update applies the joystick thrust to the player, then steps every body
// in order with the same dt.
func (s *Simulation) Update(dt float64, js systems.Joystick) {
	s.phase(telemetry.PhaseThrust)
	systems.ApplyThrust(s.Player(), js, dt)

	s.phase(telemetry.PhaseIntegrate)
	s.physics.Update(s.order, dt)

	s.simTime += dt
	s.tick++
}

// Reset restores the initial bodies and clears all traces.
func (s *Simulation) Reset() {
	// The literals were validated by NewSimulation.
	if err := s.build(); err != nil {
		panic(err)
	}
}

// Bodies returns the bodies in configuration order. The pointers stay
// valid until the next Reset.
func (s *Simulation) Bodies() []BodyView {
	out := make([]BodyView, len(s.order))
	for i, e := range s.order {
		out[i] = BodyView{Entity: e, Label: *s.labels.Get(e), Body: s.bodies.Get(e)}
	}
	return out
}

// Body returns the body for entity e, if e is alive in the current world.
func (s *Simulation) Body(e ecs.Entity) (BodyView, bool) {
	if !s.world.Alive(e) {
		return BodyView{}, false
	}
	return BodyView{Entity: e, Label: *s.labels.Get(e), Body: s.bodies.Get(e)}, true
}

// BodyPointers returns just the bodies, in order, for the renderer.
func (s *Simulation) BodyPointers() []*components.Body {
	out := make([]*components.Body, len(s.order))
	for i, e := range s.order {
		out[i] = s.bodies.Get(e)
	}
	return out
}

// Player returns the thrust-controlled body.
func (s *Simulation) Player() *components.Body {
	return s.bodies.Get(s.player)
}

// Reference returns the body angles are measured from.
func (s *Simulation) Reference() *components.Body {
	return s.bodies.Get(s.reference)
}

// Readout computes the player's orbital readout.
func (s *Simulation) Readout() systems.Readout {
	return systems.ComputeReadout(s.Player(), s.Reference())
}

// SimTime returns the simulated seconds since the last reset.
func (s *Simulation) SimTime() float64 {
	return s.simTime
}

// Tick returns the number of updates since the last reset.
func (s *Simulation) Tick() int32 {
	return s.tick
}
