package systems

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/orbitalrace/components"
	"github.com/pthm-cable/orbitalrace/vecmath"
)

// Readout holds the orbital state of the player relative to the attractor
// and the reference body. All energies are per unit mass.
type Readout struct {
	Altitude         float64 // |P.pos|
	AngleDeg         float64 // signed angle reference -> player, folded into [-90, 90]
	VOrbital         float64 // tangential speed component
	VVertical        float64 // radial speed component, positive outbound
	VCircular        float64 // circular orbit speed at this altitude
	OrbitalExcessPct float64 // 100 * (VOrbital/VCircular - 1)
	EKinetic         float64
	EPotential       float64
	ETotal           float64
}

// ComputeReadout derives the HUD values from the player and reference bodies.
func ComputeReadout(player, reference *components.Body) Readout {
	h := player.Position.Norm()
	vertical := player.Position.Div(h)
	vOrbital := player.Velocity.Dot(vecmath.Ortho(vertical))
	vCircular := math.Sqrt(1.0 / h)
	ek := 0.5 * player.Velocity.SquaredNorm()
	ep := -1.0 / h

	return Readout{
		Altitude:         h,
		AngleDeg:         vecmath.SAngle(reference.Position, player.Position) * (180.0 / math.Pi),
		VOrbital:         vOrbital,
		VVertical:        player.Velocity.Dot(vertical),
		VCircular:        vCircular,
		OrbitalExcessPct: 100.0 * (vOrbital/vCircular - 1.0),
		EKinetic:         ek,
		EPotential:       ep,
		ETotal:           ek + ep,
	}
}

// Bound reports whether the orbit is closed (negative specific energy).
func (r Readout) Bound() bool {
	return r.ETotal < 0
}

// Finite reports whether every value is a finite number. A body that
// reached the attractor produces NaN or Inf here.
func (r Readout) Finite() bool {
	for _, v := range r.values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (r Readout) values() map[string]float64 {
	return map[string]float64{
		components.FieldAltitude:   r.Altitude,
		components.FieldAngle:      r.AngleDeg,
		components.FieldOrbital:    r.VOrbital,
		components.FieldOrbitalPct: r.OrbitalExcessPct,
		components.FieldVertical:   r.VVertical,
		components.FieldCircular:   r.VCircular,
		components.FieldKinetic:    r.EKinetic,
		components.FieldPotential:  r.EPotential,
		components.FieldTotal:      r.ETotal,
	}
}

// Field is a readout value paired with its display metadata.
type Field struct {
	components.FieldDescriptor
	Value float64
}

// Text formats the value with the descriptor's format.
func (f Field) Text() string {
	return fmt.Sprintf(f.Format, f.Value)
}

// Fields returns the readout in display order.
func (r Readout) Fields() []Field {
	vals := r.values()
	descs := components.ReadoutFieldDescriptors()
	out := make([]Field, len(descs))
	for i, d := range descs {
		out[i] = Field{FieldDescriptor: d, Value: vals[d.ID]}
	}
	return out
}

// LogValue implements slog.LogValuer for structured logging.
func (r Readout) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("altitude", r.Altitude),
		slog.Float64("angle_deg", r.AngleDeg),
		slog.Float64("v_orbital", r.VOrbital),
		slog.Float64("v_vertical", r.VVertical),
		slog.Float64("e_total", r.ETotal),
		slog.Bool("bound", r.Bound()),
	)
}
