package components

// FieldDescriptor describes a readout value for HUD display.
type FieldDescriptor struct {
	ID     string // Unique identifier
	Label  string // Display name
	Format string // Printf format (e.g., "%.3f")
	Group  string // Heading the field is listed under
}

// Readout field identifiers.
const (
	FieldAltitude   = "altitude"
	FieldAngle      = "angle"
	FieldOrbital    = "orbital"
	FieldOrbitalPct = "orbital_pct"
	FieldVertical   = "vertical"
	FieldCircular   = "circular"
	FieldKinetic    = "kinetic"
	FieldPotential  = "potential"
	FieldTotal      = "total"
)

// Readout field groups, in display order.
const (
	GroupPosition = "Position"
	GroupVelocity = "Velocity"
	GroupEnergy   = "Energy"
)

// ReadoutFieldDescriptors returns metadata for the orbital readout in
// display order. Distances, speeds and energies use 3 decimals; angle and
// percentages use 1.
func ReadoutFieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{ID: FieldAltitude, Label: "altitude", Format: "%.3f", Group: GroupPosition},
		{ID: FieldAngle, Label: "angle", Format: "%.1f", Group: GroupPosition},
		{ID: FieldOrbital, Label: "orbital", Format: "%.3f", Group: GroupVelocity},
		{ID: FieldOrbitalPct, Label: "vs circular", Format: "%+.1f%%", Group: GroupVelocity},
		{ID: FieldVertical, Label: "vertical", Format: "%+.3f", Group: GroupVelocity},
		{ID: FieldCircular, Label: "circular", Format: "%.3f", Group: GroupVelocity},
		{ID: FieldKinetic, Label: "kinetic", Format: "%.3f", Group: GroupEnergy},
		{ID: FieldPotential, Label: "potential", Format: "%.3f", Group: GroupEnergy},
		{ID: FieldTotal, Label: "total", Format: "%.3f", Group: GroupEnergy},
	}
}
