package game

// DefaultFixedDT is the headless step length when none is given.
const DefaultFixedDT = 1.0 / 120.0

// Options configures a Game.
type Options struct {
	LogStats       bool
	StatsWindowSec float64 // simulation seconds per telemetry window (0 = config)
	OutputDir      string  // directory for CSV output and config snapshot
	Headless       bool
	StepsPerUpdate int     // simulation steps per Update call (0 = config)
	FixedDT        float64 // headless step length (0 = DefaultFixedDT)
	Input          Input   // nil = keyboard in graphical mode, coasting when headless
}
