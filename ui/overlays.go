package ui

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayTrails      OverlayID = "trails"
	OverlayLocalFrame  OverlayID = "local_frame"
	OverlayVelocity    OverlayID = "velocity"
	OverlayPrediction  OverlayID = "prediction"
	OverlayAltitude    OverlayID = "altitude_ring"
	OverlayPerformance OverlayID = "performance"
)

// OverlayCategory groups overlays in the controls panel.
type OverlayCategory string

const (
	CategoryScene   OverlayCategory = "scene"
	CategoryGuides  OverlayCategory = "guides"  // drawn around the player
	CategoryVectors OverlayCategory = "vectors" // one per body
	CategoryDebug   OverlayCategory = "debug"
)

// OverlaySpace says where an overlay is drawn.
type OverlaySpace uint8

const (
	SpaceWorld  OverlaySpace = iota // under the camera, with the bodies
	SpaceScreen                     // fixed panel over the HUD
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32  // toggle key (0 = none)
	KeyLabel    string // e.g. "P"
	Category    OverlayCategory
	Space       OverlaySpace
	DefaultOn   bool
}

// defaultOverlays lists the built-in overlays in display order.
var defaultOverlays = []OverlayDescriptor{
	{ID: OverlayTrails, Name: "Trails", Description: "Fading trace of every body",
		Key: rl.KeyT, KeyLabel: "T", Category: CategoryScene, Space: SpaceWorld, DefaultOn: true},
	{ID: OverlayLocalFrame, Name: "Thrust Frame", Description: "Radial and tangential thrust axes at the player",
		Key: rl.KeyF, KeyLabel: "F", Category: CategoryGuides, Space: SpaceWorld},
	{ID: OverlayPrediction, Name: "Coast Path", Description: "Path the player follows if it stops thrusting",
		Key: rl.KeyP, KeyLabel: "P", Category: CategoryGuides, Space: SpaceWorld},
	{ID: OverlayAltitude, Name: "Altitude Ring", Description: "Circular orbit at the player's altitude",
		Key: rl.KeyC, KeyLabel: "C", Category: CategoryGuides, Space: SpaceWorld},
	{ID: OverlayVelocity, Name: "Velocities", Description: "Velocity vector of each body",
		Key: rl.KeyV, KeyLabel: "V", Category: CategoryVectors, Space: SpaceWorld},
	{ID: OverlayPerformance, Name: "Performance", Description: "Tick timing by phase",
		Key: rl.KeyG, KeyLabel: "G", Category: CategoryDebug, Space: SpaceScreen},
}

// ErrDuplicateOverlay is returned when an overlay ID or key is already taken.
var ErrDuplicateOverlay = errors.New("duplicate overlay")

type overlayEntry struct {
	desc OverlayDescriptor
	on   bool
}

// OverlayRegistry holds the overlays in registration order and their state.
type OverlayRegistry struct {
	entries []overlayEntry
	index   map[OverlayID]int
}

// NewOverlayRegistry creates a registry with the built-in overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{index: make(map[OverlayID]int)}
	for _, d := range defaultOverlays {
		if err := reg.Register(d); err != nil {
			panic(err)
		}
	}
	return reg
}

// Register adds an overlay, enabled if DefaultOn is set.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) error {
	if _, ok := r.index[desc.ID]; ok {
		return fmt.Errorf("%w: id %q", ErrDuplicateOverlay, desc.ID)
	}
	if desc.Key != 0 {
		for _, e := range r.entries {
			if e.desc.Key == desc.Key {
				return fmt.Errorf("%w: key %s used by %q", ErrDuplicateOverlay, desc.KeyLabel, e.desc.ID)
			}
		}
	}
	r.index[desc.ID] = len(r.entries)
	r.entries = append(r.entries, overlayEntry{desc: desc, on: desc.DefaultOn})
	return nil
}

// Toggle flips an overlay and returns its new state. Unknown IDs stay off.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.entries[i].on = !r.entries[i].on
	return r.entries[i].on
}

// ToggleKey flips the overlay bound to key. ok is false if none is bound.
func (r *OverlayRegistry) ToggleKey(key int32) (id OverlayID, on, ok bool) {
	if key == 0 {
		return "", false, false
	}
	for _, e := range r.entries {
		if e.desc.Key == key {
			return e.desc.ID, r.Toggle(e.desc.ID), true
		}
	}
	return "", false, false
}

// IsEnabled reports whether an overlay is on.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	i, ok := r.index[id]
	return ok && r.entries[i].on
}

// Enabled returns the IDs of the enabled overlays drawn in space, in
// registration order.
func (r *OverlayRegistry) Enabled(space OverlaySpace) []OverlayID {
	var ids []OverlayID
	for _, e := range r.entries {
		if e.on && e.desc.Space == space {
			ids = append(ids, e.desc.ID)
		}
	}
	return ids
}

// OverlayGroup is one category of overlays with their current state.
type OverlayGroup struct {
	Category OverlayCategory
	Overlays []OverlayDescriptor
	On       []bool
}

// Groups returns the overlays grouped by category, categories in order of
// first registration.
func (r *OverlayRegistry) Groups() []OverlayGroup {
	var groups []OverlayGroup
	pos := make(map[OverlayCategory]int)
	for _, e := range r.entries {
		i, ok := pos[e.desc.Category]
		if !ok {
			i = len(groups)
			pos[e.desc.Category] = i
			groups = append(groups, OverlayGroup{Category: e.desc.Category})
		}
		groups[i].Overlays = append(groups[i].Overlays, e.desc)
		groups[i].On = append(groups[i].On, e.on)
	}
	return groups
}
