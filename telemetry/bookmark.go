package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/orbitalrace/systems"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkPeriapsis BookmarkType = "periapsis"
	BookmarkApoapsis  BookmarkType = "apoapsis"
	BookmarkEscape    BookmarkType = "escape"
	BookmarkCapture   BookmarkType = "capture"
	BookmarkBurnStart BookmarkType = "burn_start"
	BookmarkBurnEnd   BookmarkType = "burn_end"
)

// Bookmark marks a notable moment of the player's orbit.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	SimTime     float64      `csv:"sim_time"`
	Altitude    float64      `csv:"altitude"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"sim_time", b.SimTime,
		"altitude", b.Altitude,
		"description", b.Description,
	)
}

// BookmarkDetector watches successive readouts for apsis passages,
// changes between bound and unbound orbits, and thrust burns.
type BookmarkDetector struct {
	prev    systems.Readout
	hasPrev bool

	burning       bool
	burnStartTime float64
	burnStartE    float64
}

// NewBookmarkDetector creates a detector with no history.
func NewBookmarkDetector() *BookmarkDetector {
	return &BookmarkDetector{}
}

// Check compares r with the previous readout and returns any triggered
// bookmarks. Non-finite readouts are ignored and do not replace the
// previous sample.
func (bd *BookmarkDetector) Check(tick int32, simTime float64, r systems.Readout, thrusting bool) []Bookmark {
	if !r.Finite() {
		return nil
	}

	var bookmarks []Bookmark
	mk := func(t BookmarkType, desc string) {
		bookmarks = append(bookmarks, Bookmark{
			Type:        t,
			Tick:        tick,
			SimTime:     simTime,
			Altitude:    r.Altitude,
			Description: desc,
		})
	}

	if bd.hasPrev {
		// Apsides only exist on closed orbits
		if r.Bound() && bd.prev.Bound() {
			switch {
			case bd.prev.VVertical < 0 && r.VVertical >= 0:
				mk(BookmarkPeriapsis, fmt.Sprintf("Periapsis at altitude %.3f", r.Altitude))
			case bd.prev.VVertical > 0 && r.VVertical <= 0:
				mk(BookmarkApoapsis, fmt.Sprintf("Apoapsis at altitude %.3f", r.Altitude))
			}
		}

		if bd.prev.Bound() && !r.Bound() {
			mk(BookmarkEscape, fmt.Sprintf("Escape trajectory, e_total %.4f", r.ETotal))
		}
		if !bd.prev.Bound() && r.Bound() {
			mk(BookmarkCapture, fmt.Sprintf("Captured, e_total %.4f", r.ETotal))
		}
	}

	switch {
	case thrusting && !bd.burning:
		bd.burning = true
		bd.burnStartTime = simTime
		bd.burnStartE = r.ETotal
		mk(BookmarkBurnStart, fmt.Sprintf("Burn started at altitude %.3f", r.Altitude))
	case !thrusting && bd.burning:
		bd.burning = false
		mk(BookmarkBurnEnd, fmt.Sprintf("Burn of %.2fs changed e_total by %+.4f",
			simTime-bd.burnStartTime, r.ETotal-bd.burnStartE))
	}

	bd.prev = r
	bd.hasPrev = true
	return bookmarks
}

// Reset forgets all history.
func (bd *BookmarkDetector) Reset() {
	*bd = BookmarkDetector{}
}
