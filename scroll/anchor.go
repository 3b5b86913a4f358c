// Package scroll keeps the viewer's visual position stable across timeline
// updates. It is a pure state machine: the view supplies scroll metrics and
// applies the returned plan; no rendering happens here.
package scroll

// BottomThreshold is how close to the bottom, in pixels, the viewer must be
// for a new appended message to auto-scroll the view.
const BottomThreshold = 120.0

// Metrics is a snapshot of the scroll container.
type Metrics struct {
	ScrollTop      float64
	ScrollHeight   float64
	ViewportHeight float64
}

// distanceFromBottom is zero when fully scrolled down.
func (m Metrics) distanceFromBottom() float64 {
	return m.ScrollHeight - (m.ScrollTop + m.ViewportHeight)
}

type PlanKind int

const (
	// PlanNone leaves the scroll position untouched.
	PlanNone PlanKind = iota
	// PlanForceBottom scrolls all the way down.
	PlanForceBottom
	// PlanRestore sets ScrollTop to Plan.Top, pinning the previously
	// visible message in place after a prepend.
	PlanRestore
)

type Plan struct {
	Kind PlanKind
	Top  float64
}

// Anchor decides the positioning after each timeline update.
type Anchor struct {
	opened     bool
	nearBottom bool
	captured   *Metrics
}

func NewAnchor() *Anchor {
	// A fresh room starts pinned to the bottom until observed otherwise.
	return &Anchor{nearBottom: true}
}

// Observe recomputes the near-bottom flag; the view calls it on every
// scroll event so the flag is current when an append arrives.
func (a *Anchor) Observe(m Metrics) {
	a.nearBottom = m.distanceFromBottom() <= BottomThreshold
}

// OnOpen forces a scroll to the bottom exactly once per room open,
// bypassing all other logic.
func (a *Anchor) OnOpen() Plan {
	if a.opened {
		return Plan{Kind: PlanNone}
	}
	a.opened = true
	a.nearBottom = true
	return Plan{Kind: PlanForceBottom}
}

// BeforePrepend captures the container metrics before the DOM reflects the
// new items.
func (a *Anchor) BeforePrepend(m Metrics) {
	captured := m
	a.captured = &captured
}

// AfterPrepend returns the restore plan keeping the message the user was
// looking at pinned in place:
//
//	scrollTop = capturedTop + (newHeight - capturedHeight)
func (a *Anchor) AfterPrepend(m Metrics) Plan {
	if a.captured == nil {
		return Plan{Kind: PlanNone}
	}
	top := a.captured.ScrollTop + (m.ScrollHeight - a.captured.ScrollHeight)
	a.captured = nil
	return Plan{Kind: PlanRestore, Top: top}
}

// OnAppend sticks to the bottom only when the viewer was already near it;
// a user reading history is never interrupted.
func (a *Anchor) OnAppend() Plan {
	if a.nearBottom {
		return Plan{Kind: PlanForceBottom}
	}
	return Plan{Kind: PlanNone}
}
