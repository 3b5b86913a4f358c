package scroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnchor_OpenForcesBottomExactlyOnce(t *testing.T) {
	req := require.New(t)
	anchor := NewAnchor()

	req.Equal(PlanForceBottom, anchor.OnOpen().Kind)
	req.Equal(PlanNone, anchor.OnOpen().Kind)
}

func TestAnchor_PrependPreservesPosition(t *testing.T) {
	req := require.New(t)
	anchor := NewAnchor()

	before := Metrics{ScrollTop: 300, ScrollHeight: 2000, ViewportHeight: 600}
	anchor.BeforePrepend(before)

	// Twenty older messages reflowed above the viewport.
	after := Metrics{ScrollTop: 300, ScrollHeight: 2800, ViewportHeight: 600}
	plan := anchor.AfterPrepend(after)

	req.Equal(PlanRestore, plan.Kind)
	// scrollTop_after - scrollTop_before == scrollHeight_after - scrollHeight_before
	req.InDelta(after.ScrollHeight-before.ScrollHeight, plan.Top-before.ScrollTop, 1e-9)
}

func TestAnchor_AfterPrependWithoutCaptureIsNoop(t *testing.T) {
	req := require.New(t)
	anchor := NewAnchor()

	plan := anchor.AfterPrepend(Metrics{ScrollTop: 10, ScrollHeight: 100, ViewportHeight: 50})
	req.Equal(PlanNone, plan.Kind)
}

func TestAnchor_AppendSticksOnlyNearBottom(t *testing.T) {
	req := require.New(t)
	anchor := NewAnchor()

	// 80px from the bottom: inside the threshold.
	anchor.Observe(Metrics{ScrollTop: 1240, ScrollHeight: 1920, ViewportHeight: 600})
	req.Equal(PlanForceBottom, anchor.OnAppend().Kind)

	// Reading history far above the bottom: untouched.
	anchor.Observe(Metrics{ScrollTop: 200, ScrollHeight: 1920, ViewportHeight: 600})
	req.Equal(PlanNone, anchor.OnAppend().Kind)
}

func TestAnchor_ObserveKeepsFlagCurrent(t *testing.T) {
	req := require.New(t)
	anchor := NewAnchor()

	anchor.Observe(Metrics{ScrollTop: 0, ScrollHeight: 1920, ViewportHeight: 600})
	req.Equal(PlanNone, anchor.OnAppend().Kind)

	// Scrolled back down.
	anchor.Observe(Metrics{ScrollTop: 1320, ScrollHeight: 1920, ViewportHeight: 600})
	req.Equal(PlanForceBottom, anchor.OnAppend().Kind)
}
