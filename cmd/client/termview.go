package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gookit/color"

	"room-sync/domain"
	"room-sync/scroll"
)

// termView is the terminal rendition of the viewport and toast boundaries.
// A terminal has no scroll container, so metrics report an always-at-bottom
// viewport and positioning plans only show up in debug logs.
type termView struct {
	log      *slog.Logger
	rendered int
}

func newTermView(log *slog.Logger) *termView {
	return &termView{log: log}
}

func (v *termView) Metrics() scroll.Metrics {
	return scroll.Metrics{}
}

func (v *termView) Apply(plan scroll.Plan) {
	v.log.Debug("Scroll plan", "kind", int(plan.Kind), "top", plan.Top)
}

// Render prints only the messages appended since the previous render;
// prepended history is announced with a count instead of reprinting.
func (v *termView) Render(messages []domain.Message) {
	if len(messages) < v.rendered {
		v.rendered = 0
	}
	if prepended := len(messages) - v.rendered; v.rendered > 0 && prepended > 1 {
		color.Gray.Printf("--- %d older messages loaded ---\n", prepended)
		v.rendered = len(messages)
		return
	}
	for _, m := range messages[v.rendered:] {
		printMessage(m)
	}
	v.rendered = len(messages)
}

func (v *termView) Notify(message string) {
	color.Warn.Println(message)
}

func printMessage(m domain.Message) {
	stamp := m.CreatedAt.Format(time.TimeOnly)
	switch {
	case m.Kind == domain.KindSystemJoin:
		color.Gray.Printf("[%s] * %s\n", stamp, m.Content)
	case m.IsOwn && m.Origin == domain.OriginPending:
		color.Comment.Printf("[%s] %s: %s (sending...)\n", stamp, m.Nickname, m.Content)
	case m.IsOwn:
		color.Green.Printf("[%s] %s: %s\n", stamp, m.Nickname, m.Content)
	default:
		fmt.Printf("[%s] %s: %s\n", stamp, m.Nickname, m.Content)
	}
}
