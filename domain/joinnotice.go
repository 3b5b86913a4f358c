package domain

import (
	"fmt"
	"time"
)

// Join marker sentinels. The server emits the current form; rooms with
// old history still carry the legacy form, so both must be recognized.
const (
	JoinMarkerLegacy  = "__JOIN__"
	JoinMarkerCurrent = "::join::"
)

// JoinDedupWindow is how long an identical join notice is suppressed.
// Covers reconnect storms and double-invocation in development.
const JoinDedupWindow = 10 * time.Second

// IsJoinMarker reports whether content is one of the sentinel forms that
// request the standard join notice.
func IsJoinMarker(content string) bool {
	return content == JoinMarkerLegacy || content == JoinMarkerCurrent
}

// NormalizeJoinNotice collapses marker forms, free text and empty content
// into the single canonical human-readable notice.
func NormalizeJoinNotice(name string) string {
	return fmt.Sprintf("%s entered the room", name)
}

// JoinNoticeKey identifies a join event for deduplication purposes.
func JoinNoticeKey(at time.Time, sender string) string {
	return fmt.Sprintf("%d|%s|JOIN", at.UnixNano(), sender)
}

// JoinNoticeMemo is the single most-recent-suppression record used to
// collapse duplicate join events arriving within JoinDedupWindow.
type JoinNoticeMemo struct {
	Key    string
	SeenAt time.Time
}

// ShouldRender records the notice and reports whether it is new enough to
// render. An identical key seen within the window is discarded.
func (m *JoinNoticeMemo) ShouldRender(key string, now time.Time) bool {
	if m.Key == key && now.Sub(m.SeenAt) < JoinDedupWindow {
		return false
	}
	m.Key = key
	m.SeenAt = now
	return true
}
