package fsutils

import "time"

// UnknownModTime is shown when modification time can not be read.
const UnknownModTime = "Unknown"

// FormatModTime renders t relative to now: "Today at 15:04",
// "Yesterday at 15:04" or "02/01/2006 at 15:04".
func FormatModTime(t, now time.Time) string {
	if t.IsZero() {
		return UnknownModTime
	}
	t = t.Local()
	now = now.Local()
	clock := t.Format("15:04")
	switch {
	case sameDay(t, now):
		return "Today at " + clock
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday at " + clock
	default:
		return t.Format("02/01/2006") + " at " + clock
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
