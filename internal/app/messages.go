package app

import "github.com/jwulff/corehub/internal/db"

// ActivityRecordedMsg is sent after an activity row write finishes.
type ActivityRecordedMsg struct {
	Err error
}

// ActivityLoadedMsg carries the recent activity for the account page.
type ActivityLoadedMsg struct {
	SessionID string
	Entries   []db.Activity
	Err       error
}

// ClearNoticeMsg clears a transient notice after a timeout. Seq ties it to
// the notice it was scheduled for so a newer notice is not cut short.
type ClearNoticeMsg struct {
	Seq int
}
