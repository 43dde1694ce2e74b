// Package db provides SQLite storage for the console activity log.
package db

import "time"

// Activity kinds.
const (
	KindSignIn  = "sign-in"
	KindSignOut = "sign-out"
	KindAction  = "action"
)

// Activity is one recorded console event.
type Activity struct {
	ID        string
	SessionID string
	Username  string
	Kind      string
	Action    string
	FromState string
	ToState   string
	Applied   bool
	Detail    string
	CreatedAt time.Time
}
