// Package entities contains core business entities.
package entities

import "time"

// Group is a small organizational unit members may belong to.
type Group struct {
	ID   int64
	Name string
}

// Leadership links a leading member to their group with a start date.
type Leadership struct {
	LeaderID  int64
	GroupID   int64
	StartDate time.Time
}
