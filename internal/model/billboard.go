package model

import "time"

// Billboard represents a posted classified item (topic + description) owned
// by a user.
//
// Both topic and description are unique across the whole table — two sellers
// cannot post the same topic, and two posts cannot share a description.
// UserID references the owning User; deleting that user cascades and removes
// all of their billboards at the store level.
//
// There is no update path: a billboard is created, read, and deleted. ID and
// CreationTime are assigned by the repository at insert time and never change.
type Billboard struct {
	ID           int64     `json:"id"            db:"id"`
	Topic        string    `json:"topic"         db:"topic"`       // unique
	Description  string    `json:"description"   db:"description"` // unique
	UserID       int64     `json:"user_id"       db:"user_id"`     // FK → users.id, cascade on delete
	CreationTime time.Time `json:"creation_time" db:"creation_time"`
}
