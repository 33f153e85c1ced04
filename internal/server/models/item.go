package models

import "time"

// Done states kept as the literal strings the original API exposed.
// Anything else supplied by a client is stored as DoneFalse.
const (
	DoneTrue  = "True"
	DoneFalse = "False"
)

// Item belongs to a List and inherits its ownership; there is no owner
// field on the item itself.
type Item struct {
	ID        int64
	ListID    int64
	Name      string
	Done      string
	CreatedAt time.Time
}
