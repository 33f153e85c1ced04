package models

import "time"

// List is a user-owned named collection of items. OwnerID never changes
// after creation.
type List struct {
	ID        int64
	Name      string
	OwnerID   int64
	CreatedAt time.Time
	Items     []*Item
}
