// Package guard holds the ownership predicates consulted before any read or
// mutation of a list or item. Callers report a false answer the same way as
// a missing record, so another user's resources are indistinguishable from
// nonexistent ones.
package guard

import "github.com/dmitrijs2005/bucketlist/internal/server/models"

// CanAccessList reports whether userID owns the list.
func CanAccessList(userID int64, list *models.List) bool {
	if list == nil {
		return false
	}
	return list.OwnerID == userID
}

// CanAccessItem reports whether userID may touch the item through its parent
// list. Item ownership is transitive: it holds only if the user owns the
// parent and the item actually belongs to it.
func CanAccessItem(userID int64, item *models.Item, parent *models.List) bool {
	if item == nil {
		return false
	}
	return CanAccessList(userID, parent) && item.ListID == parent.ID
}
