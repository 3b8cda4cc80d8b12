package models

import "time"

// Item is a to-do entry. AuthorizedUsers is the set of user IDs for which the
// item is listable; it always contains the creator and only grows via
// idempotent set-adds.
type Item struct {
	ID              string
	Text            string
	CreatedAt       time.Time
	AuthorizedUsers []string
}

// HasUser reports whether userID is in the item's authorized set.
func (i *Item) HasUser(userID string) bool {
	for _, u := range i.AuthorizedUsers {
		if u == userID {
			return true
		}
	}
	return false
}
