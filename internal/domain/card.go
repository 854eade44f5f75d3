package domain

import "time"

type Card struct {
	ID   string
	Name string
	// Link is the URL of the picture the card points at.
	Link string
	// OwnerID is set at creation and never changes. Only the owner
	// may delete the card.
	OwnerID string
	// Likes is the set of user IDs that liked the card. Unordered,
	// no duplicates.
	Likes []string

	CreatedAt time.Time
}

// LikedBy reports whether userID is in the likes set.
func (c *Card) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
