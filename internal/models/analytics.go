package models

import "time"

// LabelCount is one row of a GROUP BY aggregate.
type LabelCount struct {
	Label *string
	Count int64
}

// RecentWishlist is a wishlist row joined with its product title.
type RecentWishlist struct {
	UserEmail string
	Title     *string
}

// UserSummary is the admin listing view of a user.
type UserSummary struct {
	ID        uint
	Name      *string
	Username  string
	Gender    *string
	Age       *int
	SkinTone  *string
	CreatedAt time.Time
}
