package models

// WishlistEntry links a user (by username) to a liked product.
// The composite unique index makes duplicate adds a no-op.
type WishlistEntry struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserEmail string `json:"user_email" gorm:"type:varchar(255);not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uint   `json:"product_id" gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
}

func (WishlistEntry) TableName() string { return "wishlist" }
