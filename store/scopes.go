package store

import "gorm.io/gorm"

// OwnedBy restricts a query to rows owned by userID.
func OwnedBy(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// VisibleTo restricts a query to rows owned by userID plus the shared
// default rows. Rows of other users never match, so a lookup for them
// reports not found.
func VisibleTo(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(user_id = ? OR is_default = ?)", userID, true)
	}
}
