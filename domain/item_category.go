package domain

// ItemCategory is one row of the item_category junction table.
type ItemCategory struct {
	ItemID     int64 `json:"item_id" db:"item_id"`
	CategoryID int64 `json:"category_id" db:"category_id"`
}
