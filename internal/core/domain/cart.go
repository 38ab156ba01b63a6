package domain

// CartEntry is a menu item placed in a user's shopping cart. Email is the
// owner key; every read and delete must be scoped to it. The item fields are
// copied loosely from the menu, with no referential check against MenuItem.
type CartEntry struct {
	ID         string  `json:"id" bson:"_id,omitempty"`
	Email      string  `json:"email" bson:"email"`
	MenuItemID string  `json:"menuItemId,omitempty" bson:"menu_item_id,omitempty"`
	Name       string  `json:"name" bson:"name"`
	Image      string  `json:"image,omitempty" bson:"image,omitempty"`
	Price      float64 `json:"price" bson:"price"`
}
