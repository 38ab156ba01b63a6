package domain

// MenuItem is a dish on the menu. The collection is read-only in this API;
// its lifecycle is owned by an out-of-band data-entry process.
type MenuItem struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	Name     string  `json:"name" bson:"name"`
	Recipe   string  `json:"recipe,omitempty" bson:"recipe,omitempty"`
	Image    string  `json:"image,omitempty" bson:"image,omitempty"`
	Category string  `json:"category,omitempty" bson:"category,omitempty"`
	Price    float64 `json:"price" bson:"price"`
}

// Review is a customer testimonial. Read-only, same as MenuItem.
type Review struct {
	ID      string  `json:"id" bson:"_id,omitempty"`
	Name    string  `json:"name" bson:"name"`
	Details string  `json:"details,omitempty" bson:"details,omitempty"`
	Rating  float64 `json:"rating" bson:"rating"`
}
