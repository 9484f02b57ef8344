package catalog

import "deliciae/internal/cart"

type Restaurant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FoodItem is the Catalog Provider's representation of a dish.
type FoodItem struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	Restaurant Restaurant `json:"restaurant"`
	ImageURL   string     `json:"image_url"`
}

// Ref captures the display fields the cart keeps at add time. This is the
// one place catalog data crosses into the cart; after it the cart never
// looks back at the catalog.
func (f FoodItem) Ref() cart.ItemRef {
	return cart.ItemRef{
		ID:          f.ID,
		Name:        f.Name,
		UnitPrice:   f.Price,
		ImageRef:    f.ImageURL,
		SourceLabel: f.Restaurant.Name,
	}
}

// RestaurantListing is one discovery result. Opening hours come back as
// "HH:MM:SS" strings; distance is only present on nearby queries.
type RestaurantListing struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"image_url"`
	OpeningTime string  `json:"opening_time"`
	ClosingTime string  `json:"closing_time"`
	DistanceKM  float64 `json:"distance"`
}
