package models

import "time"

const (
	ButcherCollection = "butcheritem"
	GroceryCollection = "groceryitem"
)

// ButcherItem is a cut sold by weight. Price and availability use pointers
// so "field missing" and "zero value" validate independently: a free cut
// (price 0) is legal, an absent price is not.
type ButcherItem struct {
	Title       string    `json:"title" bson:"title" binding:"required"`
	Description *string   `json:"description" bson:"description"`
	PricePerKg  *float64  `json:"price_per_kg" bson:"price_per_kg" binding:"required,gte=0"`
	Available   *bool     `json:"available" bson:"available"`
	Image       *string   `json:"image" bson:"image"`
	CreatedAt   time.Time `json:"-" bson:"created_at"`
}

// GroceryItem is the same shape with a flat per-unit price.
type GroceryItem struct {
	Title       string    `json:"title" bson:"title" binding:"required"`
	Description *string   `json:"description" bson:"description"`
	Price       *float64  `json:"price" bson:"price" binding:"required,gte=0"`
	Available   *bool     `json:"available" bson:"available"`
	Image       *string   `json:"image" bson:"image"`
	CreatedAt   time.Time `json:"-" bson:"created_at"`
}

// ApplyDefaults fills omitted fields; availability defaults to true.
func (b *ButcherItem) ApplyDefaults() {
	if b.Available == nil {
		available := true
		b.Available = &available
	}
}

func (g *GroceryItem) ApplyDefaults() {
	if g.Available == nil {
		available := true
		g.Available = &available
	}
}
