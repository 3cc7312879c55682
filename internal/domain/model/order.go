package model

import "time"

const (
	// TimestampLayout is the persisted order timestamp format.
	TimestampLayout = "2006-01-02 15:04"
	// DateLayout is the persisted statistics date format.
	DateLayout = "2006-01-02"
)

// ConsumedIngredient records the total inventory quantity an order line
// consumed of one ingredient.
type ConsumedIngredient struct {
	Name     string
	Quantity float64
}

// OrderLine is one purchased menu item within an order, with the unit price
// at time of sale and the ingredient consumption snapshot.
type OrderLine struct {
	ItemName  string
	Quantity  int
	UnitPrice float64
	Consumed  []ConsumedIngredient
}

// Order is the immutable record of a completed purchase.
type Order struct {
	ID       int
	Username string
	PlacedAt time.Time
	Lines    []OrderLine
	Total    float64
}
