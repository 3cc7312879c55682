// Package model defines the core domain entities for the cafe service.
package model

// Ingredient is a stocked inventory item priced per unit.
type Ingredient struct {
	Name     string
	Price    float64
	Quantity float64
	Unit     string
}

// NewIngredient creates an ingredient, rejecting negative price or quantity.
func NewIngredient(name string, price, quantity float64, unit string) (*Ingredient, error) {
	ing := &Ingredient{Name: name, Unit: unit}
	if err := ing.SetPrice(price); err != nil {
		return nil, err
	}
	if err := ing.SetQuantity(quantity); err != nil {
		return nil, err
	}
	return ing, nil
}

// SetPrice updates the unit price.
func (i *Ingredient) SetPrice(price float64) error {
	if price < 0 {
		return NewDomainError(ErrKindValidation, "price cannot be negative")
	}
	i.Price = price
	return nil
}

// SetQuantity updates the stocked quantity.
func (i *Ingredient) SetQuantity(quantity float64) error {
	if quantity < 0 {
		return NewDomainError(ErrKindValidation, "quantity cannot be negative")
	}
	i.Quantity = quantity
	return nil
}

// Decrease removes amount from stock. It reports false when stock is short,
// leaving the quantity unchanged.
func (i *Ingredient) Decrease(amount float64) bool {
	if i.Quantity < amount {
		return false
	}
	i.Quantity -= amount
	return true
}

// Increase adds amount to stock.
func (i *Ingredient) Increase(amount float64) {
	i.Quantity += amount
}
