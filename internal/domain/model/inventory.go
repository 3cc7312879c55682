package model

import "strings"

// Inventory owns the collection of stocked ingredients. Ingredient names are
// unique case-insensitively.
type Inventory struct {
	ingredients []*Ingredient
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add creates and stores a new ingredient.
func (inv *Inventory) Add(name string, price, quantity float64, unit string) (*Ingredient, error) {
	if _, ok := inv.Find(name); ok {
		return nil, NewDomainError(ErrKindDuplicate, "ingredient %q already exists", name)
	}
	ing, err := NewIngredient(name, price, quantity, unit)
	if err != nil {
		return nil, err
	}
	inv.ingredients = append(inv.ingredients, ing)
	return ing, nil
}

// Remove deletes the named ingredient.
func (inv *Inventory) Remove(name string) error {
	for i, ing := range inv.ingredients {
		if strings.EqualFold(ing.Name, name) {
			inv.ingredients = append(inv.ingredients[:i], inv.ingredients[i+1:]...)
			return nil
		}
	}
	return NewDomainError(ErrKindNotFound, "ingredient %q not found", name)
}

// Find returns the named ingredient, matching case-insensitively.
func (inv *Inventory) Find(name string) (*Ingredient, bool) {
	for _, ing := range inv.ingredients {
		if strings.EqualFold(ing.Name, name) {
			return ing, true
		}
	}
	return nil, false
}

// Update overwrites quantity and price of the named ingredient.
func (inv *Inventory) Update(name string, newQuantity, newPrice float64) error {
	ing, ok := inv.Find(name)
	if !ok {
		return NewDomainError(ErrKindNotFound, "ingredient %q not found", name)
	}
	if err := ing.SetQuantity(newQuantity); err != nil {
		return err
	}
	return ing.SetPrice(newPrice)
}

// Items returns the ingredients in insertion order.
func (inv *Inventory) Items() []*Ingredient {
	return inv.ingredients
}

// Replace swaps the full ingredient set, used when loading persisted state.
func (inv *Inventory) Replace(ingredients []*Ingredient) {
	inv.ingredients = ingredients
}
