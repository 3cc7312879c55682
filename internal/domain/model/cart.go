package model

import "strings"

// CartLine is a menu item held in a cart with an ordered quantity. Item is a
// private deep copy, so ingredient overrides stay local to this line.
type CartLine struct {
	Item     *MenuItem
	Quantity int
}

// Cart is a user's transient pre-checkout selection. The total is cached and
// eagerly recomputed after every mutation.
type Cart struct {
	lines []*CartLine
	total float64
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem appends a line holding a deep copy of the menu item and recomputes
// the total.
func (c *Cart) AddItem(item *MenuItem, quantity int, inv *Inventory) {
	c.lines = append(c.lines, &CartLine{Item: item.Clone(), Quantity: quantity})
	c.recalculate(inv)
}

// RemoveItem removes the first line whose item name matches and recomputes
// the total.
func (c *Cart) RemoveItem(itemName string, inv *Inventory) {
	for i, line := range c.lines {
		if line.Item.Name == itemName {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.recalculate(inv)
			return
		}
	}
}

// ModifyLineIngredient overrides the required quantity of one ingredient on
// the cart line holding itemName. Only the line's private recipe copy is
// mutated.
func (c *Cart) ModifyLineIngredient(itemName, ingredientName string, newQuantity float64, inv *Inventory) error {
	line := c.findLine(itemName)
	if line == nil {
		return NewDomainError(ErrKindNotFound, "item %q not found in cart", itemName)
	}
	if len(line.Item.Recipe) == 1 && newQuantity == 0 {
		return NewDomainError(ErrKindLastIngredient, "cannot remove the only ingredient from item")
	}

	var recipeLine *RecipeLine
	for i := range line.Item.Recipe {
		if strings.EqualFold(line.Item.Recipe[i].IngredientName, ingredientName) {
			recipeLine = &line.Item.Recipe[i]
			break
		}
	}
	if recipeLine == nil {
		return NewDomainError(ErrKindIngredientNotInRecipe, "ingredient %q not found in item", ingredientName)
	}

	ing, ok := inv.Find(ingredientName)
	if !ok {
		return NewDomainError(ErrKindNotFound, "ingredient %q not found", ingredientName)
	}
	if newQuantity > ing.Quantity {
		return NewDomainError(ErrKindInsufficientStock, "insufficient %s in stock", ing.Name)
	}

	recipeLine.Quantity = newQuantity
	c.recalculate(inv)
	return nil
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []*CartLine {
	return c.lines
}

// Total returns the cached cart total.
func (c *Cart) Total() float64 {
	return c.total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear removes all lines and resets the total.
func (c *Cart) Clear() {
	c.lines = nil
	c.total = 0
}

func (c *Cart) findLine(itemName string) *CartLine {
	for _, line := range c.lines {
		if line.Item.Name == itemName {
			return line
		}
	}
	return nil
}

func (c *Cart) recalculate(inv *Inventory) {
	c.total = 0
	for _, line := range c.lines {
		c.total += line.Item.CalculatePrice(inv) * float64(line.Quantity)
	}
}
