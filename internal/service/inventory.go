package service

import (
	"strings"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

// AddIngredient purchases a new ingredient into the inventory. The purchase
// cost (price times quantity) is deducted from the budget; an unaffordable
// purchase is rejected before any state changes.
func (c *Cafe) AddIngredient(name string, price, quantity float64, unit string) (*model.Ingredient, error) {
	if _, ok := c.inventory.Find(name); ok {
		return nil, model.NewDomainError(model.ErrKindDuplicate, "ingredient %q already exists", name)
	}

	cost := price * quantity
	if c.budget < cost {
		return nil, model.NewDomainError(model.ErrKindBudgetExceeded, "insufficient funds to purchase %s", name)
	}

	ing, err := c.inventory.Add(name, price, quantity, unit)
	if err != nil {
		return nil, err
	}
	if err := c.UpdateBudget(-cost); err != nil {
		return nil, err
	}
	if err := c.repos.Inventory.Save(c.inventory.Items()); err != nil {
		return nil, err
	}

	c.log.Info().Str("ingredient", ing.Name).Float64("cost", cost).Msg("Ingredient added")
	return ing, nil
}

// RemoveIngredient deletes an ingredient. Removal is rejected while any menu
// recipe still references the ingredient, so recipes never dangle.
func (c *Cafe) RemoveIngredient(name string) error {
	for _, item := range c.menu {
		for _, line := range item.Recipe {
			if strings.EqualFold(line.IngredientName, name) {
				return model.NewDomainError(model.ErrKindValidation,
					"ingredient %q is used by menu item %q", name, item.Name)
			}
		}
	}

	if err := c.inventory.Remove(name); err != nil {
		return err
	}
	if err := c.repos.Inventory.Save(c.inventory.Items()); err != nil {
		return err
	}

	c.log.Info().Str("ingredient", name).Msg("Ingredient removed")
	return nil
}

// UpdateIngredient overwrites quantity and price of the named ingredient and
// persists the inventory.
func (c *Cafe) UpdateIngredient(name string, newQuantity, newPrice float64) error {
	if err := c.inventory.Update(name, newQuantity, newPrice); err != nil {
		return err
	}
	if err := c.repos.Inventory.Save(c.inventory.Items()); err != nil {
		return err
	}

	c.log.Info().Str("ingredient", name).Msg("Ingredient updated")
	return nil
}

// FindIngredient returns the named ingredient, matching case-insensitively.
func (c *Cafe) FindIngredient(name string) (*model.Ingredient, bool) {
	return c.inventory.Find(name)
}

// Ingredients returns the current inventory contents.
func (c *Cafe) Ingredients() []*model.Ingredient {
	return c.inventory.Items()
}

// Inventory exposes the owned inventory for read-time recipe resolution.
func (c *Cafe) Inventory() *model.Inventory {
	return c.inventory
}
