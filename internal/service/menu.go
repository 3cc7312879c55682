package service

import (
	"github.com/azurecafe/cafe-service/internal/domain/model"
)

// AddMenuItem creates a new dish or drink with an empty recipe. Menu item
// names are unique case-sensitively.
func (c *Cafe) AddMenuItem(name string, basePrice float64, itemType model.ItemType) (*model.MenuItem, error) {
	if _, ok := c.FindMenuItem(name); ok {
		return nil, model.NewDomainError(model.ErrKindDuplicate, "menu item %q already exists", name)
	}

	item := model.NewMenuItem(name, basePrice, itemType)
	c.menu = append(c.menu, item)
	if err := c.repos.Menu.Save(c.menu); err != nil {
		return nil, err
	}

	c.log.Info().Str("item", name).Str("type", string(itemType)).Msg("Menu item added")
	return item, nil
}

// RemoveMenuItem deletes the named menu item.
func (c *Cafe) RemoveMenuItem(name string) error {
	for i, item := range c.menu {
		if item.Name == name {
			c.menu = append(c.menu[:i], c.menu[i+1:]...)
			if err := c.repos.Menu.Save(c.menu); err != nil {
				return err
			}
			c.log.Info().Str("item", name).Msg("Menu item removed")
			return nil
		}
	}
	return model.NewDomainError(model.ErrKindNotFound, "menu item %q not found", name)
}

// FindMenuItem returns the named menu item, matching case-sensitively.
func (c *Cafe) FindMenuItem(name string) (*model.MenuItem, bool) {
	for _, item := range c.menu {
		if item.Name == name {
			return item, true
		}
	}
	return nil, false
}

// Menu returns the menu items in insertion order.
func (c *Cafe) Menu() []*model.MenuItem {
	return c.menu
}

// AddRecipeLine appends an ingredient requirement to a menu item's recipe.
// The ingredient must exist in the inventory.
func (c *Cafe) AddRecipeLine(itemName, ingredientName string, quantity float64) error {
	item, ok := c.FindMenuItem(itemName)
	if !ok {
		return model.NewDomainError(model.ErrKindNotFound, "menu item %q not found", itemName)
	}
	ing, ok := c.inventory.Find(ingredientName)
	if !ok {
		return model.NewDomainError(model.ErrKindNotFound, "ingredient %q not found", ingredientName)
	}

	item.AddRecipeLine(ing.Name, quantity)
	return c.repos.Menu.Save(c.menu)
}

// UpdateRecipeQuantity overwrites the required quantity of an ingredient in
// a menu item's recipe.
func (c *Cafe) UpdateRecipeQuantity(itemName, ingredientName string, newQuantity float64) error {
	item, ok := c.FindMenuItem(itemName)
	if !ok {
		return model.NewDomainError(model.ErrKindNotFound, "menu item %q not found", itemName)
	}
	if !item.UpdateRecipeQuantity(ingredientName, newQuantity) {
		return model.NewDomainError(model.ErrKindIngredientNotInRecipe,
			"ingredient %q not found in menu item %q", ingredientName, itemName)
	}
	return c.repos.Menu.Save(c.menu)
}

// SetBasePrice overwrites a menu item's base price.
func (c *Cafe) SetBasePrice(itemName string, basePrice float64) error {
	item, ok := c.FindMenuItem(itemName)
	if !ok {
		return model.NewDomainError(model.ErrKindNotFound, "menu item %q not found", itemName)
	}
	item.BasePrice = basePrice
	return c.repos.Menu.Save(c.menu)
}
