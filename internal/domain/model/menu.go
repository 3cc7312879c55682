package model

import "strings"

// ItemType tags a menu item as a dish or a drink. The tag is descriptive
// only; pricing does not depend on it.
type ItemType string

const (
	// TypeDish is a food menu item.
	TypeDish ItemType = "Dish"
	// TypeDrink is a beverage menu item.
	TypeDrink ItemType = "Drink"
)

// ParseItemType maps a persisted type label to an ItemType. Unknown labels
// default to Dish, matching the loader of the persisted menu file.
func ParseItemType(s string) ItemType {
	if s == string(TypeDrink) {
		return TypeDrink
	}
	return TypeDish
}

// RecipeLine links a menu item to an inventory ingredient by name. The name
// is a stable identifier resolved through the inventory at read time, never
// a live reference.
type RecipeLine struct {
	IngredientName string
	Quantity       float64
}

// MenuItem is a sellable dish or drink built from recipe lines.
// Item names are unique case-sensitively within the menu.
type MenuItem struct {
	Name      string
	BasePrice float64
	Type      ItemType
	Recipe    []RecipeLine
}

// NewMenuItem creates a menu item with an empty recipe.
func NewMenuItem(name string, basePrice float64, itemType ItemType) *MenuItem {
	return &MenuItem{Name: name, BasePrice: basePrice, Type: itemType}
}

// CalculatePrice returns basePrice plus the live cost of all recipe lines,
// evaluated against current ingredient prices. Lines whose ingredient no
// longer resolves contribute nothing.
func (m *MenuItem) CalculatePrice(inv *Inventory) float64 {
	total := m.BasePrice
	for _, line := range m.Recipe {
		if ing, ok := inv.Find(line.IngredientName); ok {
			total += ing.Price * line.Quantity
		}
	}
	return total
}

// AddRecipeLine appends an ingredient requirement. Duplicate lines are not
// rejected; that is the caller's responsibility.
func (m *MenuItem) AddRecipeLine(ingredientName string, quantity float64) {
	m.Recipe = append(m.Recipe, RecipeLine{IngredientName: ingredientName, Quantity: quantity})
}

// UpdateRecipeQuantity overwrites the quantity of the first recipe line
// matching the ingredient name case-insensitively. It reports whether a
// match was found.
func (m *MenuItem) UpdateRecipeQuantity(ingredientName string, newQuantity float64) bool {
	for i := range m.Recipe {
		if strings.EqualFold(m.Recipe[i].IngredientName, ingredientName) {
			m.Recipe[i].Quantity = newQuantity
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the item. Carts clone items on add so that
// per-line recipe overrides never touch the shared menu definition.
func (m *MenuItem) Clone() *MenuItem {
	clone := &MenuItem{
		Name:      m.Name,
		BasePrice: m.BasePrice,
		Type:      m.Type,
		Recipe:    make([]RecipeLine, len(m.Recipe)),
	}
	copy(clone.Recipe, m.Recipe)
	return clone
}
