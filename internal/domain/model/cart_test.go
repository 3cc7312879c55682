package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

func breadSetup(t *testing.T) (*model.Inventory, *model.MenuItem) {
	t.Helper()
	inv := model.NewInventory()
	_, err := inv.Add("Flour", 2, 10, "kg")
	require.NoError(t, err)

	bread := model.NewMenuItem("Bread", 1, model.TypeDish)
	bread.AddRecipeLine("Flour", 2)
	return inv, bread
}

func TestCart_AddItem(t *testing.T) {
	inv, bread := breadSetup(t)
	cart := model.NewCart()

	cart.AddItem(bread, 3, inv)

	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, 15.0, cart.Total())
	assert.False(t, cart.Empty())
}

func TestCart_RemoveItem(t *testing.T) {
	inv, bread := breadSetup(t)
	cart := model.NewCart()
	cart.AddItem(bread, 3, inv)

	cart.RemoveItem("Bread", inv)

	assert.True(t, cart.Empty())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCart_ModifyLineIngredient(t *testing.T) {
	tests := []struct {
		name         string
		itemName     string
		ingredient   string
		newQuantity  float64
		expectedKind model.ErrorKind
	}{
		{
			name:        "valid override",
			itemName:    "Bread",
			ingredient:  "Flour",
			newQuantity: 4,
		},
		{
			name:         "item not in cart",
			itemName:     "Cake",
			ingredient:   "Flour",
			newQuantity:  4,
			expectedKind: model.ErrKindNotFound,
		},
		{
			name:         "removing the only ingredient",
			itemName:     "Bread",
			ingredient:   "Flour",
			newQuantity:  0,
			expectedKind: model.ErrKindLastIngredient,
		},
		{
			name:         "ingredient not in recipe",
			itemName:     "Bread",
			ingredient:   "Sugar",
			newQuantity:  1,
			expectedKind: model.ErrKindIngredientNotInRecipe,
		},
		{
			name:         "override above current stock",
			itemName:     "Bread",
			ingredient:   "Flour",
			newQuantity:  11,
			expectedKind: model.ErrKindInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, bread := breadSetup(t)
			cart := model.NewCart()
			cart.AddItem(bread, 1, inv)

			err := cart.ModifyLineIngredient(tt.itemName, tt.ingredient, tt.newQuantity, inv)

			if tt.expectedKind != "" {
				assert.True(t, model.IsKind(err, tt.expectedKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.newQuantity, cart.Lines()[0].Item.Recipe[0].Quantity)
			assert.Equal(t, 1+2*tt.newQuantity, cart.Total())
		})
	}
}

func TestCart_ModifyLineIngredient_DoesNotTouchMenuDefinition(t *testing.T) {
	inv, bread := breadSetup(t)
	cart := model.NewCart()
	cart.AddItem(bread, 1, inv)

	require.NoError(t, cart.ModifyLineIngredient("Bread", "Flour", 5, inv))

	// The shared menu item keeps its original recipe; only the cart line's
	// private copy is overridden.
	assert.Equal(t, 2.0, bread.Recipe[0].Quantity)
	assert.Equal(t, 5.0, cart.Lines()[0].Item.Recipe[0].Quantity)
}

func TestCart_Clear(t *testing.T) {
	inv, bread := breadSetup(t)
	cart := model.NewCart()
	cart.AddItem(bread, 3, inv)

	cart.Clear()

	assert.True(t, cart.Empty())
	assert.Equal(t, 0.0, cart.Total())
}
