package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

func TestProcessOrder_Success(t *testing.T) {
	cafe, user, _ := seedBreadCafe(t)

	bread, ok := cafe.FindMenuItem("Bread")
	require.True(t, ok)
	user.Cart.AddItem(bread, 3, cafe.Inventory())
	require.Equal(t, 15.0, user.Cart.Total())

	budgetBefore := cafe.Budget()
	order, err := cafe.ProcessOrder(user)
	require.NoError(t, err)

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, "alice", order.Username)
	assert.Equal(t, 15.0, order.Total)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "Bread", order.Lines[0].ItemName)
	assert.Equal(t, 3, order.Lines[0].Quantity)
	assert.Equal(t, 5.0, order.Lines[0].UnitPrice)
	assert.Equal(t, []model.ConsumedIngredient{{Name: "Flour", Quantity: 6}}, order.Lines[0].Consumed)
	assert.WithinDuration(t, time.Now(), order.PlacedAt, time.Minute)

	flour, ok := cafe.FindIngredient("Flour")
	require.True(t, ok)
	assert.Equal(t, 4.0, flour.Quantity)

	assert.Equal(t, budgetBefore+15, cafe.Budget())
	assert.True(t, user.Cart.Empty())
	require.Len(t, user.Orders, 1)
	assert.Equal(t, order, user.Orders[0])
}

func TestProcessOrder_InsufficientStock(t *testing.T) {
	cafe, user, _ := seedBreadCafe(t)

	bread, ok := cafe.FindMenuItem("Bread")
	require.True(t, ok)
	// 10 loaves need 20 kg of flour; only 10 in stock.
	user.Cart.AddItem(bread, 10, cafe.Inventory())

	budgetBefore := cafe.Budget()
	order, err := cafe.ProcessOrder(user)

	assert.Nil(t, order)
	assert.True(t, model.IsKind(err, model.ErrKindInsufficientStock))

	flour, ok := cafe.FindIngredient("Flour")
	require.True(t, ok)
	assert.Equal(t, 10.0, flour.Quantity)
	assert.Equal(t, budgetBefore, cafe.Budget())
	assert.False(t, user.Cart.Empty())
	assert.Empty(t, user.Orders)

	sales, err := cafe.DailySales()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestProcessOrder_AggregatesDemandAcrossLines(t *testing.T) {
	cafe, user, _ := seedBreadCafe(t)

	_, err := cafe.AddMenuItem("Roll", 0.5, model.TypeDish)
	require.NoError(t, err)
	require.NoError(t, cafe.AddRecipeLine("Roll", "Flour", 3))

	bread, ok := cafe.FindMenuItem("Bread")
	require.True(t, ok)
	roll, ok := cafe.FindMenuItem("Roll")
	require.True(t, ok)

	// Each line alone fits within 10 kg of flour, but together they
	// need 3*2 + 2*3 = 12 kg.
	user.Cart.AddItem(bread, 3, cafe.Inventory())
	user.Cart.AddItem(roll, 2, cafe.Inventory())

	order, err := cafe.ProcessOrder(user)
	assert.Nil(t, order)
	assert.True(t, model.IsKind(err, model.ErrKindInsufficientStock))

	flour, ok := cafe.FindIngredient("Flour")
	require.True(t, ok)
	assert.Equal(t, 10.0, flour.Quantity)
}

func TestProcessOrder_EmptyCart(t *testing.T) {
	cafe, user, _ := seedBreadCafe(t)

	order, err := cafe.ProcessOrder(user)
	assert.Nil(t, order)
	assert.True(t, model.IsKind(err, model.ErrKindEmptyCart))
}

func TestProcessOrder_CartLineOverrideAffectsOrder(t *testing.T) {
	cafe, user, _ := seedBreadCafe(t)

	bread, ok := cafe.FindMenuItem("Bread")
	require.True(t, ok)
	user.Cart.AddItem(bread, 3, cafe.Inventory())
	require.NoError(t, user.Cart.ModifyLineIngredient("Bread", "Flour", 1, cafe.Inventory()))
	require.Equal(t, 9.0, user.Cart.Total())

	order, err := cafe.ProcessOrder(user)
	require.NoError(t, err)

	assert.Equal(t, 9.0, order.Total)
	assert.Equal(t, []model.ConsumedIngredient{{Name: "Flour", Quantity: 3}}, order.Lines[0].Consumed)

	flour, ok := cafe.FindIngredient("Flour")
	require.True(t, ok)
	assert.Equal(t, 7.0, flour.Quantity)

	// The menu definition keeps its original recipe.
	assert.Equal(t, []model.RecipeLine{{IngredientName: "Flour", Quantity: 2}}, bread.Recipe)
}

func TestProcessOrder_SequentialIDs(t *testing.T) {
	cafe, user, _ := seedBreadCafe(t)

	bread, ok := cafe.FindMenuItem("Bread")
	require.True(t, ok)

	user.Cart.AddItem(bread, 1, cafe.Inventory())
	first, err := cafe.ProcessOrder(user)
	require.NoError(t, err)

	user.Cart.AddItem(bread, 1, cafe.Inventory())
	second, err := cafe.ProcessOrder(user)
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Len(t, user.Orders, 2)
}

func TestDailyAndWeeklySales(t *testing.T) {
	cafe, user, _ := seedBreadCafe(t)

	bread, ok := cafe.FindMenuItem("Bread")
	require.True(t, ok)

	user.Cart.AddItem(bread, 2, cafe.Inventory())
	_, err := cafe.ProcessOrder(user)
	require.NoError(t, err)

	user.Cart.AddItem(bread, 1, cafe.Inventory())
	_, err = cafe.ProcessOrder(user)
	require.NoError(t, err)

	daily, err := cafe.DailySales()
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, time.Now().Format(model.DateLayout), daily[0].Date)
	assert.Equal(t, 15.0, daily[0].Amount)

	weekly, err := cafe.WeeklySales()
	require.NoError(t, err)
	require.Len(t, weekly, 1)
	assert.Equal(t, 15.0, weekly[0].Amount)
}
