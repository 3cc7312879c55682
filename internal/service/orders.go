package service

import (
	"strings"
	"time"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

// ProcessOrder checks out the user's cart.
//
// A read-only validation pass aggregates the ingredient demand across all
// cart lines and verifies it against current stock; any shortfall aborts
// with no mutation at all. The commit then happens atomically in memory:
// stock decrements, the order record, the budget revenue, the user history
// append and the cart clear are all applied together. Persistence runs last;
// a storage fault surfaces as a persistence error rather than being
// swallowed.
func (c *Cafe) ProcessOrder(user *model.User) (*model.Order, error) {
	cart := user.Cart
	if cart.Empty() {
		return nil, model.NewDomainError(model.ErrKindEmptyCart, "cart is empty")
	}

	// Validation pass. Demand is accumulated per ingredient so that two cart
	// lines sharing one ingredient cannot pass individually and jointly
	// overdraw the stock.
	remaining := make(map[string]float64)
	for _, line := range cart.Lines() {
		for _, recipeLine := range line.Item.Recipe {
			key := strings.ToLower(recipeLine.IngredientName)
			ing, ok := c.inventory.Find(recipeLine.IngredientName)
			if !ok {
				return nil, model.NewDomainError(model.ErrKindNotFound,
					"ingredient %q not found", recipeLine.IngredientName)
			}
			if _, seen := remaining[key]; !seen {
				remaining[key] = ing.Quantity
			}
			need := recipeLine.Quantity * float64(line.Quantity)
			if remaining[key] < need {
				return nil, model.NewDomainError(model.ErrKindInsufficientStock,
					"not enough %s in stock", ing.Name)
			}
			remaining[key] -= need
		}
	}

	// Commit pass, atomic in memory.
	order := &model.Order{
		ID:       c.nextOrderID,
		Username: user.Username,
		PlacedAt: time.Now(),
	}
	for _, line := range cart.Lines() {
		unitPrice := line.Item.CalculatePrice(c.inventory)
		orderLine := model.OrderLine{
			ItemName:  line.Item.Name,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
		}
		for _, recipeLine := range line.Item.Recipe {
			// The validation pass resolved every ingredient and reserved the
			// full demand, so the lookup and the decrement cannot fail here.
			ing, _ := c.inventory.Find(recipeLine.IngredientName)
			consumed := recipeLine.Quantity * float64(line.Quantity)
			ing.Decrease(consumed)
			orderLine.Consumed = append(orderLine.Consumed, model.ConsumedIngredient{
				Name:     ing.Name,
				Quantity: consumed,
			})
		}
		order.Lines = append(order.Lines, orderLine)
		order.Total += unitPrice * float64(line.Quantity)
	}
	c.nextOrderID++
	c.budget += order.Total
	user.AddOrder(order)
	cart.Clear()

	c.log.Info().
		Int("order_id", order.ID).
		Str("username", order.Username).
		Float64("total", order.Total).
		Msg("Order processed")

	if err := c.persistOrder(order); err != nil {
		return order, err
	}
	return order, nil
}

func (c *Cafe) persistOrder(order *model.Order) error {
	if err := c.repos.Orders.Append(order); err != nil {
		return err
	}
	sale := model.DailySale{
		Date:   order.PlacedAt.Format(model.DateLayout),
		Amount: order.Total,
	}
	if err := c.repos.Stats.Append(sale); err != nil {
		return err
	}
	if err := c.repos.Inventory.Save(c.inventory.Items()); err != nil {
		return err
	}
	return c.repos.Budget.Save(c.budget)
}
