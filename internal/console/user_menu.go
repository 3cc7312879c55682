package console

import (
	"github.com/azurecafe/cafe-service/internal/domain/model"
	"github.com/azurecafe/cafe-service/internal/service"
)

func (c *Console) userMenu(user *model.User, session *service.Session) {
	for !c.eof {
		c.printf("\n=== Welcome, %s! ===\n", user.Username)
		c.printf("1. View Menu\n2. Place Order\n3. View Cart\n4. Modify Cart Item\n5. Remove Cart Item\n6. View Order History\n0. Logout\n")
		switch c.readChoice() {
		case 1:
			c.printf("\n=== Menu ===\n")
			for _, item := range c.cafe.Menu() {
				c.printMenuItem(item, true)
			}
		case 2:
			c.addToCart(user)
		case 3:
			c.viewCart(user, session)
		case 4:
			c.modifyCartItem(user)
		case 5:
			c.removeCartItem(user)
		case 6:
			c.orderHistory(user)
		case 0:
			c.printf("Logging out...\n")
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *Console) addToCart(user *model.User) {
	itemName := c.readLine("Enter item name: ")
	quantity := c.readInt("Enter quantity: ")

	item, ok := c.cafe.FindMenuItem(itemName)
	if !ok {
		c.printf("Error: menu item %q not found\n", itemName)
		return
	}
	if quantity <= 0 {
		c.printf("Error: quantity must be positive\n")
		return
	}

	user.Cart.AddItem(item, quantity, c.cafe.Inventory())
	c.printf("Item added to cart!\n")
}

func (c *Console) viewCart(user *model.User, session *service.Session) {
	cart := user.Cart
	inv := c.cafe.Inventory()

	c.printf("\n=== Your Cart ===\n")
	for _, line := range cart.Lines() {
		c.printf("%s x%d\n", line.Item.Name, line.Quantity)
		c.printf("Ingredients:\n")
		for _, recipeLine := range line.Item.Recipe {
			unit := ""
			if ing, ok := inv.Find(recipeLine.IngredientName); ok {
				unit = ing.Unit
			}
			c.printf("- %s: %v %s\n", recipeLine.IngredientName, recipeLine.Quantity, unit)
		}
		c.printf("Price: $%v\n", line.Item.CalculatePrice(inv)*float64(line.Quantity))
	}
	c.printf("Total: $%v\n", cart.Total())

	if cart.Empty() || !c.readYesNo("\nProceed to checkout? (y/n): ") {
		return
	}
	if !c.sessionValid(session) {
		return
	}

	order, err := c.cafe.ProcessOrder(user)
	if err != nil {
		c.printErr(err)
		return
	}
	c.printf("Order placed successfully!\nTotal amount: $%v\n", order.Total)

	if c.receipts.Enabled() {
		path, err := c.receipts.Generate(order)
		if err != nil {
			c.printErr(err)
			return
		}
		c.printf("Receipt saved to %s\n", path)
	}
}

func (c *Console) modifyCartItem(user *model.User) {
	if user.Cart.Empty() {
		c.printf("Cart is empty!\n")
		return
	}

	itemName := c.readLine("Enter item name to modify: ")
	ingName := c.readLine("Enter ingredient name to modify: ")
	quantity := c.readFloat("Enter new quantity: ")

	if err := user.Cart.ModifyLineIngredient(itemName, ingName, quantity, c.cafe.Inventory()); err != nil {
		c.printErr(err)
		return
	}
	c.printf("Item modified successfully!\n")
}

func (c *Console) removeCartItem(user *model.User) {
	if user.Cart.Empty() {
		c.printf("Cart is empty!\n")
		return
	}

	itemName := c.readLine("Enter item name to remove: ")
	user.Cart.RemoveItem(itemName, c.cafe.Inventory())
	c.printf("Item removed from cart!\n")
}

func (c *Console) orderHistory(user *model.User) {
	c.printf("\n=== Order History ===\n")
	for _, order := range user.Orders {
		c.printf("\nOrder #%d - Total: $%v\n", order.ID, order.Total)
		for _, line := range order.Lines {
			c.printf("\n%s x%d\n", line.ItemName, line.Quantity)
			c.printf("Used ingredients:\n")
			for _, consumed := range line.Consumed {
				c.printf("- %s: %v\n", consumed.Name, consumed.Quantity)
			}
		}
	}
}
