package console

import (
	"github.com/azurecafe/cafe-service/internal/domain/model"
	"github.com/azurecafe/cafe-service/internal/service"
)

func (c *Console) adminMenu(session *service.Session) {
	for !c.eof {
		c.printf("\n=== Admin Menu ===\n")
		c.printf("1. Inventory Management\n2. Budget Management\n3. Menu Management\n4. Statistics\n0. Logout\n")
		choice := c.readChoice()
		if choice != 0 && !c.sessionValid(session) {
			return
		}
		switch choice {
		case 1:
			c.inventoryMenu()
		case 2:
			c.budgetMenu()
		case 3:
			c.menuManagementMenu()
		case 4:
			c.statisticsMenu()
		case 0:
			c.printf("Logging out...\n")
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *Console) inventoryMenu() {
	for !c.eof {
		c.printf("\n=== Inventory Management ===\n")
		c.printf("1. Add Ingredient\n2. Remove Ingredient\n3. Update Ingredient\n4. View Inventory\n0. Back\n")
		switch c.readChoice() {
		case 1:
			name := c.readLine("Name: ")
			price := c.readPositiveFloat("Price: ")
			quantity := c.readPositiveFloat("Quantity: ")
			unit := c.readLine("Unit: ")
			if _, err := c.cafe.AddIngredient(name, price, quantity, unit); err != nil {
				c.printErr(err)
				continue
			}
			c.printf("Ingredient added successfully!\n")
		case 2:
			name := c.readLine("Enter ingredient name to remove: ")
			if err := c.cafe.RemoveIngredient(name); err != nil {
				c.printErr(err)
				continue
			}
			c.printf("Ingredient removed successfully!\n")
		case 3:
			name := c.readLine("Enter ingredient name to update: ")
			price := c.readPositiveFloat("Price: ")
			quantity := c.readPositiveFloat("Quantity: ")
			if err := c.cafe.UpdateIngredient(name, quantity, price); err != nil {
				c.printErr(err)
				continue
			}
			c.printf("Ingredient updated successfully!\n")
		case 4:
			c.printf("\n=== Current Inventory ===\n")
			for _, ing := range c.cafe.Ingredients() {
				c.printf("%s: %v %s (Price: $%v)\n", ing.Name, ing.Quantity, ing.Unit, ing.Price)
			}
		case 0:
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *Console) budgetMenu() {
	for !c.eof {
		c.printf("\n=== Budget Management ===\n")
		c.printf("Current Budget: $%v\n", c.cafe.Budget())
		c.printf("1. Add Funds\n2. Withdraw Funds\n0. Back\n")
		switch c.readChoice() {
		case 1:
			amount := c.readFloat("Enter amount to add: $")
			if err := c.cafe.UpdateBudget(amount); err != nil {
				c.printErr(err)
				continue
			}
			c.printf("Budget updated successfully!\n")
		case 2:
			amount := c.readFloat("Enter amount to withdraw: $")
			if err := c.cafe.UpdateBudget(-amount); err != nil {
				c.printf("Insufficient funds!\n")
				continue
			}
			c.printf("Budget updated successfully!\n")
		case 0:
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *Console) menuManagementMenu() {
	for !c.eof {
		c.printf("\n=== Menu Management ===\n")
		c.printf("1. Add Menu Item\n2. Remove Menu Item\n3. Update Menu Item\n4. View Menu\n0. Back\n")
		switch c.readChoice() {
		case 1:
			c.addMenuItem()
		case 2:
			name := c.readLine("Enter item name to remove: ")
			if err := c.cafe.RemoveMenuItem(name); err != nil {
				c.printErr(err)
				continue
			}
			c.printf("Menu item removed successfully!\n")
		case 3:
			c.updateMenuItem()
		case 4:
			c.printf("\n=== Current Menu ===\n")
			for _, item := range c.cafe.Menu() {
				c.printMenuItem(item, false)
			}
		case 0:
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *Console) addMenuItem() {
	name := c.readLine("Enter item name: ")
	price := c.readFloat("Enter base price: $")
	itemType := model.TypeDish
	if c.readInt("Type (1 for Dish, 2 for Drink): ") == 2 {
		itemType = model.TypeDrink
	}

	item, err := c.cafe.AddMenuItem(name, price, itemType)
	if err != nil {
		c.printErr(err)
		return
	}

	for !c.eof {
		ingName := c.readLine("Ingredient name: ")
		quantity := c.readFloat("Quantity needed: ")
		if err := c.cafe.AddRecipeLine(item.Name, ingName, quantity); err != nil {
			c.printErr(err)
		} else {
			c.printf("\nIngredients are below:\n")
			for _, line := range item.Recipe {
				c.printf("%s - %v\n", line.IngredientName, line.Quantity)
			}
		}
		if !c.readYesNo("Add another ingredient? (y/n): ") {
			return
		}
	}
}

func (c *Console) updateMenuItem() {
	name := c.readLine("Enter item name to update: ")
	if _, ok := c.cafe.FindMenuItem(name); !ok {
		c.printf("Error: menu item %q not found\n", name)
		return
	}

	c.printf("\n1. Update ingredients\n2. Update base price\n")
	switch c.readChoice() {
	case 1:
		ingName := c.readLine("Enter ingredient name: ")
		quantity := c.readFloat("Enter new quantity: ")
		if err := c.cafe.UpdateRecipeQuantity(name, ingName, quantity); err != nil {
			c.printErr(err)
			return
		}
	case 2:
		price := c.readFloat("Enter new base price: $")
		if err := c.cafe.SetBasePrice(name, price); err != nil {
			c.printErr(err)
			return
		}
	default:
		c.printf("Invalid choice!\n")
		return
	}
	c.printf("Menu item updated successfully!\n")
}

func (c *Console) statisticsMenu() {
	for !c.eof {
		c.printf("\n=== Statistics ===\n")
		c.printf("1. Daily Sales\n2. Weekly Sales\n0. Back\n")
		switch c.readChoice() {
		case 1:
			sales, err := c.cafe.DailySales()
			if err != nil {
				c.printErr(err)
				continue
			}
			c.printf("\n=== Daily Sales ===\n")
			if len(sales) == 0 {
				c.printf("No sales data available\n")
				continue
			}
			for _, sale := range sales {
				c.printf("%s: $%v\n", sale.Date, sale.Amount)
			}
		case 2:
			weeks, err := c.cafe.WeeklySales()
			if err != nil {
				c.printErr(err)
				continue
			}
			c.printf("\n=== Weekly Sales ===\n")
			if len(weeks) == 0 {
				c.printf("No sales data available\n")
				continue
			}
			for _, week := range weeks {
				for _, sale := range week.Sales {
					c.printf("%s: $%v\n", sale.Date, sale.Amount)
				}
				c.printf("\nTotal for week starting %s: $%v\n", week.WeekStart, week.Amount)
			}
		case 0:
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *Console) printMenuItem(item *model.MenuItem, showTotal bool) {
	c.printf("\n%s: %s\nBase Price: $%v\nIngredients:\n", item.Type, item.Name, item.BasePrice)
	inv := c.cafe.Inventory()
	for _, line := range item.Recipe {
		unit := ""
		if ing, ok := inv.Find(line.IngredientName); ok {
			unit = ing.Unit
		}
		c.printf("- %s: %v %s\n", line.IngredientName, line.Quantity, unit)
	}
	if showTotal {
		c.printf("Price: $%v\n", item.CalculatePrice(inv))
	} else {
		c.printf("Total Price: $%v\n", item.CalculatePrice(inv))
	}
}
