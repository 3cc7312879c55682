// Package service implements the cafe business operations on top of the
// flat-file repositories.
package service

import (
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/azurecafe/cafe-service/config"
	"github.com/azurecafe/cafe-service/internal/domain/model"
	"github.com/azurecafe/cafe-service/internal/logger"
	"github.com/azurecafe/cafe-service/internal/repository"
)

// Repositories bundles the persistence dependencies of the Cafe aggregate.
type Repositories struct {
	Inventory repository.InventoryRepository
	Menu      repository.MenuRepository
	Users     repository.UserRepository
	Orders    repository.OrderRepository
	Budget    repository.BudgetRepository
	Stats     repository.StatsRepository
}

// Cafe is the aggregate root. It owns the inventory, the menu, the users,
// the admin credentials and the budget, and it is the only component that
// enforces cross-entity invariants and triggers persistence.
type Cafe struct {
	budget      float64
	inventory   *model.Inventory
	menu        []*model.MenuItem
	users       []*model.User
	admin       adminCredentials
	nextOrderID int
	bcryptCost  int
	repos       Repositories
	log         zerolog.Logger
}

type adminCredentials struct {
	username     string
	passwordHash string
}

// NewCafe builds the aggregate from configuration and loads all persisted
// state. Order history is rebuilt from the persisted order records and the
// next order id continues past the highest persisted id, so ids stay unique
// across restarts.
func NewCafe(cfg config.Config, repos Repositories) (*Cafe, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	c := &Cafe{
		inventory:   model.NewInventory(),
		admin:       adminCredentials{username: cfg.Auth.AdminUsername, passwordHash: string(adminHash)},
		nextOrderID: 1,
		bcryptCost:  cfg.Auth.BcryptCost,
		repos:       repos,
		log:         logger.Logger(),
	}

	if err := c.load(cfg.Cafe.InitialBudget); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cafe) load(defaultBudget float64) error {
	budget, err := c.repos.Budget.Load(defaultBudget)
	if err != nil {
		return err
	}
	c.budget = budget

	ingredients, err := c.repos.Inventory.Load()
	if err != nil {
		return err
	}
	c.inventory.Replace(ingredients)

	menu, err := c.repos.Menu.Load()
	if err != nil {
		return err
	}
	c.menu = menu

	users, err := c.repos.Users.Load()
	if err != nil {
		return err
	}
	c.users = users

	orders, err := c.repos.Orders.Load()
	if err != nil {
		return err
	}
	for _, order := range orders {
		if user := c.findUser(order.Username); user != nil {
			user.AddOrder(order)
		}
		if order.ID >= c.nextOrderID {
			c.nextOrderID = order.ID + 1
		}
	}

	c.log.Info().
		Int("ingredients", len(ingredients)).
		Int("menu_items", len(menu)).
		Int("users", len(users)).
		Int("orders", len(orders)).
		Float64("budget", c.budget).
		Msg("Cafe state loaded")
	return nil
}

// Budget returns the current cash balance.
func (c *Cafe) Budget() float64 {
	return c.budget
}

// UpdateBudget applies delta to the budget and persists it. The mutation is
// rejected when the result would be negative.
func (c *Cafe) UpdateBudget(delta float64) error {
	if c.budget+delta < 0 {
		return model.NewDomainError(model.ErrKindBudgetExceeded, "insufficient funds")
	}
	c.budget += delta
	if err := c.repos.Budget.Save(c.budget); err != nil {
		return err
	}
	c.log.Debug().Float64("delta", delta).Float64("budget", c.budget).Msg("Budget updated")
	return nil
}

func (c *Cafe) findUser(username string) *model.User {
	for _, user := range c.users {
		if user.Username == username {
			return user
		}
	}
	return nil
}
