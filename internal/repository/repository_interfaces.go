package repository

import "github.com/azurecafe/cafe-service/internal/domain/model"

// InventoryRepository persists the ingredient collection.
type InventoryRepository interface {
	Load() ([]*model.Ingredient, error)
	Save(ingredients []*model.Ingredient) error
}

// MenuRepository persists menu items together with their recipes.
type MenuRepository interface {
	Load() ([]*model.MenuItem, error)
	Save(items []*model.MenuItem) error
}

// UserRepository persists user credentials.
type UserRepository interface {
	Load() ([]*model.User, error)
	Save(users []*model.User) error
}

// OrderRepository persists completed orders as append-only records.
type OrderRepository interface {
	Load() ([]*model.Order, error)
	Append(order *model.Order) error
}

// BudgetRepository persists the cafe cash balance.
type BudgetRepository interface {
	Load(defaultBudget float64) (float64, error)
	Save(budget float64) error
}

// StatsRepository persists per-order sales statistics as append-only records.
type StatsRepository interface {
	Load() ([]model.DailySale, error)
	Append(sale model.DailySale) error
}
