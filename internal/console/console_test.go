package console_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/azurecafe/cafe-service/config"
	"github.com/azurecafe/cafe-service/internal/console"
	"github.com/azurecafe/cafe-service/internal/domain/model"
	"github.com/azurecafe/cafe-service/internal/logger"
	"github.com/azurecafe/cafe-service/internal/repository"
	"github.com/azurecafe/cafe-service/internal/service"
)

func newConsoleCafe(t *testing.T) (*service.Cafe, config.Config) {
	t.Helper()
	logger.Init("error", false)

	cfg := config.Config{
		Storage: config.StorageConfig{DataDir: t.TempDir()},
		Auth: config.AuthConfig{
			AdminUsername: "admin",
			AdminPassword: "admin123",
			JWTSecretKey:  "test-secret-key",
			SessionTTL:    time.Hour,
			BcryptCost:    bcrypt.MinCost,
		},
		Cafe:    config.CafeConfig{Name: "Test Cafe", InitialBudget: 10000},
		Logging: config.LoggingConfig{Level: "error"},
	}

	repos := service.Repositories{
		Inventory: repository.NewFileInventoryRepository(cfg.Storage.DataDir),
		Menu:      repository.NewFileMenuRepository(cfg.Storage.DataDir),
		Users:     repository.NewFileUserRepository(cfg.Storage.DataDir),
		Orders:    repository.NewFileOrderRepository(cfg.Storage.DataDir),
		Budget:    repository.NewFileBudgetRepository(cfg.Storage.DataDir),
		Stats:     repository.NewFileStatsRepository(cfg.Storage.DataDir),
	}
	cafe, err := service.NewCafe(cfg, repos)
	require.NoError(t, err)
	return cafe, cfg
}

// runSession feeds a scripted input to the console and returns the output.
func runSession(t *testing.T, cafe *service.Cafe, cfg config.Config, input string) string {
	t.Helper()
	var out bytes.Buffer
	tokens := service.NewTokenService(cfg.Auth)
	receipts := service.NewReceiptService(cfg.Receipts)
	console.New(cfg.Cafe.Name, strings.NewReader(input), &out, cafe, tokens, receipts).Run()
	return out.String()
}

func TestConsole_UserOrderFlow(t *testing.T) {
	cafe, cfg := newConsoleCafe(t)
	_, err := cafe.AddIngredient("Flour", 2, 10, "kg")
	require.NoError(t, err)
	_, err = cafe.AddMenuItem("Bread", 1, model.TypeDish)
	require.NoError(t, err)
	require.NoError(t, cafe.AddRecipeLine("Bread", "Flour", 2))

	input := strings.Join([]string{
		"2",        // register
		"alice",
		"abc123",
		"3",        // login
		"alice",
		"abc123",
		"2",        // place order
		"Bread",
		"3",
		"3",        // view cart
		"y",        // checkout
		"0",        // logout
		"0",        // exit
	}, "\n") + "\n"

	output := runSession(t, cafe, cfg, input)

	assert.Contains(t, output, "Registration successful!")
	assert.Contains(t, output, "Welcome, alice!")
	assert.Contains(t, output, "Item added to cart!")
	assert.Contains(t, output, "Total: $15")
	assert.Contains(t, output, "Order placed successfully!")
	assert.Contains(t, output, "Thank you for visiting Test Cafe!")

	flour, ok := cafe.FindIngredient("Flour")
	require.True(t, ok)
	assert.Equal(t, 4.0, flour.Quantity)

	user, err := cafe.Login("alice", "abc123")
	require.NoError(t, err)
	assert.True(t, user.Cart.Empty())
	assert.Len(t, user.Orders, 1)
}

func TestConsole_AdminFlow(t *testing.T) {
	cafe, cfg := newConsoleCafe(t)

	input := strings.Join([]string{
		"1",        // admin login
		"admin",
		"admin123",
		"1",        // inventory management
		"1",        // add ingredient
		"Sugar",
		"1",
		"5",
		"kg",
		"0",        // back
		"2",        // budget management
		"1",        // add funds
		"100",
		"0",        // back
		"4",        // statistics
		"1",        // daily sales
		"0",        // back
		"0",        // logout
		"0",        // exit
	}, "\n") + "\n"

	output := runSession(t, cafe, cfg, input)

	assert.Contains(t, output, "Ingredient added successfully!")
	assert.Contains(t, output, "Budget updated successfully!")
	assert.Contains(t, output, "No sales data available")
	assert.Contains(t, output, "Logging out...")

	sugar, ok := cafe.FindIngredient("Sugar")
	require.True(t, ok)
	assert.Equal(t, 5.0, sugar.Quantity)
	// 10000 - 5 purchase + 100 deposit.
	assert.Equal(t, 10095.0, cafe.Budget())
}

func TestConsole_RemoveCartItem(t *testing.T) {
	cafe, cfg := newConsoleCafe(t)
	_, err := cafe.AddIngredient("Flour", 2, 10, "kg")
	require.NoError(t, err)
	_, err = cafe.AddMenuItem("Bread", 1, model.TypeDish)
	require.NoError(t, err)
	require.NoError(t, cafe.AddRecipeLine("Bread", "Flour", 2))
	_, err = cafe.RegisterUser("alice", "abc123")
	require.NoError(t, err)

	input := strings.Join([]string{
		"3", // login
		"alice",
		"abc123",
		"2", // place order
		"Bread",
		"1",
		"5", // remove cart item
		"Bread",
		"0", // logout
		"0", // exit
	}, "\n") + "\n"

	output := runSession(t, cafe, cfg, input)
	assert.Contains(t, output, "Item removed from cart!")

	user, err := cafe.Login("alice", "abc123")
	require.NoError(t, err)
	assert.True(t, user.Cart.Empty())
}

func TestConsole_InvalidLoginStaysAtMainMenu(t *testing.T) {
	cafe, cfg := newConsoleCafe(t)

	input := "3\nghost\nabc123\n0\n"
	output := runSession(t, cafe, cfg, input)

	assert.Contains(t, output, "Invalid credentials!")
	assert.Contains(t, output, "Thank you for visiting Test Cafe!")
}

func TestConsole_EndOfInputExits(t *testing.T) {
	cafe, cfg := newConsoleCafe(t)

	output := runSession(t, cafe, cfg, "")
	assert.Contains(t, output, "Thank you for visiting Test Cafe!")
}
