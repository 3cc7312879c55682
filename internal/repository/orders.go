package repository

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

const (
	// OrdersFile holds orderId;username;datetime;totalAmount records.
	OrdersFile = "orders.txt"
	// OrderDetailsFile holds orderId;itemName;quantity;unitPrice;ing1:qty1,... records.
	OrderDetailsFile = "order_details.txt"
)

// FileOrderRepository stores completed orders append-only across the order
// header file and the detail file.
type FileOrderRepository struct {
	ordersPath  string
	detailsPath string
}

// NewFileOrderRepository creates an order repository rooted at dataDir.
func NewFileOrderRepository(dataDir string) *FileOrderRepository {
	return &FileOrderRepository{
		ordersPath:  filepath.Join(dataDir, OrdersFile),
		detailsPath: filepath.Join(dataDir, OrderDetailsFile),
	}
}

// Append persists the order header and its line detail records.
func (r *FileOrderRepository) Append(order *model.Order) error {
	header := [][]string{{
		strconv.Itoa(order.ID),
		order.Username,
		order.PlacedAt.Format(model.TimestampLayout),
		formatFloat(order.Total),
	}}
	if err := appendRecords(r.ordersPath, header); err != nil {
		return err
	}

	details := make([][]string, 0, len(order.Lines))
	for _, line := range order.Lines {
		details = append(details, []string{
			strconv.Itoa(order.ID),
			line.ItemName,
			strconv.Itoa(line.Quantity),
			formatFloat(line.UnitPrice),
			formatConsumed(line.Consumed),
		})
	}
	return appendRecords(r.detailsPath, details)
}

// Load reads all persisted orders with their line details, sorted by id.
func (r *FileOrderRepository) Load() ([]*model.Order, error) {
	headerRecords, err := readRecords(r.ordersPath)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*model.Order)
	var orders []*model.Order
	for _, rec := range headerRecords {
		if len(rec) < 4 {
			continue
		}
		id, err := parseInt(rec[0])
		if err != nil {
			continue
		}
		total, err := parseFloat(rec[3])
		if err != nil {
			continue
		}
		placedAt, err := time.Parse(model.TimestampLayout, rec[2])
		if err != nil {
			continue
		}
		order := &model.Order{ID: id, Username: rec[1], PlacedAt: placedAt, Total: total}
		byID[id] = order
		orders = append(orders, order)
	}

	detailRecords, err := readRecords(r.detailsPath)
	if err != nil {
		return nil, err
	}
	for _, rec := range detailRecords {
		if len(rec) < 5 {
			continue
		}
		id, err := parseInt(rec[0])
		if err != nil {
			continue
		}
		order, ok := byID[id]
		if !ok {
			continue
		}
		quantity, err := parseInt(rec[2])
		if err != nil {
			continue
		}
		unitPrice, err := parseFloat(rec[3])
		if err != nil {
			continue
		}
		order.Lines = append(order.Lines, model.OrderLine{
			ItemName:  rec[1],
			Quantity:  quantity,
			UnitPrice: unitPrice,
			Consumed:  parseConsumed(rec[4]),
		})
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func formatConsumed(consumed []model.ConsumedIngredient) string {
	parts := make([]string, 0, len(consumed))
	for _, c := range consumed {
		parts = append(parts, fmt.Sprintf("%s:%s", c.Name, formatFloat(c.Quantity)))
	}
	return strings.Join(parts, ",")
}

func parseConsumed(s string) []model.ConsumedIngredient {
	if s == "" {
		return nil
	}
	var consumed []model.ConsumedIngredient
	for _, part := range strings.Split(s, ",") {
		name, qty, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		quantity, err := parseFloat(qty)
		if err != nil {
			continue
		}
		consumed = append(consumed, model.ConsumedIngredient{Name: name, Quantity: quantity})
	}
	return consumed
}
