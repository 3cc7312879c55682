package service

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/azurecafe/cafe-service/config"
	"github.com/azurecafe/cafe-service/internal/domain/model"
)

// receiptQRSize is the pixel size of the generated receipt image.
const receiptQRSize = 256

// ReceiptService writes a QR receipt image for completed orders.
type ReceiptService struct {
	enabled bool
	dir     string
}

// NewReceiptService creates a receipt service from configuration.
func NewReceiptService(cfg config.ReceiptsConfig) *ReceiptService {
	return &ReceiptService{enabled: cfg.Enabled, dir: cfg.Dir}
}

// Enabled reports whether receipt generation is turned on.
func (s *ReceiptService) Enabled() bool {
	return s.enabled
}

// Generate writes receipt-<orderID>.png encoding the order summary and
// returns the file path.
func (s *ReceiptService) Generate(order *model.Order) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", model.WrapPersistence(err, "cannot create receipts directory")
	}

	content := fmt.Sprintf("order=%d;user=%s;time=%s;total=%.2f",
		order.ID, order.Username, order.PlacedAt.Format(model.TimestampLayout), order.Total)
	path := filepath.Join(s.dir, fmt.Sprintf("receipt-%d.png", order.ID))
	if err := qrcode.WriteFile(content, qrcode.Medium, receiptQRSize, path); err != nil {
		return "", model.WrapPersistence(err, "cannot write receipt")
	}
	return path, nil
}
