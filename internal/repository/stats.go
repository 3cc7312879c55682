package repository

import (
	"path/filepath"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

// DailyStatsFile holds date;amount records, one per order.
const DailyStatsFile = "daily_stats.txt"

// FileStatsRepository stores per-order sales statistics append-only.
type FileStatsRepository struct {
	path string
}

// NewFileStatsRepository creates a statistics repository rooted at dataDir.
func NewFileStatsRepository(dataDir string) *FileStatsRepository {
	return &FileStatsRepository{path: filepath.Join(dataDir, DailyStatsFile)}
}

// Load reads all persisted sales records in file order.
func (r *FileStatsRepository) Load() ([]model.DailySale, error) {
	records, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	var sales []model.DailySale
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		amount, err := parseFloat(rec[1])
		if err != nil {
			continue
		}
		sales = append(sales, model.DailySale{Date: rec[0], Amount: amount})
	}
	return sales, nil
}

// Append persists one sales record.
func (r *FileStatsRepository) Append(sale model.DailySale) error {
	return appendRecords(r.path, [][]string{{sale.Date, formatFloat(sale.Amount)}})
}
