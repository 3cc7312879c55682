package repository

import (
	"path/filepath"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

// InventoryFile is the inventory file name within the data directory.
const InventoryFile = "inventory.txt"

// FileInventoryRepository stores ingredients as name;price;quantity;unit
// records.
type FileInventoryRepository struct {
	path string
}

// NewFileInventoryRepository creates an inventory repository rooted at dataDir.
func NewFileInventoryRepository(dataDir string) *FileInventoryRepository {
	return &FileInventoryRepository{path: filepath.Join(dataDir, InventoryFile)}
}

// Load reads all persisted ingredients. Malformed records are skipped.
func (r *FileInventoryRepository) Load() ([]*model.Ingredient, error) {
	records, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	var ingredients []*model.Ingredient
	for _, rec := range records {
		if len(rec) < 4 {
			continue
		}
		price, err := parseFloat(rec[1])
		if err != nil {
			continue
		}
		quantity, err := parseFloat(rec[2])
		if err != nil {
			continue
		}
		ing, err := model.NewIngredient(rec[0], price, quantity, rec[3])
		if err != nil {
			continue
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}

// Save rewrites the full ingredient set.
func (r *FileInventoryRepository) Save(ingredients []*model.Ingredient) error {
	records := make([][]string, 0, len(ingredients))
	for _, ing := range ingredients {
		records = append(records, []string{
			ing.Name,
			formatFloat(ing.Price),
			formatFloat(ing.Quantity),
			ing.Unit,
		})
	}
	return writeRecords(r.path, records)
}
