package repository

import (
	"path/filepath"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

const (
	// MenuFile holds name;basePrice;type records.
	MenuFile = "menu.txt"
	// MenuIngredientsFile holds itemName;ing1;qty1;ing2;qty2;... records.
	MenuIngredientsFile = "menu_ingredients.txt"
)

// FileMenuRepository stores menu items across the menu file and the recipe
// file. Both are rewritten in full on save so removed items never leave
// stale recipe records behind.
type FileMenuRepository struct {
	menuPath   string
	recipePath string
}

// NewFileMenuRepository creates a menu repository rooted at dataDir.
func NewFileMenuRepository(dataDir string) *FileMenuRepository {
	return &FileMenuRepository{
		menuPath:   filepath.Join(dataDir, MenuFile),
		recipePath: filepath.Join(dataDir, MenuIngredientsFile),
	}
}

// Load reads menu items and attaches their recipe lines. Recipe records for
// unknown items are skipped.
func (r *FileMenuRepository) Load() ([]*model.MenuItem, error) {
	menuRecords, err := readRecords(r.menuPath)
	if err != nil {
		return nil, err
	}

	var items []*model.MenuItem
	byName := make(map[string]*model.MenuItem)
	for _, rec := range menuRecords {
		if len(rec) < 3 {
			continue
		}
		basePrice, err := parseFloat(rec[1])
		if err != nil {
			continue
		}
		item := model.NewMenuItem(rec[0], basePrice, model.ParseItemType(rec[2]))
		items = append(items, item)
		byName[item.Name] = item
	}

	recipeRecords, err := readRecords(r.recipePath)
	if err != nil {
		return nil, err
	}
	for _, rec := range recipeRecords {
		if len(rec) < 1 {
			continue
		}
		item, ok := byName[rec[0]]
		if !ok {
			continue
		}
		for i := 1; i+1 < len(rec); i += 2 {
			quantity, err := parseFloat(rec[i+1])
			if err != nil {
				continue
			}
			item.AddRecipeLine(rec[i], quantity)
		}
	}
	return items, nil
}

// Save rewrites both the menu file and the recipe file.
func (r *FileMenuRepository) Save(items []*model.MenuItem) error {
	menuRecords := make([][]string, 0, len(items))
	recipeRecords := make([][]string, 0, len(items))
	for _, item := range items {
		menuRecords = append(menuRecords, []string{
			item.Name,
			formatFloat(item.BasePrice),
			string(item.Type),
		})

		recipeRecord := []string{item.Name}
		for _, line := range item.Recipe {
			recipeRecord = append(recipeRecord, line.IngredientName, formatFloat(line.Quantity))
		}
		recipeRecords = append(recipeRecords, recipeRecord)
	}

	if err := writeRecords(r.menuPath, menuRecords); err != nil {
		return err
	}
	return writeRecords(r.recipePath, recipeRecords)
}
