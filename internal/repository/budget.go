package repository

import "path/filepath"

// BudgetFile holds a single decimal value.
const BudgetFile = "budget.txt"

// FileBudgetRepository stores the cafe cash balance.
type FileBudgetRepository struct {
	path string
}

// NewFileBudgetRepository creates a budget repository rooted at dataDir.
func NewFileBudgetRepository(dataDir string) *FileBudgetRepository {
	return &FileBudgetRepository{path: filepath.Join(dataDir, BudgetFile)}
}

// Load reads the persisted budget, falling back to defaultBudget when the
// file is missing or unreadable as a number.
func (r *FileBudgetRepository) Load(defaultBudget float64) (float64, error) {
	records, err := readRecords(r.path)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return defaultBudget, nil
	}
	budget, err := parseFloat(records[0][0])
	if err != nil {
		return defaultBudget, nil
	}
	return budget, nil
}

// Save rewrites the budget value.
func (r *FileBudgetRepository) Save(budget float64) error {
	return writeRecords(r.path, [][]string{{formatFloat(budget)}})
}
