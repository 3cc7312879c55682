package repository

import (
	"path/filepath"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

// UsersFile holds username;passwordHash records.
const UsersFile = "users.txt"

// FileUserRepository stores user credentials.
type FileUserRepository struct {
	path string
}

// NewFileUserRepository creates a user repository rooted at dataDir.
func NewFileUserRepository(dataDir string) *FileUserRepository {
	return &FileUserRepository{path: filepath.Join(dataDir, UsersFile)}
}

// Load reads all persisted users with empty carts and histories.
func (r *FileUserRepository) Load() ([]*model.User, error) {
	records, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	var users []*model.User
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		users = append(users, model.NewUser(rec[0], rec[1]))
	}
	return users, nil
}

// Save rewrites the full user set.
func (r *FileUserRepository) Save(users []*model.User) error {
	records := make([][]string, 0, len(users))
	for _, user := range users {
		records = append(records, []string{user.Username, user.PasswordHash})
	}
	return writeRecords(r.path, records)
}
