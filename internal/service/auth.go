package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

// ErrInvalidCredentials is returned when username or password is incorrect.
var ErrInvalidCredentials = errors.New("invalid username or password")

// RegisterUser validates the credentials, stores a bcrypt hash and persists
// the user set.
func (c *Cafe) RegisterUser(username, password string) (*model.User, error) {
	if err := model.ValidateUsername(username); err != nil {
		return nil, err
	}
	if c.findUser(username) != nil {
		return nil, model.NewDomainError(model.ErrKindDuplicate, "username %q already exists", username)
	}
	if err := model.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := model.NewUser(username, string(hash))
	c.users = append(c.users, user)
	if err := c.repos.Users.Save(c.users); err != nil {
		return nil, err
	}

	c.log.Info().Str("username", username).Msg("User registered")
	return user, nil
}

// Login authenticates a user by exact username match and bcrypt password
// comparison.
func (c *Cafe) Login(username, password string) (*model.User, error) {
	user := c.findUser(username)
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// AdminLogin authenticates against the configured admin credentials.
func (c *Cafe) AdminLogin(username, password string) error {
	if username != c.admin.username {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(c.admin.passwordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
