package model

const (
	// MaxUsernameLength is the longest accepted username.
	MaxUsernameLength = 30
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 6
)

// User is a registered customer with a cart and an order history.
// PasswordHash is a bcrypt hash; the plaintext password is never stored.
type User struct {
	Username     string
	PasswordHash string
	Cart         *Cart
	Orders       []*Order
}

// NewUser creates a user with an empty cart and history.
func NewUser(username, passwordHash string) *User {
	return &User{Username: username, PasswordHash: passwordHash, Cart: NewCart()}
}

// AddOrder appends a completed order to the user's history.
func (u *User) AddOrder(order *Order) {
	u.Orders = append(u.Orders, order)
}

// ValidateUsername checks the username length bound.
func ValidateUsername(username string) error {
	if len(username) > MaxUsernameLength {
		return NewDomainError(ErrKindValidation, "username is too long")
	}
	return nil
}

// ValidatePassword checks the password format: at least six characters,
// letters and digits only.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return NewDomainError(ErrKindValidation, "password must be at least %d characters", MinPasswordLength)
	}
	for _, r := range password {
		if !isAlphanumeric(r) {
			return NewDomainError(ErrKindValidation, "password must contain only letters and digits")
		}
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
