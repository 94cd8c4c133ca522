package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains the input for shop registration
type RegisterInput struct {
	ShopName    string
	Address     string
	PhoneNumber string
	Email       string
	Password    string
}

// RegisterResult contains the result of a successful registration
type RegisterResult struct {
	ShopID  uuid.UUID
	Message string
}

// LoginInput contains the input for shop login
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client IP for login tracking
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Shop      ShopInfo
}

// ShopInfo contains basic shop information returned after login
type ShopInfo struct {
	ID          uuid.UUID
	ShopName    string
	Address     string
	PhoneNumber string
	Email       string
}
