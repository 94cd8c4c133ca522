package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/promokit/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Shop represents a registered shop account
// It is the aggregate root for shop-related operations
type Shop struct {
	shared.BaseAggregateRoot
	ShopName     string
	Address      string
	PhoneNumber  string
	Email        string
	PasswordHash string
	LastLoginAt  *time.Time
}

// NewShop creates a new shop account with a hashed password
func NewShop(shopName, address, phoneNumber, email, password string) (*Shop, error) {
	if err := validateShopName(shopName); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Shop{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ShopName:          strings.TrimSpace(shopName),
		Address:           strings.TrimSpace(address),
		PhoneNumber:       strings.TrimSpace(phoneNumber),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (s *Shop) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password))
	return err == nil
}

// RecordLogin records a successful login
func (s *Shop) RecordLogin(at time.Time) {
	s.LastLoginAt = &at
	s.Touch()
	s.IncrementVersion()
}

func validateShopName(shopName string) error {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot be empty")
	}
	if len(shopName) > 200 {
		return shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot exceed 200 characters")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func validatePhoneNumber(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
