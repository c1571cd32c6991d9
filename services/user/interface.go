package user

import (
	"alcahub/models"
)

// ProfileUpdate is a partial profile edit; empty fields are left untouched.
type ProfileUpdate struct {
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	Block     string `json:"block,omitempty"`
}

// UserService defines account, profile and preference operations.
type UserService interface {
	// Register creates an account and returns it with a fresh auth token.
	Register(u *models.User) (*models.User, error)
	// Authenticate verifies credentials and returns the user with a fresh token.
	Authenticate(email, password string) (*models.User, error)
	// GetByID fetches an account.
	GetByID(id string) (*models.User, error)
	// UpdateProfile applies a partial profile edit.
	UpdateProfile(id string, update ProfileUpdate) (*models.User, error)
	// UpdateSettings replaces the user's settings.
	UpdateSettings(id string, settings models.Settings) error
	// DeleteAccount removes the account permanently.
	DeleteAccount(id string) error
	// SwitchMode toggles the account between morador and prestador and
	// re-issues the auth token with the new role.
	SwitchMode(id string) (*models.User, error)

	// AddPaymentMethod stores a payment method on the profile.
	AddPaymentMethod(id string, pm models.PaymentMethod) (*models.PaymentMethod, error)
	// RemovePaymentMethod deletes a stored payment method.
	RemovePaymentMethod(id, paymentMethodID string) error

	// AddFavorite / RemoveFavorite / ListFavorites manage the user's saved
	// professionals.
	AddFavorite(id, professionalID string) error
	RemoveFavorite(id, professionalID string) error
	ListFavorites(id string) ([]string, error)

	// ForgotPassword issues a reset code; ResetPassword consumes it.
	ForgotPassword(email string) error
	ResetPassword(email, code, newPassword string) error
}
