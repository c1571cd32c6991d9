package models

import "time"

// User roles.
const (
	RoleResident     = "morador"
	RoleProfessional = "prestador"
)

// PaymentMethod is a stored payment method on a user profile.
type PaymentMethod struct {
	ID       string `bson:"id" json:"id"`
	Type     string `bson:"type" json:"type"` // "card", "pix", "cash"
	Label    string `bson:"label" json:"label,omitempty"`
	LastFour string `bson:"lastFour" json:"lastFour,omitempty"`
	Default  bool   `bson:"default" json:"default"`
}

// Settings holds per-user preferences.
type Settings struct {
	EmailNotifications bool   `bson:"emailNotifications" json:"emailNotifications"`
	PushNotifications  bool   `bson:"pushNotifications" json:"pushNotifications"`
	Language           string `bson:"language" json:"language,omitempty"`
}

// User is a resident or professional account.
type User struct {
	ID             string          `bson:"id" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Email          string          `bson:"email" json:"email"`
	Phone          string          `bson:"phone" json:"phone,omitempty"`
	Role           string          `bson:"role" json:"role"`
	Apartment      string          `bson:"apartment" json:"apartment,omitempty"`
	Block          string          `bson:"block" json:"block,omitempty"`
	Password       string          `bson:"-" json:"password,omitempty"`
	PasswordHash   string          `bson:"passwordHash" json:"-"`
	Token          string          `bson:"-" json:"token,omitempty"`
	TokenHash      string          `bson:"tokenHash" json:"-"`
	PaymentMethods []PaymentMethod `bson:"paymentMethods" json:"paymentMethods,omitempty"`
	Settings       Settings        `bson:"settings" json:"settings"`
	Favorites      []string        `bson:"favorites" json:"favorites,omitempty"` // professional ids
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt,omitzero"`
}
