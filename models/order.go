package models

import "time"

// Order statuses. Transitions are validated by the order service; see
// services/order.CanTransition.
const (
	OrderPending    = "pendente"
	OrderConfirmed  = "confirmado"
	OrderInProgress = "em_andamento"
	OrderCompleted  = "concluido"
	OrderCancelled  = "cancelado"
)

// Payment statuses carried on an order.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// ProfessionalSnapshot is the denormalized professional data frozen into an
// order at creation time.
type ProfessionalSnapshot struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	AvatarURL string  `bson:"avatarUrl" json:"avatarUrl,omitempty"`
	Rating    float64 `bson:"rating" json:"rating"`
}

// ServiceSnapshot freezes what was booked: either a package or an ad-hoc
// hourly service.
type ServiceSnapshot struct {
	Name          string  `bson:"name" json:"name"`
	PackageID     string  `bson:"packageId,omitempty" json:"packageId,omitempty"`
	DurationHours float64 `bson:"durationHours" json:"durationHours"`
}

// Order is a persisted booking record with a status lifecycle.
type Order struct {
	ID            string               `bson:"id" json:"id"` // "ORD-<unix-millis>" or fixture id
	UserID        string               `bson:"userId" json:"userId"`
	Status        string               `bson:"status" json:"status"`
	Professional  ProfessionalSnapshot `bson:"professional" json:"professional"`
	Service       ServiceSnapshot      `bson:"service" json:"service"`
	Date          string               `bson:"date" json:"date"` // "2006-01-02"
	Time          string               `bson:"time" json:"time"` // "HH:MM"
	DurationHours float64              `bson:"durationHours" json:"durationHours"`
	Price         float64              `bson:"price" json:"price"`
	PaymentStatus string               `bson:"paymentStatus" json:"payment_status"`
	PaymentMethod string               `bson:"paymentMethod" json:"paymentMethod,omitempty"`
	Address       string               `bson:"address" json:"address"`
	Notes         string               `bson:"notes" json:"notes,omitempty"`
	Rating        *float64             `bson:"rating,omitempty" json:"rating,omitempty"` // 1..5 once reviewed
	Review        string               `bson:"review,omitempty" json:"review,omitempty"`
	ReviewDate    *time.Time           `bson:"reviewDate,omitempty" json:"reviewDate,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
}

// StatusStyle is the display label/color pair for an order status.
type StatusStyle struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// StatusStyles maps each order status to its display style.
var StatusStyles = map[string]StatusStyle{
	OrderPending:    {Label: "Pendente", Color: "yellow"},
	OrderConfirmed:  {Label: "Confirmado", Color: "blue"},
	OrderInProgress: {Label: "Em andamento", Color: "purple"},
	OrderCompleted:  {Label: "Concluído", Color: "green"},
	OrderCancelled:  {Label: "Cancelado", Color: "red"},
}
