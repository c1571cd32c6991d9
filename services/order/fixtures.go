package order

import (
	"time"

	"alcahub/models"
)

// Fixtures are the demo orders every account sees merged into its history,
// the seed the marketplace screens render before a user has real bookings.
func Fixtures() []models.Order {
	created := time.Date(2024, 1, 8, 14, 30, 0, 0, time.UTC)
	reviewed := time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)
	rating := 5.0

	return []models.Order{
		{
			ID:     "ORD-FIX-001",
			Status: models.OrderCompleted,
			Professional: models.ProfessionalSnapshot{
				ID: "prof-ana", Name: "Ana Souza", Rating: 4.9,
			},
			Service:       models.ServiceSnapshot{Name: "Limpeza completa", DurationHours: 4},
			Date:          "2024-01-12",
			Time:          "09:00",
			DurationHours: 4,
			Price:         240,
			PaymentStatus: models.PaymentPaid,
			PaymentMethod: "card",
			Address:       "Bloco A, Ap 101",
			Rating:        &rating,
			Review:        "Impecável, recomendo.",
			ReviewDate:    &reviewed,
			CreatedAt:     created,
		},
		{
			ID:     "ORD-FIX-002",
			Status: models.OrderConfirmed,
			Professional: models.ProfessionalSnapshot{
				ID: "prof-carlos", Name: "Carlos Lima", Rating: 4.7,
			},
			Service:       models.ServiceSnapshot{Name: "Manutenção elétrica", DurationHours: 2},
			Date:          "2024-02-03",
			Time:          "14:00",
			DurationHours: 2,
			Price:         180,
			PaymentStatus: models.PaymentPending,
			PaymentMethod: "pix",
			Address:       "Bloco B, Ap 204",
			CreatedAt:     created.AddDate(0, 0, 10),
		},
	}
}
