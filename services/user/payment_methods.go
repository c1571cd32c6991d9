package user

import (
	"fmt"
	"time"

	"alcahub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// AddPaymentMethod stores a payment method on the profile. The first stored
// method becomes the default.
func (s *DefaultUserService) AddPaymentMethod(id string, pm models.PaymentMethod) (*models.PaymentMethod, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	pm.ID = uuid.New().String()
	if len(u.PaymentMethods) == 0 {
		pm.Default = true
	}
	methods := append(u.PaymentMethods, pm)

	set := bson.M{"paymentMethods": methods, "updatedAt": time.Now()}
	if err := s.Repo.UpdateSetDocument(id, set); err != nil {
		return nil, err
	}
	return &pm, nil
}

// RemovePaymentMethod deletes a stored payment method.
func (s *DefaultUserService) RemovePaymentMethod(id, paymentMethodID string) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}

	methods := make([]models.PaymentMethod, 0, len(u.PaymentMethods))
	found := false
	for _, pm := range u.PaymentMethods {
		if pm.ID == paymentMethodID {
			found = true
			continue
		}
		methods = append(methods, pm)
	}
	if !found {
		return fmt.Errorf("payment method %s not found", paymentMethodID)
	}

	// Keep a default around when the removed one held it.
	if len(methods) > 0 {
		hasDefault := false
		for _, pm := range methods {
			if pm.Default {
				hasDefault = true
				break
			}
		}
		if !hasDefault {
			methods[0].Default = true
		}
	}

	return s.Repo.UpdateSetDocument(id, bson.M{"paymentMethods": methods, "updatedAt": time.Now()})
}
