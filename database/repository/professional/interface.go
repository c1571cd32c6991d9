package professionalRepo

import (
	"alcahub/models"
)

// ProfessionalRepository defines methods for professional data access.
type ProfessionalRepository interface {
	// GetByID retrieves a professional by its unique ID.
	GetByID(id string) (*models.Professional, error)
	// GetAll retrieves all professionals.
	GetAll() ([]models.Professional, error)
	// Search retrieves professionals matching the given criteria.
	Search(criteria SearchCriteria) ([]models.Professional, error)
	// Create inserts a new professional record.
	Create(prof *models.Professional) error
	// Update modifies an existing professional record.
	Update(prof *models.Professional) error
	// Delete removes a professional record by its ID.
	Delete(id string) error
	// UpdateRating recomputes the stored rating aggregate after a new review.
	UpdateRating(id string, rating float64) error
}

// SearchCriteria holds parameters for a professional search.
type SearchCriteria struct {
	Name      string // Partial or full name, case-insensitive.
	Specialty string // Exact specialty match, e.g. "limpeza".
	MinRating float64
	Verified  *bool
}
