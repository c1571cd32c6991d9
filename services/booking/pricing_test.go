package booking

import (
	"testing"

	"alcahub/models"

	"github.com/stretchr/testify/assert"
)

func pricingProfessional() *models.Professional {
	return &models.Professional{
		ID:     "prof-1",
		Hourly: models.HourlyPricing{Min: 80, Avg: 100, Max: 150},
		Packages: []models.Package{
			{ID: "pkg-1", Name: "Faxina completa", DurationHours: 4, Price: 350},
		},
	}
}

func TestApplyPackageSetsFixedPriceAndDuration(t *testing.T) {
	prof := pricingProfessional()
	draft := models.BookingDraft{DurationHours: 2, Total: 200}

	pkg, ok := prof.PackageByID("pkg-1")
	assert.True(t, ok)
	ApplyPackage(&draft, pkg)

	assert.Equal(t, "pkg-1", draft.PackageID)
	assert.Equal(t, "Faxina completa", draft.ServiceName)
	assert.Equal(t, 4.0, draft.DurationHours)
	assert.Equal(t, 350.0, draft.Total)
}

func TestApplyDurationClearsPackage(t *testing.T) {
	prof := pricingProfessional()
	draft := models.BookingDraft{PackageID: "pkg-1", ServiceName: "Faxina completa", DurationHours: 4, Total: 350}

	ApplyDuration(&draft, prof, 3)

	assert.Empty(t, draft.PackageID)
	assert.Equal(t, 3.0, draft.DurationHours)
	assert.Equal(t, 300.0, draft.Total)
}

func TestApplyDurationFractionalHours(t *testing.T) {
	prof := pricingProfessional()
	draft := models.BookingDraft{}

	ApplyDuration(&draft, prof, 1.5)
	assert.Equal(t, 150.0, draft.Total)
}

func TestApplyDateClearsStaleTime(t *testing.T) {
	draft := models.BookingDraft{Date: "2024-01-08", Time: "09:00"}

	ApplyDate(&draft, "2024-01-09")
	assert.Equal(t, "2024-01-09", draft.Date)
	assert.Empty(t, draft.Time, "time belongs to the old date")

	draft.Time = "10:00"
	ApplyDate(&draft, "2024-01-09")
	assert.Equal(t, "10:00", draft.Time, "re-selecting the same date keeps the time")
}
