package professionalRepo

import (
	"alcahub/models"
)

var weekdayWindow = models.WorkingWindow{Start: "08:00", End: "18:00"}

// Fixtures are the demo professionals the catalogue ships with, matching the
// professionals referenced by the demo orders.
func Fixtures() []models.Professional {
	return []models.Professional{
		{
			ID:          "prof-ana",
			Name:        "Ana Souza",
			Bio:         "Diarista com 8 anos de experiência em limpeza residencial.",
			Rating:      4.9,
			ReviewCount: 127,
			Specialties: []string{"limpeza"},
			Hourly:      models.HourlyPricing{Min: 40, Avg: 60, Max: 90},
			Packages: []models.Package{
				{ID: "pkg-ana-1", Name: "Limpeza completa", DurationHours: 4, Price: 240, Description: "Limpeza geral do apartamento"},
				{ID: "pkg-ana-2", Name: "Limpeza expressa", DurationHours: 2, Price: 130, Description: "Banheiros e cozinha"},
			},
			WeeklyTemplate: map[string]models.WorkingWindow{
				"monday":    weekdayWindow,
				"tuesday":   weekdayWindow,
				"wednesday": weekdayWindow,
				"thursday":  weekdayWindow,
				"friday":    weekdayWindow,
			},
			WorkingDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			Address:     "Condomínio Alça, Torre 1",
			Verified:    true,
		},
		{
			ID:          "prof-carlos",
			Name:        "Carlos Lima",
			Bio:         "Eletricista credenciado, pequenos reparos e instalações.",
			Rating:      4.7,
			ReviewCount: 83,
			Specialties: []string{"eletrica", "manutencao"},
			Hourly:      models.HourlyPricing{Min: 70, Avg: 90, Max: 140},
			Packages: []models.Package{
				{ID: "pkg-carlos-1", Name: "Manutenção elétrica", DurationHours: 2, Price: 180, Description: "Revisão de tomadas e disjuntores"},
			},
			WeeklyTemplate: map[string]models.WorkingWindow{
				"monday":    weekdayWindow,
				"tuesday":   weekdayWindow,
				"wednesday": weekdayWindow,
				"thursday":  weekdayWindow,
				"friday":    weekdayWindow,
				"saturday":  {Start: "09:00", End: "13:00"},
			},
			WorkingDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
			Address:     "Condomínio Alça, Torre 2",
			Verified:    true,
		},
		{
			ID:          "prof-maria",
			Name:        "Maria Santos",
			Bio:         "Jardinagem e cuidado de plantas para varandas e áreas comuns.",
			Rating:      4.8,
			ReviewCount: 45,
			Specialties: []string{"jardinagem"},
			Hourly:      models.HourlyPricing{Min: 50, Avg: 70, Max: 100},
			WeeklyTemplate: map[string]models.WorkingWindow{
				"tuesday":  weekdayWindow,
				"thursday": weekdayWindow,
				"saturday": {Start: "08:00", End: "14:00"},
			},
			WorkingDays: []string{"tuesday", "thursday", "saturday"},
			Address:     "Condomínio Alça, Torre 3",
			Verified:    false,
		},
	}
}

// Seed inserts any fixture professional missing from the store, so a fresh
// deployment boots with a browsable catalogue. Existing records are left
// untouched.
func Seed(repo ProfessionalRepository) error {
	for _, fix := range Fixtures() {
		existing, err := repo.GetByID(fix.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		prof := fix
		if err := repo.Create(&prof); err != nil {
			return err
		}
	}
	return nil
}
