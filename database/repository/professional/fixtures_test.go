package professionalRepo

import (
	"testing"

	"alcahub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfessionalRepo struct {
	profs   map[string]*models.Professional
	created int
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{profs: make(map[string]*models.Professional)}
}

func (r *fakeProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	p, ok := r.profs[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfessionalRepo) GetAll() ([]models.Professional, error) {
	var out []models.Professional
	for _, p := range r.profs {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfessionalRepo) Search(criteria SearchCriteria) ([]models.Professional, error) {
	return r.GetAll()
}

func (r *fakeProfessionalRepo) Create(prof *models.Professional) error {
	cp := *prof
	r.profs[prof.ID] = &cp
	r.created++
	return nil
}

func (r *fakeProfessionalRepo) Update(prof *models.Professional) error {
	cp := *prof
	r.profs[prof.ID] = &cp
	return nil
}

func (r *fakeProfessionalRepo) Delete(id string) error {
	delete(r.profs, id)
	return nil
}

func (r *fakeProfessionalRepo) UpdateRating(id string, rating float64) error {
	return nil
}

func TestSeedPopulatesEmptyStore(t *testing.T) {
	repo := newFakeProfessionalRepo()

	require.NoError(t, Seed(repo))
	assert.Equal(t, len(Fixtures()), repo.created)

	for _, fix := range Fixtures() {
		got, err := repo.GetByID(fix.ID)
		require.NoError(t, err)
		require.NotNil(t, got, fix.ID)
		assert.Equal(t, fix.Name, got.Name)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := newFakeProfessionalRepo()
	require.NoError(t, Seed(repo))
	firstRun := repo.created

	require.NoError(t, Seed(repo))
	assert.Equal(t, firstRun, repo.created, "second run must not re-insert")
}

func TestSeedPreservesExistingRecords(t *testing.T) {
	repo := newFakeProfessionalRepo()
	custom := Fixtures()[0]
	custom.Name = "Ana S. (editada)"
	require.NoError(t, repo.Create(&custom))

	require.NoError(t, Seed(repo))

	got, err := repo.GetByID(custom.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana S. (editada)", got.Name)
}

func TestFixturesAreInternallyConsistent(t *testing.T) {
	validDays := map[string]bool{
		"monday": true, "tuesday": true, "wednesday": true,
		"thursday": true, "friday": true, "saturday": true, "sunday": true,
	}

	ids := make(map[string]bool)
	for _, fix := range Fixtures() {
		assert.False(t, ids[fix.ID], "duplicate fixture id %s", fix.ID)
		ids[fix.ID] = true

		assert.Greater(t, fix.Hourly.Avg, 0.0, fix.ID)
		require.NotEmpty(t, fix.WorkingDays, fix.ID)
		for _, day := range fix.WorkingDays {
			assert.True(t, validDays[day], "%s: bad working day %q", fix.ID, day)
			_, hasWindow := fix.WeeklyTemplate[day]
			assert.True(t, hasWindow, "%s: working day %s has no template window", fix.ID, day)
		}
		for _, pkg := range fix.Packages {
			assert.Greater(t, pkg.Price, 0.0, pkg.ID)
			assert.Greater(t, pkg.DurationHours, 0.0, pkg.ID)
		}
	}

	// The demo orders reference these professionals.
	assert.True(t, ids["prof-ana"])
	assert.True(t, ids["prof-carlos"])
}

func TestFoldRating(t *testing.T) {
	rating, count := foldRating(4.0, 3, 5.0)
	assert.Equal(t, 4, count)
	assert.InDelta(t, 4.25, rating, 1e-9)

	// First review on an unrated professional.
	rating, count = foldRating(0, 0, 5.0)
	assert.Equal(t, 1, count)
	assert.Equal(t, 5.0, rating)
}
