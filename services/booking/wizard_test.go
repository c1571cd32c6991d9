package booking

import (
	"testing"

	"alcahub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(flow string) *models.BookingSession {
	return &models.BookingSession{
		SessionID: "sess-1",
		UserID:    "user-1",
		Flow:      flow,
		Step:      1,
		Draft:     models.BookingDraft{ProfessionalID: "prof-1", Status: "pending"},
	}
}

func TestNextBlockedOnIncompleteStep(t *testing.T) {
	w, err := FlowByName(FlowStandard)
	require.NoError(t, err)
	s := newSession(FlowStandard)

	// Empty draft: the service step is incomplete.
	assert.False(t, w.Next(s))
	assert.Equal(t, 1, s.Step)
}

func TestNextAdvancesExactlyOneStep(t *testing.T) {
	w, err := FlowByName(FlowStandard)
	require.NoError(t, err)
	s := newSession(FlowStandard)
	s.Draft.ServiceName = "Limpeza"
	s.Draft.Date = "2024-01-08"
	s.Draft.Time = "09:00"
	s.Draft.DurationHours = 2

	// Even with two steps' worth of data filled, Next moves one step at a time.
	assert.True(t, w.Next(s))
	assert.Equal(t, 2, s.Step)
	assert.True(t, w.Next(s))
	assert.Equal(t, 3, s.Step)
}

func TestNextStopsAtLastStep(t *testing.T) {
	w, err := FlowByName(FlowStandard)
	require.NoError(t, err)
	s := newSession(FlowStandard)
	s.Step = w.Len()

	assert.False(t, w.Next(s))
	assert.Equal(t, w.Len(), s.Step)
}

func TestPrevIsNoOpOnFirstStep(t *testing.T) {
	w, err := FlowByName(FlowStandard)
	require.NoError(t, err)
	s := newSession(FlowStandard)

	assert.False(t, w.Prev(s))
	assert.Equal(t, 1, s.Step)
}

func TestPrevPreservesLaterSelections(t *testing.T) {
	w, err := FlowByName(FlowStandard)
	require.NoError(t, err)
	s := newSession(FlowStandard)
	s.Step = 3
	s.Draft.ServiceName = "Limpeza"
	s.Draft.Date = "2024-01-08"
	s.Draft.Time = "09:00"
	s.Draft.DurationHours = 2
	s.Draft.Address = "Bloco A, Ap 101"

	assert.True(t, w.Prev(s))
	assert.Equal(t, 2, s.Step)
	assert.Equal(t, "Bloco A, Ap 101", s.Draft.Address)
	assert.Equal(t, "09:00", s.Draft.Time)
}

func TestCanCompleteRequiresLastStepAndFullDraft(t *testing.T) {
	w, err := FlowByName(FlowStandard)
	require.NoError(t, err)
	s := newSession(FlowStandard)
	s.Draft = models.BookingDraft{
		ProfessionalID: "prof-1",
		ServiceName:    "Limpeza",
		Date:           "2024-01-08",
		Time:           "09:00",
		DurationHours:  2,
		Address:        "Bloco A, Ap 101",
		Contact:        "+55 11 99999-0000",
		PaymentMethod:  "pix",
	}

	s.Step = 3
	assert.False(t, w.CanComplete(s), "not on the last step yet")

	s.Step = w.Len()
	assert.True(t, w.CanComplete(s))

	s.Draft.PaymentMethod = ""
	assert.False(t, w.CanComplete(s), "payment step requirement no longer met")
}

func TestFlowStepCounts(t *testing.T) {
	cases := []struct {
		name  string
		steps int
		first string
		last  string
	}{
		{FlowStandard, 5, "service", "review"},
		{FlowMobile, 6, "service", "review"},
		{FlowAgenda, 3, "schedule", "confirm"},
	}
	for _, tc := range cases {
		w, err := FlowByName(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.steps, w.Len(), "flow %s", tc.name)
		assert.Equal(t, tc.first, w.StepID(1), "flow %s", tc.name)
		assert.Equal(t, tc.last, w.StepID(tc.steps), "flow %s", tc.name)
	}
}

func TestFlowByNameDefaultsAndRejects(t *testing.T) {
	w, err := FlowByName("")
	require.NoError(t, err)
	assert.Equal(t, 5, w.Len())

	_, err = FlowByName("kiosk")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestMobileFlowSplitsLocationAndContact(t *testing.T) {
	w, err := FlowByName(FlowMobile)
	require.NoError(t, err)
	s := newSession(FlowMobile)
	s.Step = 3
	s.Draft.ServiceName = "Limpeza"
	s.Draft.Date = "2024-01-08"
	s.Draft.Time = "09:00"
	s.Draft.DurationHours = 2
	s.Draft.Address = "Bloco A, Ap 101"

	// Address alone satisfies the mobile location step, but not contact.
	assert.True(t, w.Next(s))
	assert.Equal(t, 4, s.Step)
	assert.False(t, w.Next(s))

	s.Draft.Contact = "+55 11 99999-0000"
	assert.True(t, w.Next(s))
	assert.Equal(t, 5, s.Step)
}
