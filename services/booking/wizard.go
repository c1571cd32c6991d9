package booking

import (
	"alcahub/models"
)

// StepDescriptor names one wizard step and the predicate that gates leaving it.
type StepDescriptor struct {
	ID       string
	Complete func(d models.BookingDraft) bool
}

// Wizard is a linear step machine over an ordered descriptor list. Steps are
// 1-based. The same machine drives every booking flow variant; the variants
// differ only in their descriptor lists (see flows.go).
type Wizard struct {
	Steps []StepDescriptor
}

// Len returns the number of steps.
func (w Wizard) Len() int { return len(w.Steps) }

// StepID returns the descriptor id for a 1-based step index.
func (w Wizard) StepID(step int) string {
	if step < 1 || step > len(w.Steps) {
		return ""
	}
	return w.Steps[step-1].ID
}

// CanAdvance reports whether the session's current step is complete.
func (w Wizard) CanAdvance(s *models.BookingSession) bool {
	if s.Step < 1 || s.Step > len(w.Steps) {
		return false
	}
	return w.Steps[s.Step-1].Complete(s.Draft)
}

// Next advances the session exactly one step if the current step's required
// fields are filled. Returns false (leaving the step untouched) otherwise,
// and on the last step.
func (w Wizard) Next(s *models.BookingSession) bool {
	if s.Step >= len(w.Steps) {
		return false
	}
	if !w.CanAdvance(s) {
		return false
	}
	s.Step++
	return true
}

// Prev moves the session back one step. On step 1 it is a no-op. Later-step
// selections are never cleared by going back.
func (w Wizard) Prev(s *models.BookingSession) bool {
	if s.Step <= 1 {
		return false
	}
	s.Step--
	return true
}

// CanComplete reports whether the session sits on the last step with every
// step's requirements met.
func (w Wizard) CanComplete(s *models.BookingSession) bool {
	if s.Step != len(w.Steps) {
		return false
	}
	for _, step := range w.Steps {
		if !step.Complete(s.Draft) {
			return false
		}
	}
	return true
}
