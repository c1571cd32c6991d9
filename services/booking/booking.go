package booking

import (
	"context"
	"strings"
	"time"

	professionalRepo "alcahub/database/repository/professional"
	"alcahub/models"
	"alcahub/services/availability"
	"alcahub/services/order"
	"alcahub/services/tasks"
	"alcahub/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultBookingSessionService drives the booking wizard over Redis-backed
// sessions, delegating persistence to the order service.
type DefaultBookingSessionService struct {
	Sessions         *SessionStore
	ProfessionalRepo professionalRepo.ProfessionalRepository
	Orders           order.OrderService
	Tasks            *asynq.Client // optional; reminders are skipped when nil
	SlotMinutes      int
	Now              func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingSessionService) slotMinutes() int {
	if s.SlotMinutes > 0 {
		return s.SlotMinutes
	}
	return 30
}

func (s *DefaultBookingSessionService) professional(id string) (*models.Professional, error) {
	prof, err := s.ProfessionalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return nil, NewNotFoundError("professional not found")
	}
	return prof, nil
}

// StartSession opens a wizard session for a professional.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, userID, flow, professionalID string) (*models.BookingSession, error) {
	if _, err := FlowByName(flow); err != nil {
		return nil, err
	}
	if _, err := s.professional(professionalID); err != nil {
		return nil, err
	}
	if flow == "" {
		flow = FlowStandard
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Flow:      flow,
		Step:      1,
		Draft: models.BookingDraft{
			ProfessionalID: professionalID,
			Status:         "pending",
		},
		CreatedAt: s.now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the current session state.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// ApplySelection merges a partial selection into the draft, enforcing
// single-select per category and the package/duration reconciliation.
func (s *DefaultBookingSessionService) ApplySelection(ctx context.Context, sessionID string, sel Selection) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	prof, err := s.professional(session.Draft.ProfessionalID)
	if err != nil {
		return nil, err
	}
	draft := &session.Draft

	// Calendar navigation discards the in-progress date/time selection.
	if sel.ViewMonth != nil && draft.Date != "" && !strings.HasPrefix(draft.Date, *sel.ViewMonth) {
		draft.Date = ""
		draft.Time = ""
	}

	if sel.PackageID != nil {
		pkg, ok := prof.PackageByID(*sel.PackageID)
		if !ok {
			return nil, NewNotFoundError("package not found")
		}
		ApplyPackage(draft, pkg)
	}
	if sel.ServiceName != nil && sel.PackageID == nil {
		draft.ServiceName = *sel.ServiceName
	}
	if sel.DurationHours != nil {
		if *sel.DurationHours <= 0 {
			return nil, NewValidationError("duration must be positive")
		}
		ApplyDuration(draft, prof, *sel.DurationHours)
	}

	if sel.Date != nil {
		class, err := availability.ClassifyDay(prof, *sel.Date)
		if err != nil {
			return nil, NewValidationError(err.Error())
		}
		if class != models.DayAvailable {
			return nil, NewValidationError("selected date is not available: " + string(class))
		}
		ApplyDate(draft, *sel.Date)
	}

	if sel.Time != nil {
		if draft.Date == "" {
			return nil, NewValidationError("select a date before a time")
		}
		if err := s.checkSlot(prof, draft.Date, *sel.Time); err != nil {
			return nil, err
		}
		draft.Time = *sel.Time
	}

	if sel.Address != nil {
		draft.Address = *sel.Address
	}
	if sel.Contact != nil {
		draft.Contact = *sel.Contact
	}
	if sel.Notes != nil {
		draft.Notes = *sel.Notes
	}
	if sel.PaymentMethod != nil {
		draft.PaymentMethod = *sel.PaymentMethod
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// checkSlot verifies the requested time is a generated, still-available slot.
func (s *DefaultBookingSessionService) checkSlot(prof *models.Professional, date, slotTime string) error {
	reservedTimes, err := s.Orders.ReservedTimes(prof.ID, date)
	if err != nil {
		return err
	}
	day, err := availability.GenerateDaySlots(prof, date, availability.NewReservedSet(reservedTimes), s.now(), s.slotMinutes())
	if err != nil {
		return NewValidationError(err.Error())
	}
	for _, slot := range day.Slots {
		if slot.Time != slotTime {
			continue
		}
		if !slot.Available {
			return NewConflictError("that time is no longer available")
		}
		return nil
	}
	return NewValidationError("time is outside the professional's working hours")
}

// Next advances one step when the current step is complete.
func (s *DefaultBookingSessionService) Next(ctx context.Context, sessionID string) (*models.BookingSession, bool, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	flow, err := FlowByName(session.Flow)
	if err != nil {
		return nil, false, err
	}

	moved := flow.Next(session)
	if moved {
		if err := s.Sessions.Save(ctx, session); err != nil {
			return nil, false, err
		}
	}
	return session, moved, nil
}

// Prev steps back; a no-op on the first step.
func (s *DefaultBookingSessionService) Prev(ctx context.Context, sessionID string) (*models.BookingSession, bool, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	flow, err := FlowByName(session.Flow)
	if err != nil {
		return nil, false, err
	}

	moved := flow.Prev(session)
	if moved {
		if err := s.Sessions.Save(ctx, session); err != nil {
			return nil, false, err
		}
	}
	return session, moved, nil
}

// Complete turns the draft into a persisted order and discards the session.
func (s *DefaultBookingSessionService) Complete(ctx context.Context, sessionID string) (*models.Order, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	flow, err := FlowByName(session.Flow)
	if err != nil {
		return nil, err
	}
	if !flow.CanComplete(session) {
		return nil, NewStepGateError("booking is missing required fields")
	}

	prof, err := s.professional(session.Draft.ProfessionalID)
	if err != nil {
		return nil, err
	}
	draft := session.Draft

	o := &models.Order{
		UserID: session.UserID,
		Professional: models.ProfessionalSnapshot{
			ID:        prof.ID,
			Name:      prof.Name,
			AvatarURL: prof.AvatarURL,
			Rating:    prof.Rating,
		},
		Service: models.ServiceSnapshot{
			Name:          draft.ServiceName,
			PackageID:     draft.PackageID,
			DurationHours: draft.DurationHours,
		},
		Date:          draft.Date,
		Time:          draft.Time,
		DurationHours: draft.DurationHours,
		Price:         draft.Total,
		PaymentMethod: draft.PaymentMethod,
		Address:       draft.Address,
		Notes:         draft.Notes,
	}

	persisted, err := s.Orders.Append(ctx, o)
	if err != nil {
		if order.IsConflict(err) {
			return nil, NewConflictError("that time is no longer available")
		}
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to discard completed session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	s.scheduleReminder(persisted)
	return persisted, nil
}

// CancelSession discards the session without persisting anything.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if _, err := s.Sessions.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.Sessions.Delete(ctx, sessionID)
}

// scheduleReminder enqueues a reminder two hours before the service starts.
func (s *DefaultBookingSessionService) scheduleReminder(o *models.Order) {
	if s.Tasks == nil {
		return
	}
	startsAt, err := time.ParseInLocation("2006-01-02 15:04", o.Date+" "+o.Time, s.now().Location())
	if err != nil {
		return
	}
	fireAt := startsAt.Add(-2 * time.Hour)
	if fireAt.Before(s.now()) {
		return
	}

	payload := models.ReminderPayload{
		OrderID:  o.ID,
		UserID:   o.UserID,
		Title:    "Agendamento em breve",
		Body:     o.Service.Name + " com " + o.Professional.Name + " às " + o.Time,
		FireDate: fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder task",
			zap.String("orderID", o.ID), zap.Error(err))
	}
}
