package booking

import (
	"alcahub/models"
)

// Flow names.
const (
	FlowStandard = "standard"
	FlowMobile   = "mobile"
	FlowAgenda   = "agenda"
)

// Shared step predicates. "schedule" requires date, time and duration;
// "location" requires an address; "details" requires address and contact.
func hasService(d models.BookingDraft) bool {
	return d.PackageID != "" || d.ServiceName != ""
}

func hasSchedule(d models.BookingDraft) bool {
	return d.Date != "" && d.Time != "" && d.DurationHours > 0
}

func hasAddress(d models.BookingDraft) bool { return d.Address != "" }

func hasContact(d models.BookingDraft) bool { return d.Contact != "" }

func hasDetails(d models.BookingDraft) bool { return hasAddress(d) && hasContact(d) }

func hasPayment(d models.BookingDraft) bool { return d.PaymentMethod != "" }

func always(models.BookingDraft) bool { return true }

// standardFlow is the 5-step desktop wizard.
var standardFlow = Wizard{Steps: []StepDescriptor{
	{ID: "service", Complete: hasService},
	{ID: "schedule", Complete: hasSchedule},
	{ID: "location", Complete: hasDetails},
	{ID: "payment", Complete: hasPayment},
	{ID: "review", Complete: always},
}}

// mobileFlow is the 6-step variant: location and contact are separate screens.
var mobileFlow = Wizard{Steps: []StepDescriptor{
	{ID: "service", Complete: hasService},
	{ID: "schedule", Complete: hasSchedule},
	{ID: "location", Complete: hasAddress},
	{ID: "contact", Complete: hasContact},
	{ID: "payment", Complete: hasPayment},
	{ID: "review", Complete: always},
}}

// agendaFlow is the 3-step quick flow launched from a professional's agenda,
// where the service is already fixed.
var agendaFlow = Wizard{Steps: []StepDescriptor{
	{ID: "schedule", Complete: hasSchedule},
	{ID: "details", Complete: hasDetails},
	{ID: "confirm", Complete: hasPayment},
}}

// FlowByName resolves a wizard variant by name.
func FlowByName(name string) (Wizard, error) {
	switch name {
	case FlowStandard, "":
		return standardFlow, nil
	case FlowMobile:
		return mobileFlow, nil
	case FlowAgenda:
		return agendaFlow, nil
	default:
		return Wizard{}, NewValidationError("unknown booking flow: " + name)
	}
}
