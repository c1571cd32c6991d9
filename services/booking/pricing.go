package booking

import (
	"alcahub/models"
	"alcahub/utils"
)

// ApplyPackage selects a fixed-price package on the draft. The package's
// duration and price replace any custom duration/total, keeping the two
// pricing paths reconciled.
func ApplyPackage(draft *models.BookingDraft, pkg models.Package) {
	draft.PackageID = pkg.ID
	draft.ServiceName = pkg.Name
	draft.DurationHours = pkg.DurationHours
	draft.Total = utils.RoundMoney(pkg.Price)
}

// ApplyDuration selects an ad-hoc hourly duration on the draft, clearing any
// selected package, and recomputes the total as hourly average x duration.
func ApplyDuration(draft *models.BookingDraft, prof *models.Professional, hours float64) {
	draft.PackageID = ""
	draft.DurationHours = hours
	draft.Total = utils.RoundMoney(prof.Hourly.Avg * hours)
}

// ApplyDate selects a date; a previously chosen time belongs to the old date
// and is cleared.
func ApplyDate(draft *models.BookingDraft, date string) {
	if draft.Date != date {
		draft.Time = ""
	}
	draft.Date = date
}
