package models

import (
	"time"
)

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// HourlyPricing holds the ad-hoc (non-package) pricing band of a professional.
type HourlyPricing struct {
	Min float64 `bson:"min" json:"min"`
	Avg float64 `bson:"avg" json:"avg"`
	Max float64 `bson:"max" json:"max"`
}

// Package is a fixed-price, fixed-duration service bundle offered by a professional.
type Package struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	DurationHours float64 `bson:"durationHours" json:"durationHours"`
	Price         float64 `bson:"price" json:"price"`
	Description   string  `bson:"description" json:"description,omitempty"`
}

// WorkingWindow is the daily working-hours window of a weekly template entry.
type WorkingWindow struct {
	Start string `bson:"start" json:"start"` // "08:00"
	End   string `bson:"end" json:"end"`     // "18:00"
}

// TimeOffRange is a closed date range the professional is away, with a reason.
type TimeOffRange struct {
	Start  string `bson:"start" json:"start"` // "2024-01-15"
	End    string `bson:"end" json:"end"`     // "2024-01-22"
	Reason string `bson:"reason" json:"reason,omitempty"`
}

// Professional is a service provider with pricing, specialties and an
// availability template. Weekday keys are lowercase English names
// ("monday".."sunday"), matching time.Weekday.
type Professional struct {
	ID             string                   `bson:"id" json:"id"`
	Name           string                   `bson:"name" json:"name"`
	AvatarURL      string                   `bson:"avatarUrl" json:"avatarUrl,omitempty"`
	Bio            string                   `bson:"bio" json:"bio,omitempty"`
	Rating         float64                  `bson:"rating" json:"rating"` // 0..5
	ReviewCount    int                      `bson:"reviewCount" json:"reviewCount"`
	Specialties    []string                 `bson:"specialties" json:"specialties"`
	Hourly         HourlyPricing            `bson:"hourly" json:"hourly"`
	Packages       []Package                `bson:"packages" json:"packages,omitempty"`
	WeeklyTemplate map[string]WorkingWindow `bson:"weeklyTemplate" json:"weeklyTemplate"`
	WorkingDays    []string                 `bson:"workingDays" json:"workingDays"`
	BlockedDates   []string                 `bson:"blockedDates" json:"blockedDates,omitempty"`
	TimeOff        []TimeOffRange           `bson:"timeOff" json:"timeOff,omitempty"`
	Address        string                   `bson:"address" json:"address,omitempty"`
	LocationGeo    GeoPoint                 `bson:"locationGeo" json:"locationGeo,omitzero"`
	Verified       bool                     `bson:"verified" json:"verified"`
	CreatedAt      time.Time                `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time                `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// PackageByID looks up one of the professional's packages.
func (p *Professional) PackageByID(id string) (Package, bool) {
	for _, pkg := range p.Packages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return Package{}, false
}

// WorksOn reports whether the weekday name is in the professional's working days.
func (p *Professional) WorksOn(weekday string) bool {
	for _, d := range p.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}
