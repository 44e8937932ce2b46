package booking

import (
	"time"
)

// TripParams are the raw trip inputs a price is derived from.
type TripParams struct {
	StartDate time.Time
	EndDate   *time.Time
	Adults    int
	Children  int
}

// effectiveTravelers weights children at half an adult for tour pricing.
func (p TripParams) effectiveTravelers() float64 {
	return float64(clampNonNegative(p.Adults)) + 0.5*float64(clampNonNegative(p.Children))
}

// peopleCount is the plain head count used for per-person package pricing.
func (p TripParams) peopleCount() int {
	return clampNonNegative(p.Adults) + clampNonNegative(p.Children)
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// TourTotal prices a tour booking. The price never drops below a single
// per-person fare, even with a zero traveler count.
func TourTotal(pricePerPerson float64, p TripParams) float64 {
	total := pricePerPerson * p.effectiveTravelers()
	if total < pricePerPerson {
		return pricePerPerson
	}
	return total
}

// VehicleTotal prices a vehicle booking by inclusive rental days.
// A missing end date means a single-day rental. An end date before the start
// date is the only input that fails pricing.
func VehicleTotal(pricePerDay float64, p TripParams) (float64, error) {
	end := p.StartDate
	if p.EndDate != nil {
		end = *p.EndDate
	}
	if dateOnly(end).Before(dateOnly(p.StartDate)) {
		return 0, ErrInvalidDateRange
	}

	days := InclusiveDays(p.StartDate, end)
	if days < 1 {
		days = 1
	}
	return float64(days) * pricePerDay, nil
}

// PackageTotal prices a package booking. A flat group price wins over
// per-person pricing; per-person pricing floors at one fare.
func PackageTotal(pricePerGroup, pricePerPerson *float64, p TripParams) float64 {
	if pricePerGroup != nil {
		return *pricePerGroup
	}
	if pricePerPerson != nil {
		total := *pricePerPerson * float64(p.peopleCount())
		if total < *pricePerPerson {
			return *pricePerPerson
		}
		return total
	}
	return 0
}

// InclusiveDays counts calendar days between two dates, both ends included.
// Same-day in and out counts as one day.
func InclusiveDays(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	return int(e.Sub(s).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fillEndDate derives a missing end date once the item is resolved:
// tours/packages span their duration, vehicles keep the single-day semantics
// of the pricing step, and anything else collapses to the start date.
func fillEndDate(b *Booking, durationDays int) {
	if b.EndDate != nil {
		return
	}
	switch {
	case durationDays > 0:
		end := dateOnly(b.StartDate).AddDate(0, 0, durationDays-1)
		b.EndDate = &end
	case b.VehicleID != nil:
		// single-day rental, end date stays unset
	default:
		start := dateOnly(b.StartDate)
		b.EndDate = &start
	}
}
