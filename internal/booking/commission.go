package booking

import "math"

// CommissionEngine splits a booking total between the platform and the item
// owner. The default percent is injected at construction, never read from the
// environment at call time.
type CommissionEngine struct {
	defaultPercent float64
}

// NewCommissionEngine creates a commission engine with the given default
// percent for vehicle/package bookings.
func NewCommissionEngine(defaultPercent float64) *CommissionEngine {
	return &CommissionEngine{defaultPercent: defaultPercent}
}

// ResolvePercent picks the commission percent for a booking. A caller override
// wins; bookings without an owner to split with (tours, fallback-priced) force
// zero; otherwise the configured default applies.
func (e *CommissionEngine) ResolvePercent(override *float64, hasOwner bool) float64 {
	if !hasOwner {
		return 0
	}
	if override != nil {
		return clampPercent(*override)
	}
	return clampPercent(e.defaultPercent)
}

// Split divides total into platform and owner earnings. The two shares always
// sum to the total rounded to two decimals.
func (e *CommissionEngine) Split(total, percent float64) (adminEarnings, ownerEarnings float64) {
	adminEarnings = Round2(total * percent / 100)
	ownerEarnings = Round2(total - adminEarnings)
	return adminEarnings, ownerEarnings
}

// Apply recomputes the earnings fields from the booking's current total and
// percent. Safe to call repeatedly; unchanged inputs yield unchanged outputs.
func (e *CommissionEngine) Apply(b *Booking) {
	b.AdminEarnings, b.OwnerEarnings = e.Split(b.TotalPrice, b.CommissionPercent)
}

// Round2 rounds half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
