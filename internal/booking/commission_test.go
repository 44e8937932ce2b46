package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePercent(t *testing.T) {
	engine := NewCommissionEngine(15)

	pct := func(v float64) *float64 { return &v }

	t.Run("no owner forces zero", func(t *testing.T) {
		assert.Equal(t, 0.0, engine.ResolvePercent(nil, false))
		assert.Equal(t, 0.0, engine.ResolvePercent(pct(30), false))
	})

	t.Run("default applies with owner", func(t *testing.T) {
		assert.Equal(t, 15.0, engine.ResolvePercent(nil, true))
	})

	t.Run("override wins", func(t *testing.T) {
		assert.Equal(t, 20.0, engine.ResolvePercent(pct(20), true))
	})

	t.Run("override is clamped", func(t *testing.T) {
		assert.Equal(t, 100.0, engine.ResolvePercent(pct(150), true))
		assert.Equal(t, 0.0, engine.ResolvePercent(pct(-5), true))
	})
}

func TestSplit(t *testing.T) {
	engine := NewCommissionEngine(15)

	admin, owner := engine.Split(54000, 15)
	assert.Equal(t, 8100.0, admin)
	assert.Equal(t, 45900.0, owner)

	admin, owner = engine.Split(54000, 0)
	assert.Equal(t, 0.0, admin)
	assert.Equal(t, 54000.0, owner)
}

func TestSplitSharesSumToTotal(t *testing.T) {
	engine := NewCommissionEngine(15)

	totals := []float64{0.01, 10, 99.99, 1234.56, 54000, 137500, 999999.99}
	percents := []float64{0, 1, 7.5, 12.34, 15, 33.33, 50, 99, 100}

	for _, total := range totals {
		for _, percent := range percents {
			admin, owner := engine.Split(total, percent)
			assert.InDelta(t, Round2(total), admin+owner, 0.001,
				"total=%v percent=%v", total, percent)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	engine := NewCommissionEngine(15)

	b := &Booking{TotalPrice: 54000, CommissionPercent: 15}
	engine.Apply(b)
	assert.Equal(t, 8100.0, b.AdminEarnings)
	assert.Equal(t, 45900.0, b.OwnerEarnings)

	engine.Apply(b)
	assert.Equal(t, 8100.0, b.AdminEarnings)
	assert.Equal(t, 45900.0, b.OwnerEarnings)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.23, Round2(-1.234))
	assert.Equal(t, 0.0, Round2(0))
}
