package booking

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^TRB-\d{13,}-[0-9A-F]{6}$`)

func TestNewReferenceCodeFormat(t *testing.T) {
	code := NewReferenceCode()
	require.Regexp(t, referencePattern, code)

	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)

	millis, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)

	// The embedded timestamp is current, not a fixed constant.
	now := time.Now().UnixMilli()
	assert.InDelta(t, now, millis, float64(5*time.Second/time.Millisecond))
}

func TestNewReferenceCodeUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		code := NewReferenceCode()
		_, dup := seen[code]
		require.False(t, dup, "duplicate reference %s", code)
		seen[code] = struct{}{}
	}
}
