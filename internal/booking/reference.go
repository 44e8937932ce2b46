package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const referencePrefix = "TRB"

// NewReferenceCode generates a human-shareable booking reference.
// Format: TRB-<unix millis>-<6 random chars>, e.g. TRB-1704892800123-9F3A2B.
// Uniqueness is probabilistic; the UNIQUE constraint on reference_code is the
// backstop and the service retries on a clash.
func NewReferenceCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("%s-%d-%s", referencePrefix, time.Now().UnixMilli(), suffix)
}
