package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns an order identifier of the form ORD-YYYYMMDD-XXXXX for day t.
// The suffix is five uppercase hex characters taken from a random UUID.
func NewID(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:5])
	return orderIDPrefix + t.Format("20060102") + "-" + suffix
}
