package booking

import (
	"fmt"
	"time"
)

// DisplayReference is the last six digits of now in Unix milliseconds. It is
// a display placeholder only: two bookings in the same millisecond, or a
// million milliseconds apart, share a reference.
func DisplayReference(now time.Time) string {
	return fmt.Sprintf("%06d", now.UnixMilli()%1_000_000)
}
